package config

import (
	"regexp"
	"strings"

	"github.com/acadtools/ttexport/utils"
)

// Matcher filters values collected from repeated flags. An empty matcher
// accepts everything; a value prefixed with ~ is treated as a regular
// expression.
type Matcher struct {
	MatchRaw utils.StringEnum
}

func (m *Matcher) Match(text string) bool {
	if len(m.MatchRaw) == 0 {
		return true
	}

	for _, s := range m.MatchRaw {
		if s == text {
			return true
		} else if strings.HasPrefix(s, "~") && regexp.MustCompile(s[1:]).MatchString(text) {
			return true
		}
	}

	return false
}
