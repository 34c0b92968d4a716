package utils

import (
	"regexp"
	"strconv"
)

var spaceRE = regexp.MustCompile(`\s+`)

// RemoveSpaces collapses repeated whitespace
func RemoveSpaces(s string) string {
	return spaceRE.ReplaceAllString(s, " ")
}

// MustAtoi strict string to int conversion, 0 on failure
func MustAtoi(str string) int {
	ret, err := strconv.Atoi(str)
	if err != nil {
		return 0
	}
	return ret
}
