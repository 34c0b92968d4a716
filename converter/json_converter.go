package converter

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONConverter dumps the full export bundle, aggregates and warnings
// included. Mostly useful for debugging generators and feeding other tools.
type JSONConverter struct {
	Pretty bool
}

func (j JSONConverter) Ext() string {
	return ".json"
}

func (j JSONConverter) Write(b Bundle, out string) error {
	if out == "" {
		return fmt.Errorf("output path can not be empty")
	}

	var ret []byte
	var err error
	if j.Pretty {
		ret, err = json.MarshalIndent(b, "", "  ")
	} else {
		ret, err = json.Marshal(b)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(out, ret, 0644)
}
