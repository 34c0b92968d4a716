package utils

// StringEnum collects a repeatable command line flag.
type StringEnum []string

func (i *StringEnum) String() string {
	return ""
}

func (i *StringEnum) Set(value string) error {
	*i = append(*i, value)
	return nil
}
