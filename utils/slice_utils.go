package utils

// GetOrString the i-th element of slice, or the fallback when out of range
func GetOrString(slice []string, i int, or string) string {
	if len(slice)-1 >= i {
		return slice[i]
	}
	return or
}
