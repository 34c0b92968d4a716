package utils

import "strings"

// SlotMinutes derives a duration in minutes from a slot label shaped like
// "09:00-10:30". Returns 0 when the label does not carry two clock times, the
// caller decides what a zero duration means.
func SlotMinutes(label string) int {
	parts := strings.Split(strings.TrimSpace(label), "-")
	if len(parts) != 2 {
		return 0
	}

	start := clockMinutes(parts[0])
	end := clockMinutes(parts[1])
	if start < 0 || end <= start {
		return 0
	}
	return end - start
}

func clockMinutes(s string) int {
	s = strings.TrimSpace(s)
	sep := ":"
	if !strings.Contains(s, sep) {
		sep = "."
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return -1
	}
	return MustAtoi(parts[0])*60 + MustAtoi(parts[1])
}
