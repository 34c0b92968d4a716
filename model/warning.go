package model

import "fmt"

// WarningKind distinguishes the non-fatal data-quality conditions.
type WarningKind string

const (
	WarnCellClassification  WarningKind = "cell_classification"
	WarnAggregationFallback WarningKind = "aggregation_fallback"
)

// Warning is a non-fatal diagnostic tied to one grid coordinate. Warnings are
// collected and returned with the artifact, they never abort an export.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Day    string      `json:"day"`
	Slot   string      `json:"slot"`
	Detail string      `json:"detail"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s [%s %s]: %s", w.Kind, w.Day, w.Slot, w.Detail)
}

// MalformedScheduleError is fatal: the grid cannot be rendered at all.
type MalformedScheduleError struct {
	Reason string
}

func (e *MalformedScheduleError) Error() string {
	return "malformed schedule: " + e.Reason
}
