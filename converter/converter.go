package converter

import (
	"time"

	"github.com/acadtools/ttexport/aggregate"
	"github.com/acadtools/ttexport/model"
)

// Workbook sheet names, in the order consumers index them
const (
	SheetGrid           = "Weekly Timetable"
	SheetDetail         = "Detailed Information"
	SheetMeta           = "Academic Information"
	SheetSubjectSummary = "Subject Summary"
	SheetClassSummary   = "Class Summary"
)

// Bundle is everything a renderer needs for one export. The orchestrator
// builds it once, so every renderer sees the same schedule and the same
// aggregate rows.
type Bundle struct {
	Schedule *model.Schedule `json:"schedule"`
	Meta     *model.Metadata `json:"metadata,omitempty"`
	Mode     aggregate.Mode  `json:"mode"`

	SubjectSummary []aggregate.Row `json:"subject_summary"`
	ClassSummary   []aggregate.Row `json:"class_summary"`

	Warnings  []model.Warning `json:"warnings,omitempty"`
	Generated time.Time       `json:"generated"`
}

// Summary picks the aggregate view matching the bundle's grouping mode.
func (b Bundle) Summary() []aggregate.Row {
	if b.Mode == aggregate.ByClass {
		return b.ClassSummary
	}
	return b.SubjectSummary
}

// SummaryName is the mode-dependent name of the summary sheet.
func (b Bundle) SummaryName() string {
	if b.Mode == aggregate.ByClass {
		return SheetClassSummary
	}
	return SheetSubjectSummary
}

// PartyLabel is the column caption for the role-dependent party field.
func (b Bundle) PartyLabel() string {
	if b.Mode == aggregate.ByClass {
		return "Class"
	}
	return "Instructor"
}

// Renderer writes one export bundle to out. Out is a file path for file
// sinks and connection credentials for the database sink.
type Renderer interface {
	Write(b Bundle, out string) error
	Ext() string
}
