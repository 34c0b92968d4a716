package model

// Metadata describes the context a schedule belongs to. It is a read-only
// input from the generator and never derived from the grid: totals here are
// authoritative, the exporter only cross-checks them against the aggregates
// and reports disagreement.
type Metadata struct {
	Institution string `json:"institution,omitempty"`
	Department  string `json:"department,omitempty"`
	Program     string `json:"program,omitempty"`
	Term        string `json:"term,omitempty"`
	Semester    string `json:"semester,omitempty"`
	ClassGroup  string `json:"class_group,omitempty"`
	Advisor     string `json:"advisor,omitempty"`

	TotalSubjects int `json:"total_subjects,omitempty"`
	TotalCredits  int `json:"total_credits,omitempty"`
	WeeklyHours   int `json:"weekly_hours,omitempty"`

	TermStart string `json:"term_start,omitempty"`
	TermEnd   string `json:"term_end,omitempty"`
	ExamStart string `json:"exam_start,omitempty"`

	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
}
