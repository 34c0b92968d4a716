package model

import "github.com/acadtools/ttexport/utils"

// CellKind is the classified variant of one grid entry.
type CellKind string

const (
	KindSession      CellKind = "session"
	KindBreak        CellKind = "break"
	KindFreePeriod   CellKind = "free_period"
	KindSpecialEvent CellKind = "special_event"
	KindEmpty        CellKind = "empty"
)

// Default captions when the generator sends a flagged cell without a label
const (
	BreakLabel        = "Break"
	FreePeriodLabel   = "Free Period"
	SpecialEventLabel = "Special Event"
)

// RawCell mirrors the generator output for one (day, slot) coordinate.
// The variant is duck-typed on the wire via the is_* flags; Classify resolves
// it exactly once and downstream code only ever looks at Cell.Kind.
type RawCell struct {
	Subject  string `json:"subject,omitempty"`
	Code     string `json:"code,omitempty"`
	Room     string `json:"room,omitempty"`
	Building string `json:"building,omitempty"`
	Party    string `json:"party,omitempty"` //instructor in the student view, class group in the teacher view
	Type     string `json:"type,omitempty"`  //lecture, lab, tutorial, seminar
	Duration int    `json:"duration,omitempty"`
	Credits  int    `json:"credits,omitempty"`

	//Optional descriptive bag, all fields may be absent
	Topics      []string `json:"topics,omitempty"`
	Assignments []string `json:"assignments,omitempty"`
	Resources   []string `json:"resources,omitempty"`

	Label       string `json:"label,omitempty"`
	Coordinator string `json:"coordinator,omitempty"`

	IsBreak        bool `json:"is_break,omitempty"`
	IsFreePeriod   bool `json:"is_free_period,omitempty"`
	IsSpecialEvent bool `json:"is_special_event,omitempty"`
}

// Cell is one classified grid entry.
type Cell struct {
	Kind CellKind `json:"kind"`
	Day  string   `json:"day"`
	Slot string   `json:"slot"`

	Subject  string `json:"subject,omitempty"`
	Code     string `json:"code,omitempty"`
	Room     string `json:"room,omitempty"`
	Building string `json:"building,omitempty"`
	Party    string `json:"party,omitempty"`
	Type     string `json:"type,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Credits  int    `json:"credits,omitempty"`

	Topics      []string `json:"topics,omitempty"`
	Assignments []string `json:"assignments,omitempty"`
	Resources   []string `json:"resources,omitempty"`

	Label       string `json:"label,omitempty"`
	Coordinator string `json:"coordinator,omitempty"`
}

// Classify resolves one raw cell into its tagged variant. A nil raw cell is a
// Break at the schedule's designated lunch slot and an Empty placeholder
// everywhere else. Conflicting variant flags resolve to Session and are
// reported as a non-fatal warning. Missing optional fields stay zero valued,
// they are never an error.
func Classify(raw *RawCell, day, slot string, lunch bool) (Cell, *Warning) {
	if raw == nil {
		if lunch {
			return Cell{Kind: KindBreak, Day: day, Slot: slot, Label: BreakLabel}, nil
		}
		return Cell{Kind: KindEmpty, Day: day, Slot: slot}, nil
	}

	flags := 0
	for _, f := range []bool{raw.IsBreak, raw.IsFreePeriod, raw.IsSpecialEvent} {
		if f {
			flags++
		}
	}

	var warn *Warning
	if flags > 1 {
		//Session wins and the conflict is only reported, never corrected silently
		warn = &Warning{
			Kind:   WarnCellClassification,
			Day:    day,
			Slot:   slot,
			Detail: "conflicting variant flags, classified as session",
		}
	}

	c := Cell{
		Day:         day,
		Slot:        slot,
		Subject:     utils.RemoveSpaces(raw.Subject),
		Code:        raw.Code,
		Room:        raw.Room,
		Building:    raw.Building,
		Party:       utils.RemoveSpaces(raw.Party),
		Type:        raw.Type,
		Duration:    raw.Duration,
		Credits:     raw.Credits,
		Topics:      raw.Topics,
		Assignments: raw.Assignments,
		Resources:   raw.Resources,
		Coordinator: raw.Coordinator,
	}

	switch {
	case flags > 1:
		c.Kind = KindSession
	case raw.IsBreak:
		c.Kind = KindBreak
		c.Label = orLabel(raw.Label, BreakLabel)
	case raw.IsFreePeriod:
		c.Kind = KindFreePeriod
		c.Label = orLabel(raw.Label, FreePeriodLabel)
	case raw.IsSpecialEvent:
		c.Kind = KindSpecialEvent
		c.Label = orLabel(raw.Label, SpecialEventLabel)
	default:
		c.Kind = KindSession
	}

	return c, warn
}

func orLabel(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return utils.RemoveSpaces(label)
}
