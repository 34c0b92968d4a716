package model

import "fmt"

// Schedule is the canonical day × slot grid for one week. It is built once
// per export request from generator output and not mutated afterwards.
type Schedule struct {
	Days      []string `json:"days"`
	Slots     []string `json:"slots"`
	LunchSlot string   `json:"lunch_slot,omitempty"` //reserved midday slot, may be empty

	//Grid holds exactly one classified cell per (day, slot) coordinate
	Grid map[string]map[string]Cell `json:"grid"`

	//Warnings collected while classifying the raw grid
	Warnings []Warning `json:"warnings,omitempty"`
}

// NewSchedule classifies a raw generator grid into a complete Schedule. Every
// (day, slot) coordinate ends up with exactly one cell; absent raw cells are
// classified too, so lookups never fail downstream. A raw grid key outside
// the declared day and slot lists means the grid is not rectangular and is
// rejected up front.
func NewSchedule(days, slots []string, lunchSlot string, raw map[string]map[string]*RawCell) (*Schedule, error) {
	s := &Schedule{
		Days:      days,
		Slots:     slots,
		LunchSlot: lunchSlot,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.Grid = make(map[string]map[string]Cell, len(days))

	slotSet := make(map[string]bool, len(slots))
	for _, slot := range slots {
		slotSet[slot] = true
	}
	daySet := make(map[string]bool, len(days))
	for _, day := range days {
		daySet[day] = true
	}

	for day, row := range raw {
		if !daySet[day] {
			return nil, &MalformedScheduleError{Reason: fmt.Sprintf("unknown day %q in grid", day)}
		}
		for slot := range row {
			if !slotSet[slot] {
				return nil, &MalformedScheduleError{Reason: fmt.Sprintf("unknown slot %q on %s", slot, day)}
			}
		}
	}

	for _, day := range days {
		s.Grid[day] = make(map[string]Cell, len(slots))
		for _, slot := range slots {
			var rc *RawCell
			if raw != nil {
				rc = raw[day][slot]
			}
			cell, warn := Classify(rc, day, slot, lunchSlot != "" && slot == lunchSlot)
			s.Grid[day][slot] = cell
			if warn != nil {
				s.Warnings = append(s.Warnings, *warn)
			}
		}
	}

	return s, nil
}

// At returns the classified cell for a coordinate. Absence is still a valid
// empty cell, never a lookup failure.
func (s *Schedule) At(day, slot string) Cell {
	if row, ok := s.Grid[day]; ok {
		if c, ok := row[slot]; ok {
			return c
		}
	}
	return Cell{Kind: KindEmpty, Day: day, Slot: slot}
}

// Validate checks the structural invariants: non-empty unique day and slot
// lists and a rectangular grid (every day carries exactly the declared slot
// set). Renderers must not run on a schedule that fails this.
func (s *Schedule) Validate() error {
	if len(s.Days) == 0 {
		return &MalformedScheduleError{Reason: "no working days"}
	}
	if len(s.Slots) == 0 {
		return &MalformedScheduleError{Reason: "no time slots"}
	}

	seen := make(map[string]bool, len(s.Days))
	for _, day := range s.Days {
		if seen[day] {
			return &MalformedScheduleError{Reason: fmt.Sprintf("duplicate day %q", day)}
		}
		seen[day] = true
	}

	slotSeen := make(map[string]bool, len(s.Slots))
	for _, slot := range s.Slots {
		if slotSeen[slot] {
			return &MalformedScheduleError{Reason: fmt.Sprintf("duplicate slot %q", slot)}
		}
		slotSeen[slot] = true
	}

	if s.Grid == nil {
		return nil
	}

	for day, row := range s.Grid {
		if !seen[day] {
			return &MalformedScheduleError{Reason: fmt.Sprintf("grid day %q not in day list", day)}
		}
		if len(row) != len(s.Slots) {
			return &MalformedScheduleError{Reason: fmt.Sprintf("%s has %d slots, want %d", day, len(row), len(s.Slots))}
		}
		for slot := range row {
			if !slotSeen[slot] {
				return &MalformedScheduleError{Reason: fmt.Sprintf("grid slot %q on %s not in slot list", slot, day)}
			}
		}
	}
	for _, day := range s.Days {
		if _, ok := s.Grid[day]; !ok {
			return &MalformedScheduleError{Reason: fmt.Sprintf("no grid row for %s", day)}
		}
	}

	return nil
}
