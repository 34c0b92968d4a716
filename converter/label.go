package converter

import (
	"fmt"
	"strings"

	"github.com/acadtools/ttexport/model"
)

// CellText is the canonical multi-line caption for a classified cell. Both
// the workbook grid and the document grid go through here, so the two
// artifacts can never disagree on wording for the same cell.
func CellText(c model.Cell) string {
	switch c.Kind {
	case model.KindEmpty:
		return ""
	case model.KindBreak, model.KindFreePeriod:
		return c.Label
	case model.KindSpecialEvent:
		if c.Coordinator != "" {
			return c.Label + "\n" + c.Coordinator
		}
		return c.Label
	default:
		return joinLines(c.Subject, c.Code, c.Room, c.Party)
	}
}

func joinLines(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// GridHeader is the grid table header: slot column plus one column per day.
func GridHeader(s *model.Schedule) []string {
	header := make([]string, 0, len(s.Days)+1)
	header = append(header, "Time")
	return append(header, s.Days...)
}

// GridRows renders the grid body, one row per slot in schedule order.
func GridRows(s *model.Schedule) [][]string {
	rows := make([][]string, 0, len(s.Slots))
	for _, slot := range s.Slots {
		row := make([]string, 0, len(s.Days)+1)
		row = append(row, slot)
		for _, day := range s.Days {
			row = append(row, CellText(s.At(day, slot)))
		}
		rows = append(rows, row)
	}
	return rows
}

// DetailRow is one line of the session-only audit listing.
type DetailRow struct {
	Day         string
	Slot        string
	Subject     string
	Code        string
	Party       string
	Room        string
	Building    string
	Type        string
	Credits     int
	Topics      string
	Assignments string
}

// DetailRows flattens the grid into the detail listing, sessions only, in
// day then slot order. Breaks, free periods and special events are excluded
// here on purpose: the listing is a session audit trail, and its per-subject
// row count must equal the summary's session count.
func DetailRows(s *model.Schedule) []DetailRow {
	var rows []DetailRow
	for _, day := range s.Days {
		for _, slot := range s.Slots {
			c := s.At(day, slot)
			if c.Kind != model.KindSession {
				continue
			}
			rows = append(rows, DetailRow{
				Day:         day,
				Slot:        slot,
				Subject:     c.Subject,
				Code:        c.Code,
				Party:       c.Party,
				Room:        c.Room,
				Building:    c.Building,
				Type:        c.Type,
				Credits:     c.Credits,
				Topics:      strings.Join(c.Topics, "; "),
				Assignments: strings.Join(c.Assignments, "; "),
			})
		}
	}
	return rows
}

// DetailHeader is the detail listing header, with the party column caption
// depending on the view.
func DetailHeader(partyLabel string) []string {
	return []string{"Day", "Time", "Subject", "Code", partyLabel, "Room", "Building", "Type", "Credits", "Topics", "Assignments"}
}

// SummaryHeader is the summary listing header.
func SummaryHeader(partyLabel string) []string {
	return []string{"Code", "Subject", partyLabel, "Credits", "Room", "Sessions", "Hours"}
}

// MetaSection is one titled block of the metadata listing.
type MetaSection struct {
	Title string
	Pairs [][2]string
}

// MetaSections lays the metadata out as titled key/value blocks. Absent
// fields are omitted rather than rendered blank, and empty sections are
// dropped entirely.
func MetaSections(m *model.Metadata) []MetaSection {
	if m == nil {
		return nil
	}

	build := func(title string, pairs [][2]string) *MetaSection {
		kept := pairs[:0]
		for _, p := range pairs {
			if p[1] != "" {
				kept = append(kept, p)
			}
		}
		if len(kept) == 0 {
			return nil
		}
		return &MetaSection{Title: title, Pairs: kept}
	}

	stat := func(n int) string {
		if n == 0 {
			return ""
		}
		return fmt.Sprintf("%d", n)
	}

	candidates := []*MetaSection{
		build("Academic Details", [][2]string{
			{"Program", m.Program},
			{"Term", m.Term},
			{"Semester", m.Semester},
			{"Class Group", m.ClassGroup},
			{"Advisor", m.Advisor},
		}),
		build("Institution Details", [][2]string{
			{"Institution", m.Institution},
			{"Department", m.Department},
			{"Contact Email", m.ContactEmail},
			{"Contact Phone", m.ContactPhone},
		}),
		build("Statistics", [][2]string{
			{"Total Subjects", stat(m.TotalSubjects)},
			{"Total Credits", stat(m.TotalCredits)},
			{"Weekly Hours", stat(m.WeeklyHours)},
		}),
		build("Important Dates", [][2]string{
			{"Term Start", m.TermStart},
			{"Term End", m.TermEnd},
			{"Exams Begin", m.ExamStart},
		}),
	}

	var sections []MetaSection
	for _, c := range candidates {
		if c != nil {
			sections = append(sections, *c)
		}
	}
	return sections
}
