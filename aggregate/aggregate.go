package aggregate

import (
	"fmt"
	"math"

	"github.com/acadtools/ttexport/model"
)

// Mode selects the grouping key for the summary view.
type Mode string

const (
	BySubject Mode = "subject" //learner view, keyed by subject code
	ByClass   Mode = "class"   //instructor view, keyed by subject code + class group
)

// FallbackMinutes is substituted for a session with a missing or non-positive
// duration; one malformed cell must not abort the export.
const FallbackMinutes = 60

// Row is one grouped summary line. Descriptive fields come from the first
// session seen for the key, later sessions only bump the counters.
type Row struct {
	Code     string `json:"code"`
	Subject  string `json:"subject"`
	Party    string `json:"party,omitempty"`
	Room     string `json:"room,omitempty"`
	Building string `json:"building,omitempty"`
	Type     string `json:"type,omitempty"`
	Credits  int    `json:"credits,omitempty"`

	Sessions int `json:"sessions"`
	Minutes  int `json:"minutes"`
}

// Hours is the summary representation of Minutes, rounded to one decimal.
func (r Row) Hours() float64 {
	return math.Round(float64(r.Minutes)/60*10) / 10
}

// Aggregate walks the grid once, days in schedule order and slots in schedule
// order, and groups session cells by the mode's key. Rows come back in
// first-seen order so repeated exports of the same schedule diff cleanly.
// Non-session cells contribute nothing.
func Aggregate(s *model.Schedule, mode Mode) ([]Row, []model.Warning) {
	var (
		rows     []Row
		warnings []model.Warning
	)
	index := make(map[string]int)

	for _, day := range s.Days {
		for _, slot := range s.Slots {
			cell := s.At(day, slot)
			if cell.Kind != model.KindSession {
				continue
			}

			minutes := cell.Duration
			if minutes <= 0 {
				minutes = FallbackMinutes
				warnings = append(warnings, model.Warning{
					Kind:   model.WarnAggregationFallback,
					Day:    day,
					Slot:   slot,
					Detail: fmt.Sprintf("duration %d, substituted %d minutes", cell.Duration, FallbackMinutes),
				})
			}

			key := cell.Code
			if mode == ByClass {
				key = cell.Code + "|" + cell.Party
			}

			i, ok := index[key]
			if !ok {
				i = len(rows)
				index[key] = i
				rows = append(rows, Row{
					Code:     cell.Code,
					Subject:  cell.Subject,
					Party:    cell.Party,
					Room:     cell.Room,
					Building: cell.Building,
					Type:     cell.Type,
					Credits:  cell.Credits,
				})
			}

			rows[i].Sessions++
			rows[i].Minutes += minutes
		}
	}

	return rows, warnings
}

// SessionCount is the number of session cells in the grid, useful for
// cross-checking summary totals.
func SessionCount(s *model.Schedule) int {
	n := 0
	for _, day := range s.Days {
		for _, slot := range s.Slots {
			if s.At(day, slot).Kind == model.KindSession {
				n++
			}
		}
	}
	return n
}

// CreditSum adds up the credits across summary rows, each subject counted
// once.
func CreditSum(rows []Row) int {
	total := 0
	for _, r := range rows {
		total += r.Credits
	}
	return total
}
