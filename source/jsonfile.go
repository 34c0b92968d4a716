package source

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/acadtools/ttexport/config"
	"github.com/acadtools/ttexport/model"
)

// JSONFile loads the schedule document the external generator emits:
// declared day and slot lists plus a grid of possibly-null raw cells.
type JSONFile struct {
	config config.ExportConfig
}

func NewJSONFile(cfg config.ExportConfig) *JSONFile {
	return &JSONFile{config: cfg}
}

func (j *JSONFile) Name() string {
	return "json"
}

type scheduleDocument struct {
	Days      []string                             `json:"days"`
	Slots     []string                             `json:"slots"`
	LunchSlot string                               `json:"lunch_slot,omitempty"`
	Grid      map[string]map[string]*model.RawCell `json:"grid"`
	Metadata  *model.Metadata                      `json:"metadata,omitempty"`
}

func (j *JSONFile) Load() (*model.Schedule, *model.Metadata, error) {
	if j.config.Input == "" {
		return nil, nil, fmt.Errorf("-input can not be empty for the json source")
	}

	raw, err := os.ReadFile(j.config.Input)
	if err != nil {
		return nil, nil, err
	}

	var doc scheduleDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", j.config.Input, err)
	}

	declared := make(map[string]bool, len(doc.Days))
	days := make([]string, 0, len(doc.Days))
	for _, day := range doc.Days {
		declared[day] = true
		if j.config.DayMatcher.Match(day) {
			days = append(days, day)
		}
	}
	for day := range doc.Grid {
		if !declared[day] {
			return nil, nil, &model.MalformedScheduleError{Reason: fmt.Sprintf("grid day %q not declared in day list", day)}
		}
	}

	grid := make(map[string]map[string]*model.RawCell, len(days))
	for _, day := range days {
		grid[day] = make(map[string]*model.RawCell, len(doc.Slots))
		for slot, cell := range doc.Grid[day] {
			//filtered sessions degrade to the empty placeholder
			if cell != nil && cell.Subject != "" && !j.config.SubjectMatcher.Match(cell.Subject) {
				continue
			}
			grid[day][slot] = cell
		}
	}

	s, err := model.NewSchedule(days, doc.Slots, doc.LunchSlot, grid)
	if err != nil {
		return nil, nil, err
	}

	return s, doc.Metadata, nil
}
