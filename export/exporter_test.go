package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/acadtools/ttexport/aggregate"
	"github.com/acadtools/ttexport/converter"
	"github.com/acadtools/ttexport/model"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
}

// fullWeek builds a 5 day × 9 slot schedule: the lunch column absent on every
// day, everything else a session.
func fullWeek(t *testing.T) *model.Schedule {
	t.Helper()

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	slots := []string{
		"09:00-10:00", "10:00-11:00", "11:00-12:00", "12:00-13:00",
		"13:00-14:00", "14:00-15:00", "15:00-16:00", "16:00-17:00", "17:00-18:00",
	}

	subjects := []struct {
		name, code string
	}{
		{"Data Structures", "CS201"},
		{"Operating Systems", "CS305"},
		{"Database Systems", "CS310"},
		{"Computer Networks", "CS320"},
	}

	raw := make(map[string]map[string]*model.RawCell, len(days))
	i := 0
	for _, day := range days {
		raw[day] = make(map[string]*model.RawCell, len(slots))
		for _, slot := range slots {
			if slot == "12:00-13:00" {
				continue
			}
			sub := subjects[i%len(subjects)]
			i++
			raw[day][slot] = &model.RawCell{
				Subject:  sub.name,
				Code:     sub.code,
				Party:    "Dr. A. Rao",
				Room:     "R-204",
				Duration: 60,
				Credits:  4,
			}
		}
	}

	s, err := model.NewSchedule(days, slots, "12:00-13:00", raw)
	if err != nil {
		t.Fatalf("NewSchedule failed: %v", err)
	}
	return s
}

func TestExportWorkbook(t *testing.T) {
	dir := t.TempDir()
	s := fullWeek(t)

	art, err := New(nil).Export(s, &model.Metadata{Institution: "Hillgrove"}, Options{
		Format: "xlsx",
		Mode:   aggregate.BySubject,
		Out:    dir,
		Now:    fixedNow,
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if art.Name != "timetable_2026-09-01.xlsx" {
		t.Errorf("artifact name: got %q", art.Name)
	}
	if art.ID == "" {
		t.Error("artifact has no id")
	}
	if _, err := os.Stat(filepath.Join(dir, art.Name)); err != nil {
		t.Errorf("artifact file missing: %v", err)
	}

	//5 days × 8 session slots, breaks excluded
	if got := len(converter.DetailRows(s)); got != 40 {
		t.Errorf("detail rows: got %d, want 40", got)
	}
}

func TestExportDocument(t *testing.T) {
	dir := t.TempDir()

	art, err := New(nil).Export(fullWeek(t), nil, Options{
		Format:   "pdf",
		Mode:     aggregate.ByClass,
		BaseName: "cs3a",
		Out:      dir,
		Now:      fixedNow,
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if art.Name != "cs3a_2026-09-01.pdf" {
		t.Errorf("artifact name: got %q", art.Name)
	}
	if _, err := os.Stat(art.Path); err != nil {
		t.Errorf("artifact file missing: %v", err)
	}
}

func TestExportNamingDeterminism(t *testing.T) {
	dir := t.TempDir()
	s := fullWeek(t)

	names := make([]string, 2)
	for i := range names {
		art, err := New(nil).Export(s, nil, Options{
			Format: "json",
			Out:    dir,
			Now:    fixedNow,
		})
		if err != nil {
			t.Fatalf("Export failed: %v", err)
		}
		names[i] = art.Name
	}

	if names[0] != names[1] {
		t.Errorf("same base and date must name identically: %q vs %q", names[0], names[1])
	}
	if names[0] != "timetable_2026-09-01.json" {
		t.Errorf("got %q", names[0])
	}
}

func TestExportRejectsMalformedSchedule(t *testing.T) {
	s := fullWeek(t)
	delete(s.Grid["Friday"], "17:00-18:00") //rip one cell out

	dir := t.TempDir()
	_, err := New(nil).Export(s, nil, Options{Format: "xlsx", Out: dir, Now: fixedNow})
	if err == nil {
		t.Fatal("malformed schedule accepted")
	}
	var malformed *model.MalformedScheduleError
	if !errors.As(err, &malformed) {
		t.Errorf("got %T, want *MalformedScheduleError", err)
	}

	//fail-fast: nothing may be rendered
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("artifacts written despite validation failure: %v", entries)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := New(nil).Export(fullWeek(t), nil, Options{Format: "docx", Now: fixedNow})
	if err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestExportEmissionError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")

	_, err := New(nil).Export(fullWeek(t), nil, Options{Format: "json", Out: missing, Now: fixedNow})
	if err == nil {
		t.Fatal("expected an emission error")
	}
	var emission *ArtifactEmissionError
	if !errors.As(err, &emission) {
		t.Errorf("got %T, want *ArtifactEmissionError", err)
	}
}

func TestExportCollectsWarnings(t *testing.T) {
	s := fullWeek(t)
	//one session without a duration triggers the aggregation fallback
	cell := s.Grid["Monday"]["09:00-10:00"]
	cell.Duration = 0
	s.Grid["Monday"]["09:00-10:00"] = cell

	art, err := New(nil).Export(s, nil, Options{Format: "json", Out: t.TempDir(), Now: fixedNow})
	if err != nil {
		t.Fatalf("a malformed cell must not abort the export: %v", err)
	}

	found := false
	for _, w := range art.Warnings {
		if w.Kind == model.WarnAggregationFallback && w.Day == "Monday" {
			found = true
		}
	}
	if !found {
		t.Errorf("fallback warning not collected: %v", art.Warnings)
	}
}

// Both aggregation passes scan the same grid, so a malformed cell must be
// reported exactly once regardless of the view.
func TestExportWarningsNotDuplicatedByClass(t *testing.T) {
	s := fullWeek(t)
	cell := s.Grid["Monday"]["09:00-10:00"]
	cell.Duration = 0
	s.Grid["Monday"]["09:00-10:00"] = cell

	art, err := New(nil).Export(s, nil, Options{
		Format: "json",
		Mode:   aggregate.ByClass,
		Out:    t.TempDir(),
		Now:    fixedNow,
	})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	got := 0
	for _, w := range art.Warnings {
		if w.Kind == model.WarnAggregationFallback && w.Day == "Monday" && w.Slot == "09:00-10:00" {
			got++
		}
	}
	if got != 1 {
		t.Errorf("fallback warning for one malformed cell reported %d times, want 1", got)
	}
}

func TestExportDefaultsMode(t *testing.T) {
	art, err := New(nil).Export(fullWeek(t), nil, Options{Format: "pjson", Out: t.TempDir(), Now: fixedNow})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if art.Format != "pjson" {
		t.Errorf("format: got %q", art.Format)
	}
}
