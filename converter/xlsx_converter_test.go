package converter

import (
	"testing"

	"github.com/tealeg/xlsx/v3"

	"github.com/acadtools/ttexport/aggregate"
)

func cellString(t *testing.T, sh *xlsx.Sheet, row, col int) string {
	t.Helper()
	c, err := sh.Cell(row, col)
	if err != nil {
		t.Fatalf("cell (%d, %d): %v", row, col, err)
	}
	return c.String()
}

func TestWorkbookSheetOrder(t *testing.T) {
	wb, err := XLSXConverter{}.Build(fixtureBundle(t, aggregate.BySubject))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{SheetGrid, SheetDetail, SheetMeta, SheetSubjectSummary}
	if len(wb.Sheets) != len(want) {
		t.Fatalf("got %d sheets, want %d", len(wb.Sheets), len(want))
	}
	for i, name := range want {
		if wb.Sheets[i].Name != name {
			t.Errorf("sheet %d: got %q, want %q", i, wb.Sheets[i].Name, name)
		}
	}

	teacherWB, err := XLSXConverter{}.Build(fixtureBundle(t, aggregate.ByClass))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if teacherWB.Sheets[3].Name != SheetClassSummary {
		t.Errorf("teacher view summary sheet: got %q", teacherWB.Sheets[3].Name)
	}
}

func TestWorkbookGridSheet(t *testing.T) {
	b := fixtureBundle(t, aggregate.BySubject)
	wb, err := XLSXConverter{}.Build(b)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	sh := wb.Sheet[SheetGrid]

	if got := cellString(t, sh, 0, 0); got != "Time" {
		t.Errorf("header corner: got %q", got)
	}
	if got := cellString(t, sh, 0, 1); got != "Monday" {
		t.Errorf("first day column: got %q", got)
	}

	//every body cell must match the shared formatter exactly
	for ri, slot := range b.Schedule.Slots {
		for ci, day := range b.Schedule.Days {
			want := CellText(b.Schedule.At(day, slot))
			if got := cellString(t, sh, ri+1, ci+1); got != want {
				t.Errorf("(%s, %s): got %q, want %q", day, slot, got, want)
			}
		}
	}
}

func TestWorkbookDetailSheet(t *testing.T) {
	b := fixtureBundle(t, aggregate.BySubject)
	wb, err := XLSXConverter{}.Build(b)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	sh := wb.Sheet[SheetDetail]

	if got := cellString(t, sh, 0, 4); got != "Instructor" {
		t.Errorf("party column header: got %q", got)
	}

	rows := DetailRows(b.Schedule)
	if sh.MaxRow != len(rows)+1 {
		t.Errorf("detail sheet rows: got %d, want %d", sh.MaxRow, len(rows)+1)
	}
	if got := cellString(t, sh, 1, 2); got != rows[0].Subject {
		t.Errorf("first detail subject: got %q, want %q", got, rows[0].Subject)
	}
}

func TestWorkbookSummarySheet(t *testing.T) {
	b := fixtureBundle(t, aggregate.BySubject)
	wb, err := XLSXConverter{}.Build(b)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	sh := wb.Sheet[SheetSubjectSummary]

	if sh.MaxRow != len(b.SubjectSummary)+1 {
		t.Fatalf("summary rows: got %d, want %d", sh.MaxRow, len(b.SubjectSummary)+1)
	}

	//CS201 appears twice in the fixture, one hour each
	if got := cellString(t, sh, 1, 0); got != "CS201" {
		t.Errorf("first summary code: got %q", got)
	}
	if got := cellString(t, sh, 1, 5); got != "2" {
		t.Errorf("CS201 sessions: got %q", got)
	}
	if got := cellString(t, sh, 1, 6); got != "2.0" {
		t.Errorf("CS201 hours: got %q", got)
	}
}

func TestWorkbookMetaSheet(t *testing.T) {
	b := fixtureBundle(t, aggregate.BySubject)
	wb, err := XLSXConverter{}.Build(b)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	sh := wb.Sheet[SheetMeta]

	if got := cellString(t, sh, 0, 0); got != "Academic Details" {
		t.Errorf("first section header: got %q", got)
	}
	if got := cellString(t, sh, 1, 0); got != "Program" {
		t.Errorf("first pair key: got %q", got)
	}
	if got := cellString(t, sh, 1, 1); got != "B.Tech CSE" {
		t.Errorf("first pair value: got %q", got)
	}
}
