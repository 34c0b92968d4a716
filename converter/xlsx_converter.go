package converter

import (
	"fmt"

	"github.com/tealeg/xlsx/v3"
)

// XLSXConverter renders the workbook artifact: grid, detail, metadata and
// summary sheets, in that order.
type XLSXConverter struct{}

func (x XLSXConverter) Ext() string {
	return ".xlsx"
}

func (x XLSXConverter) Write(b Bundle, out string) error {
	wb, err := x.Build(b)
	if err != nil {
		return err
	}
	return wb.Save(out)
}

// Build assembles the in-memory workbook. Split from Write so the sheet
// contents can be inspected without touching disk.
func (x XLSXConverter) Build(b Bundle) (*xlsx.File, error) {
	wb := xlsx.NewFile()

	if err := x.gridSheet(wb, b); err != nil {
		return nil, err
	}
	if err := x.detailSheet(wb, b); err != nil {
		return nil, err
	}
	if err := x.metaSheet(wb, b); err != nil {
		return nil, err
	}
	if err := x.summarySheet(wb, b); err != nil {
		return nil, err
	}

	return wb, nil
}

func (x XLSXConverter) gridSheet(wb *xlsx.File, b Bundle) error {
	sh, err := wb.AddSheet(SheetGrid)
	if err != nil {
		return err
	}

	writeRow(sh, GridHeader(b.Schedule)...)
	for _, row := range GridRows(b.Schedule) {
		writeRow(sh, row...)
	}
	return nil
}

func (x XLSXConverter) detailSheet(wb *xlsx.File, b Bundle) error {
	sh, err := wb.AddSheet(SheetDetail)
	if err != nil {
		return err
	}

	writeRow(sh, DetailHeader(b.PartyLabel())...)
	for _, d := range DetailRows(b.Schedule) {
		row := sh.AddRow()
		for _, v := range []string{d.Day, d.Slot, d.Subject, d.Code, d.Party, d.Room, d.Building, d.Type} {
			row.AddCell().SetString(v)
		}
		row.AddCell().SetInt(d.Credits)
		row.AddCell().SetString(d.Topics)
		row.AddCell().SetString(d.Assignments)
	}
	return nil
}

func (x XLSXConverter) metaSheet(wb *xlsx.File, b Bundle) error {
	sh, err := wb.AddSheet(SheetMeta)
	if err != nil {
		return err
	}

	for i, section := range MetaSections(b.Meta) {
		if i > 0 {
			sh.AddRow() //spacer between sections
		}
		writeRow(sh, section.Title)
		for _, pair := range section.Pairs {
			writeRow(sh, pair[0], pair[1])
		}
	}
	return nil
}

func (x XLSXConverter) summarySheet(wb *xlsx.File, b Bundle) error {
	sh, err := wb.AddSheet(b.SummaryName())
	if err != nil {
		return err
	}

	writeRow(sh, SummaryHeader(b.PartyLabel())...)
	for _, r := range b.Summary() {
		row := sh.AddRow()
		row.AddCell().SetString(r.Code)
		row.AddCell().SetString(r.Subject)
		row.AddCell().SetString(r.Party)
		row.AddCell().SetInt(r.Credits)
		row.AddCell().SetString(r.Room)
		row.AddCell().SetInt(r.Sessions)
		row.AddCell().SetString(fmt.Sprintf("%.1f", r.Hours()))
	}
	return nil
}

func writeRow(sh *xlsx.Sheet, values ...string) {
	row := sh.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
