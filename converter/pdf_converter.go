package converter

import (
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/acadtools/ttexport/model"
	"github.com/acadtools/ttexport/utils"
)

// PDFConverter renders the paginated document artifact: header page, grid
// page, detail page and metadata page, in that fixed order.
type PDFConverter struct{}

// Landscape A4 layout
const (
	pageLeft   = 10.0
	pageRight  = 287.0
	pageBottom = 195.0
	gridLineH  = 4.5
	tableLineH = 6.0
	slotColW   = 30.0
)

func (p PDFConverter) Ext() string {
	return ".pdf"
}

func (p PDFConverter) Write(b Bundle, out string) error {
	pdf := p.Build(b)
	return pdf.OutputFileAndClose(out)
}

// Build assembles the in-memory document; Write only adds the file emission.
func (p PDFConverter) Build(b Bundle) *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(SheetGrid, false)
	pdf.SetAutoPageBreak(false, 10)

	p.headerPage(pdf, b)
	p.gridPage(pdf, b)
	p.detailPage(pdf, b)
	p.metaPage(pdf, b)

	return pdf
}

func (p PDFConverter) headerPage(pdf *fpdf.Fpdf, b Bundle) {
	pdf.AddPage()

	pdf.SetY(60)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.CellFormat(0, 14, SheetGrid, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 14)
	if b.Meta != nil && b.Meta.Institution != "" {
		pdf.CellFormat(0, 10, b.Meta.Institution, "", 1, "C", false, 0, "")
	}

	if line := identityLine(b.Meta); line != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, line, "", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, "Generated "+b.Generated.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func identityLine(m *model.Metadata) string {
	if m == nil {
		return ""
	}
	var parts []string
	for _, p := range []string{m.Program, m.Term, m.ClassGroup} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

func (p PDFConverter) gridPage(pdf *fpdf.Fpdf, b Bundle) {
	pdf.AddPage()
	p.pageTitle(pdf, SheetGrid)

	s := b.Schedule
	dayColW := (pageRight - pageLeft - slotColW) / float64(len(s.Days))

	//header row
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(225, 225, 225)
	for i, h := range GridHeader(s) {
		w := dayColW
		if i == 0 {
			w = slotColW
		}
		pdf.CellFormat(w, 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, slot := range s.Slots {
		//cell captions come from the same formatter the workbook uses
		lines := make([][]string, len(s.Days)+1)
		lines[0] = []string{slot}
		maxLines := 1
		for i, day := range s.Days {
			lines[i+1] = strings.Split(CellText(s.At(day, slot)), "\n")
			if n := len(lines[i+1]); n > maxLines {
				maxLines = n
			}
		}
		rowH := float64(maxLines)*gridLineH + 2

		if pdf.GetY()+rowH > pageBottom {
			pdf.AddPage()
			p.pageTitle(pdf, SheetGrid)
			pdf.SetFont("Helvetica", "", 8)
		}

		x, y := pageLeft, pdf.GetY()
		for i := 0; i <= len(s.Days); i++ {
			w := dayColW
			muted := false
			if i == 0 {
				w = slotColW
			} else {
				kind := s.At(s.Days[i-1], slot).Kind
				muted = kind != model.KindSession
			}

			if muted {
				pdf.SetFillColor(240, 240, 240)
				pdf.Rect(x, y, w, rowH, "FD")
				pdf.SetTextColor(120, 120, 120)
			} else {
				pdf.Rect(x, y, w, rowH, "D")
			}

			for li := 0; li < maxLines; li++ {
				pdf.SetXY(x, y+1+float64(li)*gridLineH)
				pdf.CellFormat(w, gridLineH, utils.GetOrString(lines[i], li, ""), "", 0, "C", false, 0, "")
			}
			pdf.SetTextColor(0, 0, 0)
			x += w
		}
		pdf.SetXY(pageLeft, y+rowH)
	}
}

var detailColW = []float64{22, 26, 46, 18, 34, 18, 22, 20, 14, 32, 25}

func (p PDFConverter) detailPage(pdf *fpdf.Fpdf, b Bundle) {
	pdf.AddPage()
	p.pageTitle(pdf, SheetDetail)

	header := DetailHeader(b.PartyLabel())
	p.tableHeader(pdf, header, detailColW)

	pdf.SetFont("Helvetica", "", 8)
	for _, d := range DetailRows(b.Schedule) {
		if pdf.GetY()+tableLineH > pageBottom {
			pdf.AddPage()
			p.pageTitle(pdf, SheetDetail)
			p.tableHeader(pdf, header, detailColW)
			pdf.SetFont("Helvetica", "", 8)
		}
		cells := []string{
			d.Day, d.Slot, d.Subject, d.Code, d.Party, d.Room,
			d.Building, d.Type, intCell(d.Credits), d.Topics, d.Assignments,
		}
		for i, v := range cells {
			pdf.CellFormat(detailColW[i], tableLineH, clip(v, detailColW[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func (p PDFConverter) metaPage(pdf *fpdf.Fpdf, b Bundle) {
	sections := MetaSections(b.Meta)
	if len(sections) == 0 {
		return
	}

	pdf.AddPage()
	p.pageTitle(pdf, SheetMeta)

	for _, section := range sections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 8, section.Title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, pair := range section.Pairs {
			pdf.CellFormat(50, 6, pair[0], "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, pair[1], "", 1, "L", false, 0, "")
		}
		pdf.Ln(2)
	}
}

func (p PDFConverter) pageTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (p PDFConverter) tableHeader(pdf *fpdf.Fpdf, header []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(225, 225, 225)
	for i, h := range header {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}

func intCell(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// clip shortens a value to roughly the characters that fit its column.
func clip(s string, w float64) string {
	max := int(w / 1.7)
	if max < 4 {
		max = 4
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
