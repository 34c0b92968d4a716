package converter

import (
	"bytes"
	"testing"

	"github.com/acadtools/ttexport/aggregate"
)

func TestDocumentPageOrder(t *testing.T) {
	pdf := PDFConverter{}.Build(fixtureBundle(t, aggregate.BySubject))
	if pdf.Err() {
		t.Fatalf("document build failed: %v", pdf.Error())
	}

	//header, grid, detail, metadata
	if got := pdf.PageCount(); got != 4 {
		t.Errorf("page count: got %d, want 4", got)
	}
}

func TestDocumentWithoutMetadata(t *testing.T) {
	b := fixtureBundle(t, aggregate.BySubject)
	b.Meta = nil

	pdf := PDFConverter{}.Build(b)
	if pdf.Err() {
		t.Fatalf("document build failed: %v", pdf.Error())
	}

	//the metadata page is optional, the first three are not
	if got := pdf.PageCount(); got != 3 {
		t.Errorf("page count: got %d, want 3", got)
	}
}

func TestDocumentSerializes(t *testing.T) {
	pdf := PDFConverter{}.Build(fixtureBundle(t, aggregate.ByClass))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not look like a pdf, starts with %q", buf.Bytes()[:8])
	}
}

func TestClip(t *testing.T) {
	if got := clip("short", 40); got != "short" {
		t.Errorf("short value clipped: %q", got)
	}
	long := "a very long topic list that cannot possibly fit into one narrow column"
	got := clip(long, 20)
	if len(got) >= len(long) {
		t.Errorf("long value not clipped: %q", got)
	}
}
