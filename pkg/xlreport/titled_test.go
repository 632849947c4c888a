package xlreport

import (
	"testing"

	"github.com/reportkit/xlreport-go/pkg/xlreport/layout"
)

func TestCreateTitledSheet(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	r.SetLogo(mustDecode(t, pngBytes(t, 200, 100)))
	if err := r.CreateTitledSheet("Overview", "Quarterly results", "All figures preliminary."); err != nil {
		t.Fatalf("CreateTitledSheet failed: %v", err)
	}

	// Title text lands next to the logo band, prefixed with a space.
	got, err := r.file.GetCellValue("Overview", "C2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != " Quarterly results" {
		t.Errorf("C2 = %q, expected %q", got, " Quarterly results")
	}

	// Band leaves the cursor at (2,1); the one-row description textbox
	// then advances it by 3 rows.
	if gotCur := r.Cursor(); gotCur != (layout.Cursor{Row: 5, Col: 1}) {
		t.Errorf("cursor = %+v, expected (5,1)", gotCur)
	}
}

func TestCreateTitledSheetWithoutLogo(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	if err := r.CreateTitledSheet("Plain", "No logo", "desc"); err != nil {
		t.Fatalf("CreateTitledSheet without logo failed: %v", err)
	}
	if got, _ := r.file.GetCellValue("Plain", "C2"); got != " No logo" {
		t.Errorf("C2 = %q, expected %q", got, " No logo")
	}
}

func mustDecode(t *testing.T, data []byte) *ReportImage {
	t.Helper()
	img, err := DecodeImage(data)
	if err != nil {
		t.Fatalf("DecodeImage failed: %v", err)
	}
	return img
}
