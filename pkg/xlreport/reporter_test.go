package xlreport

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/reportkit/xlreport-go/pkg/xlreport/layout"
)

func testTheme() *Theme {
	return &Theme{
		DefaultCell:  StyleAttrs{FontSize: 10},
		SheetTitle:   StyleAttrs{Bold: true, FontColor: "#FFFFFF", BgColor: "#1F4E78"},
		TextTitle:    StyleAttrs{Bold: true},
		Textbox:      StyleAttrs{FontSize: 9},
		TableColumns: StyleAttrs{Bold: true, Bottom: 1},
		TableIndex:   StyleAttrs{Italic: true},
	}
}

func newTestReporter(t *testing.T) *Reporter {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xlsx")
	r, err := New(path, testTheme(), DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r
}

func TestCreateSheetActivates(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	if err := r.CreateSheet("Summary"); err != nil {
		t.Fatalf("CreateSheet failed: %v", err)
	}
	if got := r.Cursor(); got != (layout.Cursor{}) {
		t.Errorf("cursor after CreateSheet = %+v, expected origin", got)
	}

	// The workbook's initial default sheet is renamed, not kept.
	if names := r.file.GetSheetList(); len(names) != 1 || names[0] != "Summary" {
		t.Errorf("sheet list = %v, expected [Summary]", names)
	}
}

func TestSetActiveSheetResetsCursor(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	if err := r.CreateSheet("A"); err != nil {
		t.Fatalf("CreateSheet failed: %v", err)
	}
	if err := r.CreateSheet("B"); err != nil {
		t.Fatalf("CreateSheet failed: %v", err)
	}
	r.SetCursor(5, 3)

	if err := r.SetActiveSheet("A"); err != nil {
		t.Fatalf("SetActiveSheet failed: %v", err)
	}
	if got := r.Cursor(); got != (layout.Cursor{}) {
		t.Errorf("cursor after SetActiveSheet = %+v, expected origin", got)
	}

	if err := r.SetActiveSheet("B", layout.Cursor{Row: 2, Col: 1}); err != nil {
		t.Fatalf("SetActiveSheet with position failed: %v", err)
	}
	if got := r.Cursor(); got != (layout.Cursor{Row: 2, Col: 1}) {
		t.Errorf("cursor = %+v, expected (2,1)", got)
	}
}

func TestSetActiveSheetNotFound(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	err := r.SetActiveSheet("Missing")
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("expected ErrSheetNotFound, got %v", err)
	}
}

func TestTextAdvancesCursor(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	if err := r.CreateSheet("S"); err != nil {
		t.Fatalf("CreateSheet failed: %v", err)
	}
	if err := r.Text("Hello"); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if got := r.Cursor(); got != (layout.Cursor{Row: 2}) {
		t.Errorf("cursor after Text = %+v, expected (2,0)", got)
	}

	got, err := r.file.GetCellValue("S", "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "Hello" {
		t.Errorf("A1 = %q, expected %q", got, "Hello")
	}
}

func TestTextCustomShift(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	if err := r.CreateSheet("S"); err != nil {
		t.Fatalf("CreateSheet failed: %v", err)
	}
	if err := r.Text("a", layout.Shift{Rows: 1, Cols: 2}); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if got := r.Cursor(); got != (layout.Cursor{Row: 1, Col: 2}) {
		t.Errorf("cursor = %+v, expected (1,2)", got)
	}
}

func TestTextWithoutSheet(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	if err := r.Text("orphan"); !errors.Is(err, ErrNoActiveSheet) {
		t.Errorf("expected ErrNoActiveSheet, got %v", err)
	}
}

func TestTextBoxAdvance(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	if err := r.CreateSheet("S"); err != nil {
		t.Fatalf("CreateSheet failed: %v", err)
	}
	// Two short lines estimate to height 2; default shift is height+2.
	if err := r.TextBox("line one\nline two", ""); err != nil {
		t.Fatalf("TextBox failed: %v", err)
	}
	if got := r.Cursor(); got != (layout.Cursor{Row: 4}) {
		t.Errorf("cursor after TextBox = %+v, expected (4,0)", got)
	}
}

func TestTextBoxTitleRestoresCursor(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	if err := r.CreateSheet("S"); err != nil {
		t.Fatalf("CreateSheet failed: %v", err)
	}
	r.SetCursor(3, 0)
	if err := r.TextBox("body", "Caption"); err != nil {
		t.Fatalf("TextBox failed: %v", err)
	}
	// The title header writes sideways from (3,0) but the cursor is
	// restored before the default downward shift applies.
	if got := r.Cursor(); got != (layout.Cursor{Row: 6}) {
		t.Errorf("cursor after titled TextBox = %+v, expected (6,0)", got)
	}

	got, err := r.file.GetCellValue("S", "A4")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "Caption" {
		t.Errorf("A4 = %q, expected %q", got, "Caption")
	}
}

func TestTitleHeaderCells(t *testing.T) {
	tests := []struct {
		title    string
		expected int
	}{
		{"", 3},
		{"ab", 3},                     // 2*9/64 = 0 -> floor of three
		{"a long caption here....", 3}, // 23*9/64 = 3
		{"an even longer caption text !!", 4}, // 30*9/64 = 4
	}

	for _, tt := range tests {
		if got := titleHeaderCells(tt.title); got != tt.expected {
			t.Errorf("titleHeaderCells(%q) = %d, expected %d", tt.title, got, tt.expected)
		}
	}
}

func TestSetCursorPanicsOnNegative(t *testing.T) {
	r := newTestReporter(t)
	defer r.Close()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative cursor")
		}
	}()
	r.SetCursor(-1, 0)
}

func TestCloseWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	r, err := New(path, testTheme(), DefaultOptions())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := r.CreateSheet("S"); err != nil {
		t.Fatalf("CreateSheet failed: %v", err)
	}
	if err := r.Text("persisted"); err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("S", "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "persisted" {
		t.Errorf("A1 = %q, expected %q", got, "persisted")
	}
}
