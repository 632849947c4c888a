package xlreport

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/reportkit/xlreport-go/pkg/xlreport/layout"
)

// Table is an ordered tabular dataset: named columns, data rows, and
// an optional index label per row (0-based row numbers when nil).
type Table struct {
	Columns []string
	Index   []any
	Rows    [][]any
}

// Validate checks the dataset shape: every row must have one value per
// column and the index, when present, one label per row.
func (t *Table) Validate() error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("table row %d has %d values, expected %d", i, len(row), len(t.Columns))
		}
	}
	if t.Index != nil && len(t.Index) != len(t.Rows) {
		return fmt.Errorf("table index has %d labels, expected %d", len(t.Index), len(t.Rows))
	}
	return nil
}

func (t *Table) indexLabel(i int) any {
	if t.Index != nil {
		return t.Index[i]
	}
	return i
}

// NumberFormatKind is the categorical display format chosen for a
// table column.
type NumberFormatKind int

const (
	// FormatDefault leaves the spreadsheet's default number display.
	FormatDefault NumberFormatKind = iota
	// FormatPercent displays values as percentages with two decimals.
	FormatPercent
	// FormatInteger displays values without decimals.
	FormatInteger
	// FormatFloat displays values with three decimals.
	FormatFloat
)

// String returns the string representation of the format kind.
func (k NumberFormatKind) String() string {
	switch k {
	case FormatPercent:
		return "percent"
	case FormatInteger:
		return "integer"
	case FormatFloat:
		return "float"
	default:
		return "default"
	}
}

// numFormat returns the spreadsheet number format code, empty for the
// default kind.
func (k NumberFormatKind) numFormat() string {
	switch k {
	case FormatPercent:
		return "0.00%"
	case FormatInteger:
		return "0"
	case FormatFloat:
		return "0.000"
	default:
		return ""
	}
}

// formatKinds derives one format kind per column, computed once per
// render and consulted by index. A percent marker in the column name
// always wins; otherwise a column of integral values is integer, a
// numeric column with fractional values is float, and anything else is
// left to the default display.
func (t *Table) formatKinds() []NumberFormatKind {
	kinds := make([]NumberFormatKind, len(t.Columns))
	for j, name := range t.Columns {
		if strings.Contains(name, "%") {
			kinds[j] = FormatPercent
			continue
		}
		kinds[j] = columnValueKind(t.Rows, j)
	}
	return kinds
}

func columnValueKind(rows [][]any, col int) NumberFormatKind {
	if len(rows) == 0 {
		return FormatDefault
	}
	sawFloat := false
	for _, row := range rows {
		isNum, isInt := numericValue(row[col])
		if !isNum {
			return FormatDefault
		}
		if !isInt {
			sawFloat = true
		}
	}
	if sawFloat {
		return FormatFloat
	}
	return FormatInteger
}

// numericValue reports whether v is numeric and, if so, whether it is
// integral.
func numericValue(v any) (isNum, isInt bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true, true
	case float32, float64:
		return true, false
	default:
		return false, false
	}
}

// cellValue coerces a table value for writing: numbers pass through,
// everything else becomes its printed string. Values with no printable
// form are an UnsupportedValueError.
func cellValue(v any) (any, error) {
	if v == nil {
		return "", nil
	}
	if isNum, _ := numericValue(v); isNum {
		return v, nil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Func, reflect.Chan:
		return nil, &UnsupportedValueError{Value: v}
	}
	return fmt.Sprint(v), nil
}

// tableCellAttrs composes the format for one body cell: the column's
// number format plus the border overlay for the dataset's last row and
// column. A fresh record is built per cell; nothing is shared across
// writes.
func tableCellAttrs(kind NumberFormatKind, lastRow, lastCol bool) StyleAttrs {
	attrs := StyleAttrs{NumFormat: kind.numFormat()}.Clone()
	if lastRow && lastCol {
		attrs.Bottom = 1
		attrs.Right = 1
	} else if lastRow {
		attrs.Bottom = 1
	} else if lastCol {
		attrs.Right = 1
	}
	return attrs
}

// Table renders a dataset anchored at the cursor: the header row at
// the cursor row, the index labels in the cursor column, and the body
// in the column_count x row_count block below and right of them.
// Header columns grow the sheet's column widths to fit their names
// within the configured bounds. The cursor advances two rows past the
// body unless a shift is given; an empty dataset still writes the
// header and advances two rows.
func (r *Reporter) Table(t *Table, shift ...layout.Shift) error {
	if err := r.requireSheet(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	widths := r.columns[r.sheet]

	headerAttrs := r.theme.TableColumns.Clone()
	for j, name := range t.Columns {
		col := r.cursor.Col + j + 1
		need := layout.PrintedValueWidth(name)
		if w, grew := widths.Grow(col, need, r.opts.MinCellWidth, r.opts.MaxCellWidth); grew {
			if err := r.setColumnWidth(col, w); err != nil {
				return fmt.Errorf("size column %q: %w", name, err)
			}
		}
		if err := r.writeCell(r.cursor.Row, col, name, headerAttrs.Style()); err != nil {
			return fmt.Errorf("write header %q: %w", name, err)
		}
	}

	kinds := t.formatKinds()
	indexAttrs := r.theme.TableIndex.Clone()
	lastRow, lastCol := len(t.Rows)-1, len(t.Columns)-1
	for i, row := range t.Rows {
		if err := r.writeCell(r.cursor.Row+i+1, r.cursor.Col, t.indexLabel(i), indexAttrs.Style()); err != nil {
			return fmt.Errorf("write index %d: %w", i, err)
		}
		for j, val := range row {
			v, err := cellValue(val)
			if err != nil {
				return fmt.Errorf("table cell (%d,%d): %w", i, j, err)
			}
			attrs := tableCellAttrs(kinds[j], i == lastRow, j == lastCol)
			if err := r.writeCell(r.cursor.Row+i+1, r.cursor.Col+j+1, v, attrs.Style()); err != nil {
				return fmt.Errorf("write cell (%d,%d): %w", i, j, err)
			}
		}
	}

	r.advance(shift, layout.Shift{Rows: len(t.Rows) + 2})
	return nil
}

// setColumnWidth applies a grown width to a 0-based column together
// with the theme's default cell format.
func (r *Reporter) setColumnWidth(col int, width float64) error {
	name, err := columnName(col)
	if err != nil {
		return err
	}
	if err := r.file.SetColWidth(r.sheet, name, name, width); err != nil {
		return err
	}
	styleID, err := r.file.NewStyle(r.theme.DefaultCell.Style())
	if err != nil {
		return err
	}
	return r.file.SetColStyle(r.sheet, name, styleID)
}
