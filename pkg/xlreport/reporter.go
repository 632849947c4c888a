// Package xlreport lays out structured content blocks (text, captioned
// textboxes, images, tables) onto spreadsheet canvases. A Reporter
// keeps a cursor per active sheet, estimates printed sizes, auto-grows
// column widths within configured bounds, and delegates all cell,
// image and shape writes to excelize.
package xlreport

import (
	"fmt"
	"math"

	"github.com/reportkit/xlreport-go/pkg/xlreport/layout"
	"github.com/xuri/excelize/v2"
)

// lastStyledColumn is the rightmost column that receives the default
// width and cell format on sheet creation.
const lastStyledColumn = "ZZ"

// Reporter writes a formatted report workbook. It is not safe for
// concurrent use; callers serialize access externally.
type Reporter struct {
	path    string
	file    *excelize.File
	theme   *Theme
	opts    Options
	logo    *ReportImage
	sheet   string
	cursor  layout.Cursor
	columns map[string]*layout.ColumnWidths
	// The workbook excelize creates starts with one default sheet;
	// the first CreateSheet call renames it instead of adding.
	fresh bool
}

// New creates a report workbook that will be written to path on Close.
func New(path string, theme *Theme, opts Options) (*Reporter, error) {
	if theme == nil {
		return nil, fmt.Errorf("new reporter: nil theme")
	}
	if opts.PixelSheetWidth <= 0 {
		return nil, fmt.Errorf("new reporter: pixel sheet width must be positive, got %d", opts.PixelSheetWidth)
	}
	return &Reporter{
		path:    path,
		file:    excelize.NewFile(),
		theme:   theme,
		opts:    opts,
		columns: make(map[string]*layout.ColumnWidths),
		fresh:   true,
	}, nil
}

// SetLogo sets the image placed by CreateTitledSheet. A nil logo
// disables logo placement.
func (r *Reporter) SetLogo(img *ReportImage) {
	r.logo = img
}

// Close writes the workbook to its path and releases the underlying
// file. Callers must invoke Close explicitly (typically deferred); the
// reporter has no finalizer.
func (r *Reporter) Close() error {
	if err := r.file.SaveAs(r.path); err != nil {
		r.file.Close()
		return fmt.Errorf("save workbook: %w", err)
	}
	return r.file.Close()
}

// CreateSheet adds an empty sheet styled with the theme's default cell
// format, registers its column width tracking, and makes it the active
// sheet with the cursor at the origin.
func (r *Reporter) CreateSheet(name string) error {
	if r.fresh {
		// Rename the workbook's initial sheet rather than leaving an
		// empty default sheet behind.
		if err := r.file.SetSheetName(r.file.GetSheetName(0), name); err != nil {
			return fmt.Errorf("create sheet %q: %w", name, err)
		}
		r.fresh = false
	} else if _, err := r.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	styleID, err := r.file.NewStyle(r.theme.DefaultCell.Style())
	if err != nil {
		return fmt.Errorf("create sheet %q: default style: %w", name, err)
	}
	if err := r.file.SetColWidth(name, "A", lastStyledColumn, layout.CellWidth); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	if err := r.file.SetColStyle(name, "A:"+lastStyledColumn, styleID); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}

	r.columns[name] = layout.NewColumnWidths()
	return r.SetActiveSheet(name)
}

// SetActiveSheet switches placement to an existing sheet and resets
// the cursor, to the origin unless a position is given.
func (r *Reporter) SetActiveSheet(name string, at ...layout.Cursor) error {
	idx, err := r.file.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("activate sheet %q: %w", name, err)
	}
	if idx < 0 {
		return fmt.Errorf("activate sheet %q: %w", name, ErrSheetNotFound)
	}
	r.file.SetActiveSheet(idx)
	r.sheet = name
	if r.columns[name] == nil {
		r.columns[name] = layout.NewColumnWidths()
	}
	r.cursor = layout.Cursor{}
	if len(at) > 0 {
		r.SetCursor(at[0].Row, at[0].Col)
	}
	return nil
}

// Cursor returns the position where the next content block will be
// placed.
func (r *Reporter) Cursor() layout.Cursor {
	return r.cursor
}

// SetCursor repositions the cursor. Negative coordinates are a
// programmer error and panic.
func (r *Reporter) SetCursor(row, col int) {
	if row < 0 || col < 0 {
		panic(fmt.Sprintf("xlreport: negative cursor position (%d,%d)", row, col))
	}
	r.cursor = layout.Cursor{Row: row, Col: col}
}

func (r *Reporter) requireSheet() error {
	if r.sheet == "" {
		return ErrNoActiveSheet
	}
	return nil
}

// advance applies the first shift if given, the fallback otherwise.
func (r *Reporter) advance(shift []layout.Shift, fallback layout.Shift) {
	s := fallback
	if len(shift) > 0 {
		s = shift[0]
	}
	r.cursor = s.ApplyTo(r.cursor)
}

// columnName converts a 0-based column index to its sheet column name.
func columnName(col int) (string, error) {
	return excelize.ColumnNumberToName(col + 1)
}

// writeCell writes one value with a fresh style at a 0-based position.
// NaN and infinite floats are written as the spreadsheet error
// sentinels instead of failing.
func (r *Reporter) writeCell(row, col int, value any, style *excelize.Style) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	styleID, err := r.file.NewStyle(style)
	if err != nil {
		return err
	}
	if err := r.file.SetCellStyle(r.sheet, cell, cell, styleID); err != nil {
		return err
	}
	return r.file.SetCellValue(r.sheet, cell, sentinelValue(value))
}

// sentinelValue maps non-finite floats to spreadsheet error sentinels
// under the workbook-wide policy; all other values pass through.
func sentinelValue(v any) any {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	default:
		return v
	}
	switch {
	case math.IsNaN(f):
		return "#NUM!"
	case math.IsInf(f, 0):
		return "#DIV/0!"
	}
	return v
}

// Text writes a string at the cursor with the default cell appearance
// and advances, two rows down unless a shift is given.
func (r *Reporter) Text(s string, shift ...layout.Shift) error {
	return r.text(s, StyleAttrs{}, shift, layout.Shift{Rows: 2})
}

func (r *Reporter) text(s string, attrs StyleAttrs, shift []layout.Shift, fallback layout.Shift) error {
	if err := r.requireSheet(); err != nil {
		return err
	}
	if err := r.writeCell(r.cursor.Row, r.cursor.Col, s, attrs.Style()); err != nil {
		return fmt.Errorf("write text: %w", err)
	}
	r.advance(shift, fallback)
	return nil
}

// TextBox places a textbox one row below the cursor, spanning the
// sheet pixel width and sized to the estimated printed height of the
// text. A non-empty title additionally writes a header region at the
// cursor row: the title plus at least three title-formatted cells
// sized to the title's approximate width. The cursor advances past the
// box (estimated height plus two rows) unless a shift is given.
func (r *Reporter) TextBox(text, title string, shift ...layout.Shift) error {
	if err := r.requireSheet(); err != nil {
		return err
	}
	height := layout.PrintedTextHeight(text, r.opts.PixelSheetWidth)

	cell, err := excelize.CoordinatesToCellName(r.cursor.Col+1, r.cursor.Row+2)
	if err != nil {
		return err
	}
	box := &excelize.Shape{
		Cell:   cell,
		Type:   "rect",
		Width:  uint(r.opts.PixelSheetWidth),
		Height: uint(height * layout.PixelRowHeight),
		Paragraph: []excelize.RichTextRun{
			{Text: text, Font: r.theme.Textbox.font()},
		},
	}
	if c := r.theme.Textbox.BgColor; c != "" {
		box.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{c}}
	}
	if err := r.file.AddShape(r.sheet, box); err != nil {
		return fmt.Errorf("insert textbox: %w", err)
	}

	if title != "" {
		if err := r.textBoxTitle(title); err != nil {
			return err
		}
	}
	r.advance(shift, layout.Shift{Rows: height + 2})
	return nil
}

// textBoxTitle writes the header region above a textbox and restores
// the cursor to where it started.
func (r *Reporter) textBoxTitle(title string) error {
	anchor := r.cursor
	attrs := r.theme.TextTitle.Clone()
	step := []layout.Shift{{Cols: 1}}
	if err := r.text(title, attrs, step, layout.Shift{}); err != nil {
		return err
	}
	for i := 0; i < titleHeaderCells(title); i++ {
		if err := r.text("", attrs, step, layout.Shift{}); err != nil {
			return err
		}
	}
	r.cursor = anchor
	return nil
}

// titleHeaderCells is the number of blank header cells reserved after
// a textbox title: the title's approximate width in columns, with a
// floor of three.
func titleHeaderCells(title string) int {
	cells := len([]rune(title)) * layout.PixelCharWidth / layout.PixelCellWidth
	if cells < 3 {
		return 3
	}
	return cells
}

// ImageOptions bounds and offsets an inserted image. The zero value is
// not useful; use nil options for the defaults (450x800 pixel bounds,
// no offsets).
type ImageOptions struct {
	MaxWidth  int // pixels
	MaxHeight int // pixels
	OffsetX   int // pixels
	OffsetY   int // pixels
}

// DefaultImageOptions returns the default image bounds.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{MaxWidth: 450, MaxHeight: 800}
}

// Image inserts an image at the cursor, scaled down uniformly so it
// fits the pixel bounds (never scaled up). The cursor advances past
// the scaled image height plus one row unless a shift is given.
func (r *Reporter) Image(img *ReportImage, name string, opts *ImageOptions, shift ...layout.Shift) error {
	if err := r.requireSheet(); err != nil {
		return err
	}
	o := DefaultImageOptions()
	if opts != nil {
		o = *opts
	}

	scale := 1.0
	if s := float64(o.MaxWidth) / float64(img.Width); s < scale {
		scale = s
	}
	if s := float64(o.MaxHeight) / float64(img.Height); s < scale {
		scale = s
	}

	cell, err := excelize.CoordinatesToCellName(r.cursor.Col+1, r.cursor.Row+1)
	if err != nil {
		return err
	}
	pic := &excelize.Picture{
		Extension: img.Extension,
		File:      img.Bytes,
		Format: &excelize.GraphicOptions{
			AltText:     name,
			ScaleX:      scale,
			ScaleY:      scale,
			OffsetX:     o.OffsetX,
			OffsetY:     o.OffsetY,
			Positioning: "absolute",
		},
	}
	if err := r.file.AddPictureFromBytes(r.sheet, cell, pic); err != nil {
		return fmt.Errorf("insert image %q: %w", name, err)
	}

	rows := int(math.Ceil(float64(img.Height)*scale/layout.PixelRowHeight)) + 1
	r.advance(shift, layout.Shift{Rows: rows})
	return nil
}
