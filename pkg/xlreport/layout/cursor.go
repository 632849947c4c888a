package layout

import "fmt"

// Cursor is the position on the active sheet where the next content
// block will be placed. Coordinates are 0-based and never negative.
type Cursor struct {
	Row int
	Col int
}

// Shift is a (row-delta, column-delta) vector applied to the cursor
// after placing a content block.
type Shift struct {
	Rows int
	Cols int
}

// ApplyTo returns the cursor advanced by the shift. Driving the cursor
// negative is a programmer error and panics.
func (s Shift) ApplyTo(c Cursor) Cursor {
	next := Cursor{Row: c.Row + s.Rows, Col: c.Col + s.Cols}
	if next.Row < 0 || next.Col < 0 {
		panic(fmt.Sprintf("layout: shift (%d,%d) moves cursor (%d,%d) out of bounds",
			s.Rows, s.Cols, c.Row, c.Col))
	}
	return next
}
