package layout

// ColumnWidths tracks the current width of each column on one sheet.
// Widths only grow: once content has been observed, a column never
// shrinks below the width recorded for it.
type ColumnWidths struct {
	widths map[int]float64
}

// NewColumnWidths returns an empty registry. Unset columns report the
// default cell width.
func NewColumnWidths() *ColumnWidths {
	return &ColumnWidths{widths: make(map[int]float64)}
}

// Width returns the current width of col in cell-width units.
func (c *ColumnWidths) Width(col int) float64 {
	if w, ok := c.widths[col]; ok {
		return w
	}
	return CellWidth
}

// Grow records the width needed for new content in col, clipped to
// [minWidth, maxWidth]. It returns the column's resulting width and
// whether it changed; the caller is responsible for applying a changed
// width to the underlying sheet. The stored width never decreases.
func (c *ColumnWidths) Grow(col int, need, minWidth, maxWidth float64) (float64, bool) {
	if c.Width(col) >= need {
		return c.Width(col), false
	}
	w := Clip(need, minWidth, maxWidth)
	c.widths[col] = w
	return w, true
}
