package layout

import "testing"

func TestColumnWidthsDefault(t *testing.T) {
	c := NewColumnWidths()
	if w := c.Width(3); w != CellWidth {
		t.Errorf("Width(3) on empty registry = %v, expected %v", w, CellWidth)
	}
}

func TestColumnWidthsGrow(t *testing.T) {
	c := NewColumnWidths()

	w, grew := c.Grow(1, 12, 3.5, 24)
	if !grew || w != 12 {
		t.Errorf("Grow to 12 = (%v, %v), expected (12, true)", w, grew)
	}

	// Smaller content does not shrink the column.
	w, grew = c.Grow(1, 5, 3.5, 24)
	if grew || w != 12 {
		t.Errorf("Grow to 5 after 12 = (%v, %v), expected (12, false)", w, grew)
	}

	// Clipped to the upper bound.
	w, grew = c.Grow(1, 30, 3.5, 24)
	if !grew || w != 24 {
		t.Errorf("Grow to 30 = (%v, %v), expected (24, true)", w, grew)
	}
}

func TestColumnWidthsNeverDecrease(t *testing.T) {
	c := NewColumnWidths()
	needs := []float64{4, 20, 7, 22, 1, 30, 2}

	prev := c.Width(0)
	for _, need := range needs {
		c.Grow(0, need, 3.5, 24)
		cur := c.Width(0)
		if cur < prev {
			t.Fatalf("width decreased from %v to %v after need %v", prev, cur, need)
		}
		prev = cur
	}
}

func TestColumnWidthsClipLowerBound(t *testing.T) {
	c := NewColumnWidths()
	// A tiny requirement above the current width is impossible (default
	// exceeds the minimum), so seed a fresh registry column via a need
	// between min and default: no growth happens.
	if _, grew := c.Grow(2, 3, 3.5, 24); grew {
		t.Error("need below the default width must not grow the column")
	}
}
