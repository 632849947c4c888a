// Package layout provides the pure layout math for sheet reports:
// pixel/cell-width unit conversion, printed-size estimation, the
// cursor model, and the per-sheet column width registry.
package layout

// CellWidth is the default Excel column width in cell-width units
// (8.43 units = 64 pixels).
const CellWidth = 8.43

// PixelCellWidth is the default column width in pixels.
const PixelCellWidth = 64

// PixelRowHeight is the default row height in pixels.
const PixelRowHeight = 20

// PixelToWidthRatio converts a pixel measurement to cell-width units.
const PixelToWidthRatio = CellWidth / PixelCellWidth

// PixelCharWidth is the estimated printed width of one character in
// pixels (8px glyph plus 12.5% spacing, truncated).
const PixelCharWidth = int(8 * 1.125)

// PixelsToWidth converts a pixel measurement to cell-width units.
func PixelsToWidth(px float64) float64 {
	return px * CellWidth / PixelCellWidth
}

// Clip bounds v to [lower, upper]. The comparisons are deliberately
// two strict branches: a value that compares false against both bounds
// (NaN) is returned unchanged, and +Inf clips to upper.
func Clip(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}
