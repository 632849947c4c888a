package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PrintedValueWidth estimates the printed width of a scalar value in
// cell-width units, based on the character count of its printed form.
func PrintedValueWidth(value any) float64 {
	n := utf8.RuneCountInString(fmt.Sprint(value))
	return float64(n*PixelCharWidth) * PixelToWidthRatio
}

// PrintedTextHeight estimates the number of rows a text block occupies
// when wrapped at sheetPixelWidth pixels. Each line contributes one row
// per wrapped segment and at least one row, so an empty string yields
// height 1. This is a deliberate integer-division heuristic, not exact
// word-wrap.
func PrintedTextHeight(text string, sheetPixelWidth int) int {
	height := 0
	for _, line := range strings.Split(text, "\n") {
		height += utf8.RuneCountInString(line) * PixelCharWidth / sheetPixelWidth
		height++
	}
	return height
}
