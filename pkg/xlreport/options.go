package xlreport

// Options configures the layout geometry of a Reporter.
type Options struct {
	// PixelSheetWidth is the usable sheet width in pixels; textboxes
	// span it and long text wraps against it.
	PixelSheetWidth int
	// MaxCellWidth is the upper bound for auto-sized column widths,
	// in cell-width units.
	MaxCellWidth float64
	// MinCellWidth is the lower bound for auto-sized column widths,
	// in cell-width units.
	MinCellWidth float64
}

// DefaultOptions returns the default layout geometry.
func DefaultOptions() Options {
	return Options{
		PixelSheetWidth: 1200,
		MaxCellWidth:    24,
		MinCellWidth:    3.5,
	}
}
