package xlreport

import (
	"fmt"

	"github.com/reportkit/xlreport-go/pkg/xlreport/layout"
)

// TitleOptions configures the title band of a titled sheet.
type TitleOptions struct {
	// TitleCellHeight is the number of top rows styled as the title
	// band.
	TitleCellHeight int
	// LogoCellWidth is the number of columns reserved for the logo.
	LogoCellWidth int
	// LogoOffsetX and LogoOffsetY inset the logo inside its cell box,
	// in pixels.
	LogoOffsetX int
	LogoOffsetY int
	// TitlePrefix is prepended to the title text.
	TitlePrefix string
}

// DefaultTitleOptions returns the default title band geometry.
func DefaultTitleOptions() TitleOptions {
	return TitleOptions{
		TitleCellHeight: 2,
		LogoCellWidth:   2,
		LogoOffsetX:     8,
		LogoOffsetY:     8,
		TitlePrefix:     " ",
	}
}

// CreateTitledSheet creates a sheet with a styled title band (logo,
// when set, plus title text) followed by a description textbox, and
// leaves the cursor below the band ready for content. It uses the
// default title geometry; see CreateTitledSheetWith.
func (r *Reporter) CreateTitledSheet(name, title, description string) error {
	return r.CreateTitledSheetWith(name, title, description, DefaultTitleOptions())
}

// CreateTitledSheetWith is CreateTitledSheet with explicit title band
// geometry.
func (r *Reporter) CreateTitledSheetWith(name, title, description string, o TitleOptions) error {
	if err := r.CreateSheet(name); err != nil {
		return err
	}
	if err := r.setLogoTitle(name, title, o); err != nil {
		return err
	}
	return r.TextBox(description, "")
}

// setLogoTitle styles the title band rows, places the logo scaled into
// its cell box, writes the prefixed title next to it, and parks the
// cursor at the first content position under the band.
func (r *Reporter) setLogoTitle(name, title string, o TitleOptions) error {
	styleID, err := r.file.NewStyle(r.theme.SheetTitle.Style())
	if err != nil {
		return fmt.Errorf("title style: %w", err)
	}
	if err := r.file.SetRowStyle(r.sheet, 1, o.TitleCellHeight, styleID); err != nil {
		return fmt.Errorf("style title rows: %w", err)
	}

	if r.logo != nil {
		opts := &ImageOptions{
			MaxWidth:  layout.PixelCellWidth*o.LogoCellWidth - 2*o.LogoOffsetX,
			MaxHeight: layout.PixelRowHeight*o.TitleCellHeight - 2*o.LogoOffsetY,
			OffsetX:   o.LogoOffsetX,
			OffsetY:   o.LogoOffsetY,
		}
		if err := r.Image(r.logo, "logo_"+name, opts, layout.Shift{}); err != nil {
			return err
		}
	}

	r.SetCursor(o.TitleCellHeight-1, o.LogoCellWidth)
	attrs := r.theme.SheetTitle.Clone()
	if err := r.text(o.TitlePrefix+title, attrs, []layout.Shift{{}}, layout.Shift{}); err != nil {
		return err
	}
	r.SetCursor(o.TitleCellHeight, 1)
	return nil
}
