package xlreport

import (
	"fmt"
	"os"

	"github.com/tiendc/go-deepcopy"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// requiredThemeKeys are the style records every theme document must
// define.
var requiredThemeKeys = []string{
	"default_cell",
	"sheet_title",
	"text_title",
	"textbox",
	"table_columns",
	"table_index",
}

// StyleAttrs is one style record of a theme document. Field names
// follow the theme key names; zero values mean "unset" and are left to
// the spreadsheet defaults.
type StyleAttrs struct {
	FontName  string  `yaml:"font_name,omitempty"`
	FontSize  float64 `yaml:"font_size,omitempty"`
	Bold      bool    `yaml:"bold,omitempty"`
	Italic    bool    `yaml:"italic,omitempty"`
	FontColor string  `yaml:"font_color,omitempty"`
	BgColor   string  `yaml:"bg_color,omitempty"`
	Align     string  `yaml:"align,omitempty"`
	VAlign    string  `yaml:"valign,omitempty"`
	TextWrap  bool    `yaml:"text_wrap,omitempty"`
	NumFormat string  `yaml:"num_format,omitempty"`
	// Border styles per side (0 = none, 1 = thin, ... as in the
	// spreadsheet border style table). Border sets all four sides.
	Border int `yaml:"border,omitempty"`
	Bottom int `yaml:"bottom,omitempty"`
	Right  int `yaml:"right,omitempty"`
}

// Clone returns an independent copy of the attrs. Placement calls
// clone their base record before overlaying per-cell formats, so a
// theme record is never mutated across calls.
func (a StyleAttrs) Clone() StyleAttrs {
	var out StyleAttrs
	if err := deepcopy.Copy(&out, &a); err != nil {
		// StyleAttrs is a flat value type; copying it cannot fail.
		panic(err)
	}
	return out
}

// Style converts the attrs to a spreadsheet style definition.
func (a StyleAttrs) Style() *excelize.Style {
	s := &excelize.Style{Font: a.font()}
	if a.BgColor != "" {
		s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{a.BgColor}}
	}
	if a.Align != "" || a.VAlign != "" || a.TextWrap {
		s.Alignment = &excelize.Alignment{
			Horizontal: a.Align,
			Vertical:   verticalAlign(a.VAlign),
			WrapText:   a.TextWrap,
		}
	}
	if a.NumFormat != "" {
		numFmt := a.NumFormat
		s.CustomNumFmt = &numFmt
	}
	s.Border = a.borders()
	return s
}

// font returns the attrs' font definition, or nil when every font
// attribute is unset.
func (a StyleAttrs) font() *excelize.Font {
	if a.FontName == "" && a.FontSize == 0 && !a.Bold && !a.Italic && a.FontColor == "" {
		return nil
	}
	return &excelize.Font{
		Family: a.FontName,
		Size:   a.FontSize,
		Bold:   a.Bold,
		Italic: a.Italic,
		Color:  a.FontColor,
	}
}

func (a StyleAttrs) borders() []excelize.Border {
	var borders []excelize.Border
	if a.Border > 0 {
		for _, side := range []string{"left", "right", "top", "bottom"} {
			borders = append(borders, excelize.Border{Type: side, Style: a.Border, Color: "000000"})
		}
		return borders
	}
	if a.Bottom > 0 {
		borders = append(borders, excelize.Border{Type: "bottom", Style: a.Bottom, Color: "000000"})
	}
	if a.Right > 0 {
		borders = append(borders, excelize.Border{Type: "right", Style: a.Right, Color: "000000"})
	}
	return borders
}

// verticalAlign maps the theme's "vcenter" spelling to the
// spreadsheet's "center".
func verticalAlign(v string) string {
	if v == "vcenter" {
		return "center"
	}
	return v
}

// Theme holds the six style records a report theme must define.
type Theme struct {
	DefaultCell  StyleAttrs
	SheetTitle   StyleAttrs
	TextTitle    StyleAttrs
	Textbox      StyleAttrs
	TableColumns StyleAttrs
	TableIndex   StyleAttrs
}

// LoadTheme reads and validates a theme document. The document is
// YAML (JSON themes parse as-is) and must define all of
// default_cell, sheet_title, text_title, textbox, table_columns and
// table_index; a missing key is a ConfigError.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return ParseTheme(data, path)
}

// ParseTheme parses a theme document from raw bytes. The path is used
// for error reporting only.
func ParseTheme(data []byte, path string) (*Theme, error) {
	records := make(map[string]*StyleAttrs)
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	for _, key := range requiredThemeKeys {
		if records[key] == nil {
			return nil, NewConfigError(path, key)
		}
	}
	return &Theme{
		DefaultCell:  *records["default_cell"],
		SheetTitle:   *records["sheet_title"],
		TextTitle:    *records["text_title"],
		Textbox:      *records["textbox"],
		TableColumns: *records["table_columns"],
		TableIndex:   *records["table_index"],
	}, nil
}
