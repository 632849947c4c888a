// Package manifest builds report workbooks from a declarative YAML
// document: a theme, an optional logo, and per-sheet content blocks
// (text, textboxes, images, CSV-backed tables).
package manifest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reportkit/xlreport-go/pkg/xlreport"
)

// Manifest describes one report workbook.
type Manifest struct {
	// Output is the workbook path to write.
	Output string `yaml:"output"`
	// Theme is the theme document path.
	Theme string `yaml:"theme"`
	// Logo is an optional logo image path for titled sheets.
	Logo string `yaml:"logo,omitempty"`
	// Sheets are rendered in order.
	Sheets []Sheet `yaml:"sheets"`

	dir string // manifest directory, for resolving relative paths
}

// Sheet is one canvas of the report. A sheet with a title gets the
// titled band (logo + title + description textbox).
type Sheet struct {
	Name        string  `yaml:"name"`
	Title       string  `yaml:"title,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Blocks      []Block `yaml:"blocks,omitempty"`
}

// Block is one content block. Exactly one field must be set.
type Block struct {
	Text    string   `yaml:"text,omitempty"`
	Textbox *Textbox `yaml:"textbox,omitempty"`
	Image   string   `yaml:"image,omitempty"` // image file path
	Table   string   `yaml:"table,omitempty"` // CSV file path
}

// Textbox is a captioned textbox block.
type Textbox struct {
	Text  string `yaml:"text"`
	Title string `yaml:"title,omitempty"`
}

// Load reads and validates a manifest document. Relative paths inside
// the manifest resolve against its directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %q: %w", path, err)
	}
	m.dir = filepath.Dir(path)
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("manifest %q: %w", path, err)
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if m.Output == "" {
		return fmt.Errorf("output is required")
	}
	if m.Theme == "" {
		return fmt.Errorf("theme is required")
	}
	if len(m.Sheets) == 0 {
		return fmt.Errorf("at least one sheet is required")
	}
	for i, sheet := range m.Sheets {
		if sheet.Name == "" {
			return fmt.Errorf("sheet %d: name is required", i)
		}
		for j, b := range sheet.Blocks {
			set := 0
			if b.Text != "" {
				set++
			}
			if b.Textbox != nil {
				set++
			}
			if b.Image != "" {
				set++
			}
			if b.Table != "" {
				set++
			}
			if set != 1 {
				return fmt.Errorf("sheet %q block %d: exactly one of text, textbox, image, table must be set", sheet.Name, j)
			}
		}
	}
	return nil
}

// resolve turns a manifest-relative path into an absolute or
// cwd-relative one.
func (m *Manifest) resolve(path string) string {
	if filepath.IsAbs(path) || m.dir == "" {
		return path
	}
	return filepath.Join(m.dir, path)
}

// Build renders the manifest into its output workbook.
func (m *Manifest) Build() error {
	theme, err := xlreport.LoadTheme(m.resolve(m.Theme))
	if err != nil {
		return err
	}
	r, err := xlreport.New(m.resolve(m.Output), theme, xlreport.DefaultOptions())
	if err != nil {
		return err
	}
	if m.Logo != "" {
		logo, err := xlreport.OpenImage(m.resolve(m.Logo))
		if err != nil {
			return err
		}
		r.SetLogo(logo)
	}

	for _, sheet := range m.Sheets {
		if err := m.buildSheet(r, sheet); err != nil {
			r.Close()
			return fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
	}
	return r.Close()
}

func (m *Manifest) buildSheet(r *xlreport.Reporter, sheet Sheet) error {
	if sheet.Title != "" {
		if err := r.CreateTitledSheet(sheet.Name, sheet.Title, sheet.Description); err != nil {
			return err
		}
	} else if err := r.CreateSheet(sheet.Name); err != nil {
		return err
	}

	for j, b := range sheet.Blocks {
		var err error
		switch {
		case b.Text != "":
			err = r.Text(b.Text)
		case b.Textbox != nil:
			err = r.TextBox(b.Textbox.Text, b.Textbox.Title)
		case b.Image != "":
			var img *xlreport.ReportImage
			if img, err = xlreport.OpenImage(m.resolve(b.Image)); err == nil {
				err = r.Image(img, filepath.Base(b.Image), nil)
			}
		case b.Table != "":
			var t *xlreport.Table
			if t, err = LoadCSVTable(m.resolve(b.Table)); err == nil {
				err = r.Table(t)
			}
		}
		if err != nil {
			return fmt.Errorf("block %d: %w", j, err)
		}
	}
	return nil
}

// LoadCSVTable reads a CSV file into a table. The first record is the
// header; the first column holds the row index labels and its header
// cell is ignored. Values parse as integers, then floats, then fall
// back to strings.
func LoadCSVTable(path string) (*xlreport.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse table %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("table %q: empty file", path)
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("table %q: need an index column and at least one data column", path)
	}

	t := &xlreport.Table{Columns: header[1:]}
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("table %q: row %d has %d fields, expected %d", path, i+1, len(rec), len(header))
		}
		t.Index = append(t.Index, parseValue(rec[0]))
		row := make([]any, 0, len(rec)-1)
		for _, field := range rec[1:] {
			row = append(row, parseValue(field))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// parseValue attempts to parse a CSV field as a number.
// Returns int64 for integers, float64 for decimals, or the original
// string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
