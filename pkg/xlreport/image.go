package xlreport

import (
	"bytes"
	"fmt"
	"image"
	"os"

	// Registered decoders for image introspection.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ReportImage is an image ready for embedding: its raw bytes, the
// format extension the writer needs, and the pixel dimensions used for
// scaling.
type ReportImage struct {
	Bytes     []byte
	Extension string // ".png", ".jpg", ...
	Width     int    // pixels
	Height    int    // pixels
}

// OpenImage reads an image file and introspects its pixel dimensions.
func OpenImage(path string) (*ReportImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	img, err := DecodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return img, nil
}

// DecodeImage introspects raw image bytes without decoding the full
// pixel data.
func DecodeImage(data []byte) (*ReportImage, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	ext := "." + format
	if format == "jpeg" {
		ext = ".jpg"
	}
	return &ReportImage{
		Bytes:     data,
		Extension: ext,
		Width:     cfg.Width,
		Height:    cfg.Height,
	}, nil
}
