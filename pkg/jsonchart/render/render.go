// Package render draws render configurations with concrete chart backends.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
)

var (
	// ErrUnknownFormat indicates no backend handles an output format.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrNonFinite indicates a series holds NaN or infinite values.
	ErrNonFinite = errors.New("series contains non-finite values")
)

// Format is an output format token.
type Format string

const (
	// FormatPNG renders a raster image.
	FormatPNG Format = "png"
	// FormatSVG renders a vector image.
	FormatSVG Format = "svg"
	// FormatXLSX renders a workbook with a native chart.
	FormatXLSX Format = "xlsx"
)

// Renderer draws a chart for a render configuration.
//
// Backends apply the static display policy first and then load the dataset;
// an empty series draws nothing and is not an error.
type Renderer interface {
	Render(w io.Writer, cfg *models.RenderConfig) error
}

// Size is the output size in pixels.
type Size struct {
	Width  int
	Height int
	DPI    float64
}

// New returns the backend for format.
func New(format Format, size Size) (Renderer, error) {
	switch format {
	case FormatPNG, FormatSVG:
		return &ImageRenderer{Format: format, Size: size}, nil
	case FormatXLSX:
		return &WorkbookRenderer{Size: size}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Extension returns the file extension for format, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}
