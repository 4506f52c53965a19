// Package jsonchart renders the chart views of a JSON-driven UI tree.
package jsonchart

import "github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/render"

// Options configures rendering behavior.
type Options struct {
	// Format is the output format (png, svg, xlsx).
	Format render.Format
	// Width is the output width in pixels; 0 selects the backend default.
	Width int
	// Height is the output height in pixels; 0 selects the backend default.
	Height int
	// DPI is the raster resolution; 0 selects the backend default.
	DPI float64
	// Series, if non-nil, replaces the data of every chart node.
	Series []float64
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Format: render.FormatPNG,
		Width:  320,
		Height: 160,
	}
}

// Size returns the backend output size.
func (o Options) Size() render.Size {
	return render.Size{Width: o.Width, Height: o.Height, DPI: o.DPI}
}
