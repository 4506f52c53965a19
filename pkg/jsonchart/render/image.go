package render

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
)

const (
	defaultWidth  = 320
	defaultHeight = 160
	// edgePadding keeps the stroke inside the image.
	edgePadding = 2
	// barFillRatio is the share of each bar slot covered by the bar.
	barFillRatio = 0.7
	// maxMagnitude bounds series values so ranges and padding stay finite.
	maxMagnitude = 1e300
)

// ImageRenderer draws charts as PNG or SVG images.
type ImageRenderer struct {
	Format Format
	Size   Size
}

func (ir *ImageRenderer) width() int {
	if ir.Size.Width <= 0 {
		return defaultWidth
	}
	return ir.Size.Width
}

func (ir *ImageRenderer) height() int {
	if ir.Size.Height <= 0 {
		return defaultHeight
	}
	return ir.Size.Height
}

func (ir *ImageRenderer) dpi() float64 {
	if ir.Size.DPI <= 0 {
		return chart.DefaultDPI
	}
	return ir.Size.DPI
}

func (ir *ImageRenderer) provider() chart.RendererProvider {
	if ir.Format == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// Render implements Renderer.
func (ir *ImageRenderer) Render(w io.Writer, cfg *models.RenderConfig) error {
	switch s := cfg.Settings.(type) {
	case models.LineSettings:
		return ir.renderLine(w, cfg, s)
	case models.BarSettings:
		return ir.renderBar(w, cfg, s)
	default:
		return fmt.Errorf("render image: unsupported settings %T", cfg.Settings)
	}
}

// blank writes an empty transparent canvas.
func (ir *ImageRenderer) blank(w io.Writer) error {
	r, err := ir.provider()(ir.width(), ir.height())
	if err != nil {
		return err
	}
	r.SetDPI(ir.dpi())
	return r.Save(w)
}

func (ir *ImageRenderer) renderLine(w io.Writer, cfg *models.RenderConfig, s models.LineSettings) error {
	ds := s.Dataset
	if len(ds.Points) == 0 {
		log.Debug().Str("format", string(ir.Format)).Msg("empty line series, drawing blank canvas")
		return ir.blank(w)
	}

	xs, ys := ds.XValues(), ds.YValues()
	scale, err := seriesScale(ys)
	if err != nil {
		return err
	}
	ys = scaled(ys, scale)
	series := gradientSeries{
		ContinuousSeries: chart.ContinuousSeries{
			Style: chart.Style{
				StrokeColor:     toDrawing(cfg.Color),
				StrokeWidth:     ds.LineWidth,
				StrokeDashArray: ds.LineDash,
			},
			XValues: xs,
			YValues: ys,
		},
		fill:   ds.Fill,
		filled: ds.DrawFilled,
	}

	graph := chart.Chart{
		Width:          ir.width(),
		Height:         ir.height(),
		DPI:            ir.dpi(),
		Background:     backgroundStyle(cfg.Policy),
		Canvas:         canvasStyle(cfg.Policy),
		XAxis:          chart.XAxis{Style: axisStyle(cfg.Policy.X), Range: paddedRange(0, float64(len(xs)-1))},
		YAxis:          chart.YAxis{Style: axisStyle(cfg.Policy.Left), Range: paddedRange(minMax(ys))},
		YAxisSecondary: chart.YAxis{Style: axisStyle(cfg.Policy.Right)},
		Series:         []chart.Series{series},
	}

	log.Debug().Int("points", len(ds.Points)).Str("format", string(ir.Format)).Msg("rendering line chart")
	return graph.Render(ir.provider(), w)
}

func (ir *ImageRenderer) renderBar(w io.Writer, cfg *models.RenderConfig, s models.BarSettings) error {
	if len(s.Values) == 0 {
		log.Debug().Str("format", string(ir.Format)).Msg("empty bar series, drawing blank canvas")
		return ir.blank(w)
	}

	scale, err := seriesScale(s.Values)
	if err != nil {
		return err
	}
	values := scaled(s.Values, scale)

	fill := toDrawing(s.Fill)
	bars := make([]chart.Value, len(values))
	for i, v := range values {
		bars[i] = chart.Value{
			Value: v,
			Style: chart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		}
	}

	lo, hi := minMax(values)
	slot := float64(ir.width()-2*edgePadding) / float64(len(bars))
	graph := chart.BarChart{
		Width:        ir.width(),
		Height:       ir.height(),
		DPI:          ir.dpi(),
		Background:   chart.Style{FillColor: toDrawing(s.Background), StrokeColor: toDrawing(s.Background), Padding: padding()},
		Canvas:       canvasStyle(cfg.Policy),
		XAxis:        axisStyle(cfg.Policy.X),
		YAxis:        chart.YAxis{Style: axisStyle(cfg.Policy.Left), Range: paddedRange(math.Min(lo, 0), math.Max(hi, 0))},
		BarWidth:     max(1, int(slot*barFillRatio)),
		BarSpacing:   max(1, int(slot*(1-barFillRatio))),
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}

	log.Debug().Int("bars", len(bars)).Str("format", string(ir.Format)).Msg("rendering bar chart")
	return graph.Render(ir.provider(), w)
}

func padding() chart.Box {
	return chart.Box{Top: edgePadding, Left: edgePadding, Right: edgePadding, Bottom: edgePadding}
}

func backgroundStyle(p models.DisplayPolicy) chart.Style {
	s := chart.Style{Padding: padding()}
	if p.SuppressBackgroundGrid {
		s.FillColor = drawing.ColorTransparent
		s.StrokeColor = drawing.ColorTransparent
	}
	return s
}

func canvasStyle(p models.DisplayPolicy) chart.Style {
	var s chart.Style
	if p.SuppressBackgroundGrid {
		s.FillColor = drawing.ColorTransparent
	}
	if p.SuppressBorders {
		s.StrokeColor = drawing.ColorTransparent
	}
	return s
}

func axisStyle(a models.AxisPolicy) chart.Style {
	if a.SuppressLine && a.SuppressLabels {
		return chart.Hidden()
	}
	return chart.Shown()
}

// seriesScale returns the factor that keeps the padded value range of a
// series representable. It is 1 unless a value is close to the float64 limit.
func seriesScale(values []float64) (float64, error) {
	if len(values) == 0 {
		return 1, nil
	}
	lo, hi := minMax(values)
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, ErrNonFinite
	}
	peak := math.Max(math.Abs(lo), math.Abs(hi))
	if peak <= maxMagnitude {
		return 1, nil
	}
	return 1 / peak, nil
}

func scaled(values []float64, scale float64) []float64 {
	if scale == 1 {
		return values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * scale
	}
	return out
}

// paddedRange returns a range that is never degenerate.
func paddedRange(lo, hi float64) *chart.ContinuousRange {
	if hi-lo == 0 {
		pad := math.Max(1, math.Abs(lo)/10)
		lo, hi = lo-pad, hi+pad
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func minMax(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func toDrawing(c models.Color) drawing.Color {
	n := c.NRGBA()
	return drawing.Color{R: n.R, G: n.G, B: n.B, A: n.A}
}
