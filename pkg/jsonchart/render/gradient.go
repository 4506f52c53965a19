package render

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
)

// maxGradientBands bounds the number of horizontal bands used to
// approximate a vertical gradient.
const maxGradientBands = 64

// gradientSeries is a continuous series whose area is filled with a
// vertical gradient and whose line is stroked without dots.
type gradientSeries struct {
	chart.ContinuousSeries
	fill   models.GradientFill
	filled bool
}

type point struct {
	x, y float64
}

// Render implements chart.Series.
func (gs gradientSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	n := gs.Len()
	if n == 0 {
		return
	}

	line := make([]point, n)
	for i := 0; i < n; i++ {
		vx, vy := gs.GetValues(i)
		line[i] = point{
			x: float64(canvasBox.Left + xrange.Translate(vx)),
			y: float64(canvasBox.Bottom - yrange.Translate(vy)),
		}
	}

	if gs.filled {
		gs.fillArea(r, line, float64(canvasBox.Bottom))
	}

	style := gs.Style.InheritFrom(defaults)
	if !style.ShouldDrawStroke() {
		return
	}
	style.GetStrokeOptions().WriteDrawingOptionsToRenderer(r)
	r.MoveTo(round(line[0].x), round(line[0].y))
	for _, p := range line[1:] {
		r.LineTo(round(p.x), round(p.y))
	}
	r.Stroke()
}

// fillArea paints the polygon between the line and base in horizontal
// bands, each colored by the gradient at its vertical position.
func (gs gradientSeries) fillArea(r chart.Renderer, line []point, base float64) {
	area := make([]point, 0, len(line)+2)
	area = append(area, line...)
	area = append(area, point{line[len(line)-1].x, base}, point{line[0].x, base})

	top := base
	for _, p := range line {
		top = math.Min(top, p.y)
	}
	height := math.Floor(base) - math.Floor(top)
	if height <= 0 {
		return
	}

	bands := int(math.Min(height, maxGradientBands))
	step := math.Ceil(height / float64(bands))
	for y0 := math.Floor(top); y0 < base; y0 += step {
		y1 := math.Min(y0+step, base)
		band := clipBand(area, y0, y1)
		if len(band) < 3 {
			continue
		}
		t := ((y0+y1)/2 - top) / (base - top)
		r.SetFillColor(toDrawing(gs.fill.Gradient.At(t)))
		r.SetStrokeColor(toDrawing(models.Transparent))
		r.SetStrokeWidth(0)
		r.MoveTo(round(band[0].x), round(band[0].y))
		for _, p := range band[1:] {
			r.LineTo(round(p.x), round(p.y))
		}
		r.LineTo(round(band[0].x), round(band[0].y))
		r.Fill()
	}
}

// clipBand clips a polygon to the horizontal slab y0 <= y <= y1.
func clipBand(poly []point, y0, y1 float64) []point {
	poly = clipHalf(poly, func(p point) bool { return p.y >= y0 }, y0)
	return clipHalf(poly, func(p point) bool { return p.y <= y1 }, y1)
}

// clipHalf clips a polygon against the half-plane given by inside, whose
// boundary is the horizontal line y = edge.
func clipHalf(poly []point, inside func(point) bool, edge float64) []point {
	if len(poly) == 0 {
		return nil
	}
	var out []point
	prev := poly[len(poly)-1]
	for _, cur := range poly {
		curIn, prevIn := inside(cur), inside(prev)
		if curIn != prevIn {
			t := (edge - prev.y) / (cur.y - prev.y)
			out = append(out, point{x: prev.x + (cur.x-prev.x)*t, y: edge})
		}
		if curIn {
			out = append(out, cur)
		}
		prev = cur
	}
	return out
}

func round(v float64) int {
	return int(math.Round(v))
}
