package models

// DataPoint is one sample placed at its position in the series.
type DataPoint struct {
	// Index is the 0-based position of the sample.
	Index int `json:"x"`
	// Value is the sample value.
	Value float64 `json:"y"`
}

// GradientFill fills the area under a line with a gradient.
type GradientFill struct {
	Gradient GradientSpec `json:"gradient"`
	// Angle is the fill direction in degrees.
	Angle float64 `json:"angle"`
}

// DatasetDescriptor is the point data plus display parameters
// handed to a line-rendering backend.
type DatasetDescriptor struct {
	Points                  []DataPoint  `json:"points"`
	DrawValues              bool         `json:"draw_values"`
	DrawFilled              bool         `json:"draw_filled"`
	DrawVerticalHighlight   bool         `json:"draw_vertical_highlight"`
	DrawHorizontalHighlight bool         `json:"draw_horizontal_highlight"`
	LineDash                []float64    `json:"line_dash"`
	HighlightDash           []float64    `json:"highlight_dash"`
	DrawCircles             bool         `json:"draw_circles"`
	LineWidth               float64      `json:"line_width"`
	Fill                    GradientFill `json:"fill"`
}

// XValues returns the point indices as floats.
func (d DatasetDescriptor) XValues() []float64 {
	xs := make([]float64, len(d.Points))
	for i, p := range d.Points {
		xs[i] = float64(p.Index)
	}
	return xs
}

// YValues returns the point values.
func (d DatasetDescriptor) YValues() []float64 {
	ys := make([]float64, len(d.Points))
	for i, p := range d.Points {
		ys[i] = p.Value
	}
	return ys
}
