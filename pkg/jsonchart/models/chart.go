// Package models defines data structures for declarative chart rendering.
package models

// ChartStyle selects the chart variant rendered for a series.
type ChartStyle string

const (
	// StyleLine renders a gradient-filled line chart.
	StyleLine ChartStyle = "line"
	// StyleBar renders a flat-filled bar chart.
	StyleBar ChartStyle = "bar"
)

// ParseChartStyle maps a style token to a ChartStyle.
// Matching is case-sensitive; unknown or empty tokens yield StyleLine.
func ParseChartStyle(token string) ChartStyle {
	switch ChartStyle(token) {
	case StyleBar:
		return StyleBar
	default:
		return StyleLine
	}
}

// StyleSettings is the style-specific part of a RenderConfig.
// It is implemented only by LineSettings and BarSettings.
type StyleSettings interface {
	// Style reports which chart variant the settings belong to.
	Style() ChartStyle
	styleSettings()
}

// LineSettings carries the dataset for a line chart.
type LineSettings struct {
	// Dataset is the point data plus stroke and fill parameters.
	Dataset DatasetDescriptor `json:"dataset"`
}

// Style implements StyleSettings.
func (LineSettings) Style() ChartStyle { return StyleLine }

func (LineSettings) styleSettings() {}

// BarSettings carries the raw series and flat fill for a bar chart.
type BarSettings struct {
	// Values is the raw sample series, one bar per value.
	Values []float64 `json:"values"`
	// Fill is the flat color used for every bar.
	Fill Color `json:"fill"`
	// Background is the chart background; transparent.
	Background Color `json:"background"`
	// HitTesting reports whether the chart receives input. Always false.
	HitTesting bool `json:"hit_testing"`
}

// Style implements StyleSettings.
func (BarSettings) Style() ChartStyle { return StyleBar }

func (BarSettings) styleSettings() {}

// RenderConfig is a fully-specified chart rendering instruction.
// It is built once per input change and not mutated afterwards.
type RenderConfig struct {
	// Style is the chart variant.
	Style ChartStyle `json:"style"`
	// Color is the resolved foreground color.
	Color Color `json:"color"`
	// Gradient is the fill gradient derived from Color.
	Gradient GradientSpec `json:"gradient"`
	// Policy is the static display policy.
	Policy DisplayPolicy `json:"policy"`
	// Settings is LineSettings or BarSettings depending on Style.
	Settings StyleSettings `json:"settings"`
}

// Line returns the line settings, or false for a bar chart.
func (c *RenderConfig) Line() (LineSettings, bool) {
	s, ok := c.Settings.(LineSettings)
	return s, ok
}

// Bar returns the bar settings, or false for a line chart.
func (c *RenderConfig) Bar() (BarSettings, bool) {
	s, ok := c.Settings.(BarSettings)
	return s, ok
}
