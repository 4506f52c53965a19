package models

// AxisPolicy lists the features suppressed on a single axis.
type AxisPolicy struct {
	SuppressLabels     bool `json:"suppress_labels"`
	SuppressLine       bool `json:"suppress_line"`
	SuppressZeroLine   bool `json:"suppress_zero_line"`
	SuppressGridLines  bool `json:"suppress_grid_lines"`
	SuppressLimitLines bool `json:"suppress_limit_lines"`
}

// Suppressed reports whether every feature of the axis is off.
func (a AxisPolicy) Suppressed() bool {
	return a.SuppressLabels && a.SuppressLine && a.SuppressZeroLine &&
		a.SuppressGridLines && a.SuppressLimitLines
}

// DisplayPolicy is the static display record applied to a chart.
type DisplayPolicy struct {
	SuppressLegend         bool `json:"suppress_legend"`
	SuppressAxisLabels     bool `json:"suppress_axis_labels"`
	SuppressAxisLines      bool `json:"suppress_axis_lines"`
	SuppressZeroLine       bool `json:"suppress_zero_line"`
	SuppressGridLines      bool `json:"suppress_grid_lines"`
	SuppressLimitLines     bool `json:"suppress_limit_lines"`
	SuppressMarkers        bool `json:"suppress_markers"`
	SuppressBorders        bool `json:"suppress_borders"`
	SuppressBackgroundGrid bool `json:"suppress_background_grid"`
	SuppressDescription    bool `json:"suppress_description"`
	// Interactive enables drag, pinch-zoom and scaling.
	Interactive bool `json:"interactive"`

	// Left and Right are the symmetric value axes; X is the horizontal axis.
	Left  AxisPolicy `json:"left"`
	Right AxisPolicy `json:"right"`
	X     AxisPolicy `json:"x"`
}

// StaticPolicy returns the policy shared by every chart style:
// every decoration off and no interaction.
func StaticPolicy() DisplayPolicy {
	axis := AxisPolicy{
		SuppressLabels:     true,
		SuppressLine:       true,
		SuppressZeroLine:   true,
		SuppressGridLines:  true,
		SuppressLimitLines: true,
	}
	return DisplayPolicy{
		SuppressLegend:         true,
		SuppressAxisLabels:     true,
		SuppressAxisLines:      true,
		SuppressZeroLine:       true,
		SuppressGridLines:      true,
		SuppressLimitLines:     true,
		SuppressMarkers:        true,
		SuppressBorders:        true,
		SuppressBackgroundGrid: true,
		SuppressDescription:    true,
		Interactive:            false,
		Left:                   axis,
		Right:                  axis,
		X:                      axis,
	}
}

// AxesHidden reports whether all three axes are fully suppressed.
func (p DisplayPolicy) AxesHidden() bool {
	return p.Left.Suppressed() && p.Right.Suppressed() && p.X.Suppressed()
}
