package models

// EmbeddedSeries is series metadata read back from a workbook chart.
type EmbeddedSeries struct {
	// NameRange is the range reference for the series name.
	NameRange string `json:"name_range,omitempty"`
	// ValuesRange is the range reference for the series values.
	ValuesRange string `json:"values_range,omitempty"`
	// Marker is the marker symbol ("none" when markers are off).
	Marker string `json:"marker,omitempty"`
}

// EmbeddedChart is chart metadata read back from a workbook part.
type EmbeddedChart struct {
	// Part is the chart part path inside the package.
	Part string `json:"part"`
	// Sheet is the worksheet the chart is drawn on.
	Sheet string `json:"sheet,omitempty"`
	// Anchor is the cell range the chart frame spans (e.g., "C1:H9").
	Anchor string `json:"anchor,omitempty"`
	// ChartType is the chart type (e.g., Line, Bar).
	ChartType string `json:"chart_type"`
	// Legend reports whether a legend element is present.
	Legend bool `json:"legend"`
	// AxesDeleted counts axes marked as deleted.
	AxesDeleted int `json:"axes_deleted"`
	// Axes counts all axes.
	Axes int `json:"axes"`
	// GridLines reports whether any axis draws major or minor gridlines.
	GridLines bool `json:"grid_lines"`
	// Series is the list of series included in the chart.
	Series []EmbeddedSeries `json:"series"`
}
