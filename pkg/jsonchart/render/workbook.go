package render

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
	"github.com/xuri/excelize/v2"
)

const (
	// DataSheet is the sheet holding the series and the chart.
	DataSheet = "Chart"
	// dataColumn is the column holding the series values.
	dataColumn = 1
	// chartAnchor is the top-left cell of the chart.
	chartAnchor = "C1"
)

// WorkbookRenderer writes the series and a native chart into an xlsx workbook.
type WorkbookRenderer struct {
	Size Size
}

// Render implements Renderer.
func (wr *WorkbookRenderer) Render(w io.Writer, cfg *models.RenderConfig) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), DataSheet); err != nil {
		return err
	}

	values, err := wr.seriesValues(cfg)
	if err != nil {
		return err
	}
	if _, err := seriesScale(values); err != nil {
		return err
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(dataColumn, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(DataSheet, cell, v); err != nil {
			return err
		}
	}

	if len(values) > 0 {
		chart, err := wr.buildChart(cfg, len(values))
		if err != nil {
			return err
		}
		if err := f.AddChart(DataSheet, chartAnchor, chart); err != nil {
			return fmt.Errorf("add chart: %w", err)
		}
	} else {
		log.Debug().Msg("empty series, writing workbook without chart")
	}

	_, err = f.WriteTo(w)
	return err
}

func (wr *WorkbookRenderer) seriesValues(cfg *models.RenderConfig) ([]float64, error) {
	switch s := cfg.Settings.(type) {
	case models.LineSettings:
		return s.Dataset.YValues(), nil
	case models.BarSettings:
		return s.Values, nil
	default:
		return nil, fmt.Errorf("render workbook: unsupported settings %T", cfg.Settings)
	}
}

// buildChart maps the display policy and dataset onto an excelize chart.
func (wr *WorkbookRenderer) buildChart(cfg *models.RenderConfig, n int) (*excelize.Chart, error) {
	first, err := excelize.CoordinatesToCellName(dataColumn, 1, true)
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(dataColumn, n, true)
	if err != nil {
		return nil, err
	}

	series := excelize.ChartSeries{
		Values: fmt.Sprintf("%s!%s:%s", DataSheet, first, last),
	}

	chart := &excelize.Chart{
		Series:   []excelize.ChartSeries{series},
		Legend:   excelize.ChartLegend{Position: legendPosition(cfg.Policy)},
		XAxis:    workbookAxis(cfg.Policy.X),
		YAxis:    workbookAxis(cfg.Policy.Left),
		PlotArea: excelize.ChartPlotArea{ShowVal: false},
		Format:   excelize.GraphicOptions{Locked: boolPtr(!cfg.Policy.Interactive)},
	}
	if wr.Size.Width > 0 && wr.Size.Height > 0 {
		chart.Dimension = excelize.ChartDimension{Width: uint(wr.Size.Width), Height: uint(wr.Size.Height)}
	}
	if cfg.Policy.SuppressBorders {
		chart.Border = excelize.ChartLine{Type: excelize.ChartLineNone}
	}

	switch s := cfg.Settings.(type) {
	case models.LineSettings:
		chart.Type = excelize.Line
		ds := s.Dataset
		top := ds.Fill.Gradient.Start.Color
		chart.Series[0].Line = excelize.ChartLine{
			Type:  excelize.ChartLineSolid,
			Width: ds.LineWidth,
			Fill:  solidFill(top),
		}
		chart.Series[0].Fill = solidFill(top)
		if !ds.DrawCircles || cfg.Policy.SuppressMarkers {
			chart.Series[0].Marker = excelize.ChartMarker{Symbol: "none"}
		}
	case models.BarSettings:
		chart.Type = excelize.Col
		chart.Series[0].Fill = solidFill(s.Fill)
		chart.VaryColors = boolPtr(false)
	}

	return chart, nil
}

func legendPosition(p models.DisplayPolicy) string {
	if p.SuppressLegend {
		return "none"
	}
	return "bottom"
}

func workbookAxis(a models.AxisPolicy) excelize.ChartAxis {
	return excelize.ChartAxis{
		None:           a.SuppressLine && a.SuppressLabels,
		MajorGridLines: !a.SuppressGridLines,
	}
}

// solidFill maps a color to a solid fill; alpha becomes transparency.
func solidFill(c models.Color) excelize.Fill {
	return excelize.Fill{
		Type:         "pattern",
		Pattern:      1,
		Color:        []string{c.Hex()},
		Transparency: int(math.Round((1 - c.A) * 100)),
	}
}

func boolPtr(b bool) *bool { return &b }
