package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
)

// ChartTypeMap maps OOXML chart element tags to chart type names.
var ChartTypeMap = map[string]string{
	"lineChart":     "Line",
	"line3DChart":   "3DLine",
	"barChart":      "Bar",
	"bar3DChart":    "3DBar",
	"areaChart":     "Area",
	"area3DChart":   "3DArea",
	"pieChart":      "Pie",
	"doughnutChart": "Doughnut",
	"scatterChart":  "XYScatter",
	"radarChart":    "Radar",
}

// axisTags are the OOXML axis elements of a plot area.
var axisTags = map[string]bool{
	"catAx":  true,
	"valAx":  true,
	"dateAx": true,
	"serAx":  true,
}

// InspectCharts reads back the chart parts of an xlsx package together with
// the sheet and cells each is anchored to. Charts are returned in part name
// order.
func InspectCharts(r io.ReaderAt, size int64) ([]models.EmbeddedChart, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, err
	}

	placements := chartPlacements(zr)

	var result []models.EmbeddedChart
	for _, file := range zr.File {
		if path.Dir(file.Name) != "xl/charts" || !strings.HasPrefix(path.Base(file.Name), "chart") {
			continue
		}
		data, err := readZipEntry(file)
		if err != nil {
			return nil, err
		}
		chart := parseChartXML(data)
		chart.Part = file.Name
		if p, ok := placements[file.Name]; ok {
			chart.Sheet = p.sheet
			chart.Anchor = p.anchor
		}
		result = append(result, chart)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Part < result[j].Part })
	return result, nil
}

func readZipEntry(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// parseChartXML parses chart XML content.
func parseChartXML(data []byte) models.EmbeddedChart {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	chart := models.EmbeddedChart{ChartType: "unknown"}

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		se, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case se.Name.Local == "legend":
			chart.Legend = true
		case ChartTypeMap[se.Name.Local] != "":
			chart.ChartType = ChartTypeMap[se.Name.Local]
			chart.Series = append(chart.Series, parseChartSeries(decoder)...)
		case axisTags[se.Name.Local]:
			deleted, grid := parseAxis(decoder)
			chart.Axes++
			if deleted {
				chart.AxesDeleted++
			}
			chart.GridLines = chart.GridLines || grid
		}
	}

	return chart
}

// parseChartSeries parses series elements within a chart type.
func parseChartSeries(decoder *xml.Decoder) []models.EmbeddedSeries {
	var series []models.EmbeddedSeries
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ser" {
				series = append(series, parseSingleSeries(decoder))
				depth--
			}
		case xml.EndElement:
			depth--
		}
	}

	return series
}

// parseSingleSeries parses a single series element.
func parseSingleSeries(decoder *xml.Decoder) models.EmbeddedSeries {
	var s models.EmbeddedSeries
	var section string
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "tx", "val", "marker":
				if depth == 2 {
					section = t.Name.Local
				}
			case "symbol":
				if section == "marker" {
					s.Marker = attrValue(t, "val")
				}
			case "f":
				txt, err := readElementText(decoder)
				depth--
				if err != nil {
					continue
				}
				switch section {
				case "tx":
					s.NameRange = strings.TrimSpace(txt)
				case "val":
					s.ValuesRange = strings.TrimSpace(txt)
				}
			}
		case xml.EndElement:
			depth--
			if depth == 1 {
				section = ""
			}
		}
	}

	return s
}

// parseAxis reports whether an axis is deleted and whether it draws gridlines.
func parseAxis(decoder *xml.Decoder) (deleted, grid bool) {
	depth := 1

	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			switch t.Name.Local {
			case "delete":
				v := attrValue(t, "val")
				deleted = v == "1" || v == "true"
			case "majorGridlines", "minorGridlines":
				grid = true
			}
		case xml.EndElement:
			depth--
		}
	}

	return
}

func attrValue(se xml.StartElement, name string) string {
	for _, attr := range se.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// readElementText reads the character data of the current element
// and consumes its end tag.
func readElementText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	for {
		token, err := decoder.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			return sb.String(), nil
		}
	}
}
