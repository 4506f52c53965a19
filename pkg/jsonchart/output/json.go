// Package output serializes chart configurations and inspection results.
package output

import (
	"encoding/json"

	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
)

// ToJSON serializes the configured charts of a view tree.
func ToJSON(charts []jsonchart.Chart, pretty bool) ([]byte, error) {
	if charts == nil {
		charts = []jsonchart.Chart{}
	}
	return marshal(charts, pretty)
}

// ConfigToJSON serializes a single render configuration.
func ConfigToJSON(cfg *models.RenderConfig, pretty bool) ([]byte, error) {
	return marshal(cfg, pretty)
}

// EmbeddedToJSON serializes the charts found in a workbook.
func EmbeddedToJSON(charts []models.EmbeddedChart, pretty bool) ([]byte, error) {
	if charts == nil {
		charts = []models.EmbeddedChart{}
	}
	return marshal(charts, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
