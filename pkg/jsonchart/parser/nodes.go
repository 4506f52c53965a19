// Package parser decodes chart view inputs from JSON view trees and workbooks.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/view"
)

// DecodeView decodes a JSON view tree.
func DecodeView(r io.Reader) (*models.ViewNode, error) {
	var node models.ViewNode
	if err := json.NewDecoder(r).Decode(&node); err != nil {
		return nil, fmt.Errorf("decode view tree: %w", err)
	}
	return &node, nil
}

// FindCharts returns every chart node of the tree in depth-first order.
// Props are decoded field by field; a field that cannot be decoded is left
// empty without affecting the others.
func FindCharts(root *models.ViewNode) []models.ChartNode {
	var result []models.ChartNode
	walkNodes(root, "root", func(n *models.ViewNode, path string) {
		if !strings.EqualFold(n.Type, models.ChartNodeType) {
			return
		}
		result = append(result, models.ChartNode{Path: path, Props: decodeProps(n.Props)})
	})
	return result
}

func decodeProps(raw json.RawMessage) models.ChartProps {
	var props models.ChartProps
	var fields map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &fields) != nil {
		return props
	}

	props.Style = decodeField(fields["style"])
	props.ForegroundColor = decodeField(fields["foregroundColor"])

	// Entries are decoded one at a time so an unrepresentable number only
	// drops itself.
	var items []json.RawMessage
	if data, ok := fields["data"]; ok {
		if json.Unmarshal(data, &items) == nil {
			values := make([]any, 0, len(items))
			for _, item := range items {
				if v := decodeField(item); v != nil {
					values = append(values, v)
				}
			}
			props.Data = values
		} else {
			props.Data = decodeField(data)
		}
	}
	return props
}

func decodeField(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func walkNodes(n *models.ViewNode, path string, visit func(*models.ViewNode, string)) {
	if n == nil {
		return
	}
	visit(n, path)
	for i := range n.Children {
		walkNodes(&n.Children[i], fmt.Sprintf("%s/children[%d]", path, i), visit)
	}
}

// InputFromProps converts chart props into a configurator input.
// Absent or malformed values are left nil so they are defaulted.
func InputFromProps(props models.ChartProps) view.Input {
	var in view.Input

	if token, ok := props.Style.(string); ok {
		style := models.ParseChartStyle(token)
		in.Style = &style
	}

	in.Data = parseSeries(props.Data)

	if props.ForegroundColor != nil {
		if c, ok := ParseColor(props.ForegroundColor); ok {
			in.Color = &c
		}
	}

	return in
}

// parseSeries keeps the numeric entries of a JSON array.
func parseSeries(raw any) []float64 {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	data := make([]float64, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case float64:
			data = append(data, v)
		case string:
			if f, ok := parseNumber(v); ok {
				data = append(data, f)
			}
		}
	}
	return data
}
