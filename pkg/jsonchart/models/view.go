package models

import "encoding/json"

// ChartNodeType is the view type name of a chart node.
const ChartNodeType = "Chart"

// ViewNode is one node of a JSON-driven UI tree.
type ViewNode struct {
	// Type is the view type name (e.g., "VStack", "Chart").
	Type string `json:"type"`
	// Props holds the view properties, decoded lazily per view type.
	Props json.RawMessage `json:"props,omitempty"`
	// Children are the nested views.
	Children []ViewNode `json:"children,omitempty"`
}

// ChartProps are the properties of a chart view.
// Fields are loosely typed so malformed values can be defaulted.
type ChartProps struct {
	Style           any `json:"style"`
	Data            any `json:"data"`
	ForegroundColor any `json:"foregroundColor"`
}

// ChartNode is a chart view found in a tree.
type ChartNode struct {
	// Path locates the node, e.g. "root/children[0]".
	Path string `json:"path"`
	// Props are the decoded chart properties.
	Props ChartProps `json:"props"`
}
