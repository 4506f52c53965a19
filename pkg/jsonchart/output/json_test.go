package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/view"
)

func TestConfigToJSON(t *testing.T) {
	style := models.StyleBar
	cfg := view.MustConfigure(view.Input{Style: &style, Data: []float64{1, 2}})

	data, err := ConfigToJSON(cfg, false)
	if err != nil {
		t.Fatalf("ConfigToJSON() error = %v", err)
	}

	var decoded struct {
		Style    string `json:"style"`
		Settings struct {
			Values     []float64    `json:"values"`
			Fill       models.Color `json:"fill"`
			HitTesting bool         `json:"hit_testing"`
		} `json:"settings"`
		Policy models.DisplayPolicy `json:"policy"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded.Style != "bar" {
		t.Errorf("style = %q, want bar", decoded.Style)
	}
	if len(decoded.Settings.Values) != 2 {
		t.Errorf("values = %v", decoded.Settings.Values)
	}
	if decoded.Settings.Fill != models.Black {
		t.Errorf("fill = %+v, want black", decoded.Settings.Fill)
	}
	if decoded.Policy.Interactive {
		t.Error("policy should not be interactive")
	}
}

func TestToJSONPretty(t *testing.T) {
	cfg := view.MustConfigure(view.Input{Data: []float64{3}})
	charts := []jsonchart.Chart{{Path: "root", Config: cfg}}

	compact, err := ToJSON(charts, false)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	pretty, err := ToJSON(charts, true)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	if strings.Contains(string(compact), "\n") {
		t.Error("compact output should be a single line")
	}
	if !strings.Contains(string(pretty), "\n  ") {
		t.Error("pretty output should be indented")
	}
	if !strings.Contains(string(compact), `"path":"root"`) {
		t.Errorf("compact output missing path: %s", compact)
	}
}

func TestEmptyResultsAreArrays(t *testing.T) {
	tests := []struct {
		name string
		fn   func() ([]byte, error)
	}{
		{"charts", func() ([]byte, error) { return ToJSON(nil, false) }},
		{"embedded", func() ([]byte, error) { return EmbeddedToJSON(nil, false) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.fn()
			if err != nil {
				t.Fatalf("error = %v", err)
			}
			if string(data) != "[]" {
				t.Errorf("got %s, want []", data)
			}
		})
	}
}
