package models

import (
	"errors"
	"math"
	"testing"
)

func TestParseChartStyle(t *testing.T) {
	tests := []struct {
		token    string
		expected ChartStyle
	}{
		{"line", StyleLine},
		{"bar", StyleBar},
		{"Bar", StyleLine},
		{"LINE", StyleLine},
		{"pie", StyleLine},
		{"", StyleLine},
	}

	for _, tt := range tests {
		if result := ParseChartStyle(tt.token); result != tt.expected {
			t.Errorf("ParseChartStyle(%q) = %q, expected %q", tt.token, result, tt.expected)
		}
	}
}

func TestColorValid(t *testing.T) {
	tests := []struct {
		color    Color
		expected bool
	}{
		{RGBA(0, 0, 1, 1), true},
		{RGBA(0, 0, 0, 0), true},
		{RGBA(1.01, 0, 0, 1), false},
		{RGBA(0, -0.1, 0, 1), false},
		{RGBA(0, 0, math.NaN(), 1), false},
		{RGBA(0, 0, 0, math.Inf(1)), false},
	}

	for _, tt := range tests {
		if result := tt.color.Valid(); result != tt.expected {
			t.Errorf("%+v.Valid() = %v, expected %v", tt.color, result, tt.expected)
		}
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{RGBA(0, 0, 1, 1), "0000FF"},
		{RGBA(1, 1, 1, 0), "FFFFFF"},
		{RGBA(0.5, 0.25, 0, 1), "804000"},
	}

	for _, tt := range tests {
		if result := tt.color.Hex(); result != tt.expected {
			t.Errorf("%+v.Hex() = %q, expected %q", tt.color, result, tt.expected)
		}
	}
}

func TestNewGradient(t *testing.T) {
	g, err := NewGradient(RGBA(0, 0, 1, 1))
	if err != nil {
		t.Fatalf("NewGradient failed: %v", err)
	}
	if g.Start.Color != RGBA(0, 0, 1, 0.8) || g.Start.Location != 0 {
		t.Errorf("Unexpected start stop: %+v", g.Start)
	}
	if g.End.Color != RGBA(0, 0, 1, 0.4) || g.End.Location != 1 {
		t.Errorf("Unexpected end stop: %+v", g.End)
	}
	if g.Angle != 90 {
		t.Errorf("Expected vertical angle, got %v", g.Angle)
	}

	if mid := g.At(0.5); math.Abs(mid.A-0.6) > 1e-12 {
		t.Errorf("At(0.5).A = %v, expected 0.6", mid.A)
	}
	if g.At(-1) != g.Start.Color || g.At(2) != g.End.Color {
		t.Errorf("At does not clamp to the stops")
	}

	if _, err := NewGradient(RGBA(0, 0, 2, 1)); !errors.Is(err, ErrGradient) {
		t.Errorf("Expected ErrGradient, got %v", err)
	}
}

func TestStaticPolicy(t *testing.T) {
	p := StaticPolicy()
	if !p.AxesHidden() {
		t.Errorf("Expected all axes suppressed")
	}
	if p.Interactive {
		t.Errorf("Expected non-interactive policy")
	}
	p.Left.SuppressLabels = false
	if p.AxesHidden() {
		t.Errorf("AxesHidden ignored the left axis")
	}
}
