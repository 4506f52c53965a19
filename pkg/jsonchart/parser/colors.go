package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
)

var (
	hexColorExpr = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#?[0-9a-fA-F]{6}|#?[0-9a-fA-F]{8})$`)
	cssColorExpr = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)
)

// systemColors are UI color names with no CSS basic equivalent.
var systemColors = map[string]models.Color{
	"orange": models.RGBA(1, 0.584, 0, 1),
	"pink":   models.RGBA(1, 0.176, 0.333, 1),
	"gray":   models.RGBA(0.557, 0.557, 0.576, 1),
	"clear":  models.RGBA(0, 0, 0, 0),
}

// ParseColor converts a host color value into a normalized color.
//
// Accepted forms are hex strings (#RGB, #RRGGBB, #RRGGBBAA; the # is
// optional for the six and eight digit forms), rgb()/rgba()
// strings, color names, and objects with normalized components keyed
// red/green/blue/opacity or r/g/b/a. The second result is false when the
// value is not a recognizable color.
func ParseColor(value any) (models.Color, bool) {
	switch v := value.(type) {
	case string:
		return parseColorString(strings.TrimSpace(v))
	case map[string]any:
		return parseColorObject(v)
	default:
		return models.Color{}, false
	}
}

func parseColorString(s string) (models.Color, bool) {
	if s == "" {
		return models.Color{}, false
	}
	if hexColorExpr.MatchString(s) {
		hex := strings.TrimPrefix(s, "#")
		c := fromDrawing(drawing.ColorFromHex(hex[:min(len(hex), 6)]))
		if len(hex) == 8 {
			a, _ := strconv.ParseUint(hex[6:], 16, 8)
			c.A = float64(a) / 255
		}
		return c, true
	}
	if m := cssColorExpr.FindStringSubmatch(s); m != nil {
		return parseColorFunc(m)
	}
	if c, ok := systemColors[strings.ToLower(s)]; ok {
		return c, true
	}
	known := drawing.ColorFromKnown(s)
	if known.IsZero() {
		return models.Color{}, false
	}
	return fromDrawing(known), true
}

// parseColorFunc converts the submatches of an rgb()/rgba() string.
// Channels must be within 0-255 and alpha within [0,1].
func parseColorFunc(m []string) (models.Color, bool) {
	var rgb [3]float64
	for i, raw := range m[1:4] {
		v, err := strconv.Atoi(raw)
		if err != nil || v > 255 {
			return models.Color{}, false
		}
		rgb[i] = float64(v) / 255
	}
	a := 1.0
	if m[4] != "" {
		v, err := strconv.ParseFloat(m[4], 64)
		if err != nil || v > 1 {
			return models.Color{}, false
		}
		a = v
	}
	return models.RGBA(rgb[0], rgb[1], rgb[2], a), true
}

func parseColorObject(obj map[string]any) (models.Color, bool) {
	component := func(keys ...string) (float64, bool, bool) {
		for _, k := range keys {
			if raw, ok := obj[k]; ok {
				f, isNum := raw.(float64)
				return f, true, isNum && f >= 0 && f <= 1
			}
		}
		return 0, false, true
	}

	r, hasR, okR := component("red", "r")
	g, hasG, okG := component("green", "g")
	b, hasB, okB := component("blue", "b")
	a, hasA, okA := component("opacity", "alpha", "a")
	if !hasR || !hasG || !hasB || !okR || !okG || !okB || !okA {
		return models.Color{}, false
	}
	if !hasA {
		a = 1
	}
	return models.RGBA(r, g, b, a), true
}

func fromDrawing(c drawing.Color) models.Color {
	return models.RGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, float64(c.A)/255)
}
