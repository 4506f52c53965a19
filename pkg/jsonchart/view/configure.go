// Package view turns chart view inputs into render configurations.
package view

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
)

// Input holds the caller-supplied chart view properties.
// Nil fields are replaced with defaults by Configure.
type Input struct {
	Style *models.ChartStyle
	Data  []float64
	Color *models.Color
}

// Configure builds the render configuration for in.
//
// A missing or unknown style selects a line chart, missing data an empty
// series and a missing or out-of-range color models.DefaultColor. NaN and
// infinite samples are dropped.
func Configure(in Input) (*models.RenderConfig, error) {
	style := models.StyleLine
	if in.Style != nil {
		switch *in.Style {
		case models.StyleLine, models.StyleBar:
			style = *in.Style
		default:
			log.Debug().Str("style", string(*in.Style)).Msg("unknown chart style, using line")
		}
	}
	data := finite(in.Data)
	hasColor := in.Color != nil && in.Color.Valid()
	col := models.DefaultColor
	if hasColor {
		col = *in.Color
	} else if in.Color != nil {
		log.Debug().Interface("color", *in.Color).Msg("invalid chart color, using default")
	}

	gradient, err := models.NewGradient(col)
	if err != nil {
		return nil, fmt.Errorf("configure %s chart: %w", style, err)
	}

	cfg := &models.RenderConfig{
		Style:    style,
		Color:    col,
		Gradient: gradient,
		Policy:   models.StaticPolicy(),
	}

	switch style {
	case models.StyleLine:
		cfg.Settings = models.LineSettings{Dataset: BuildDataset(Adapt(data), gradient)}
	case models.StyleBar:
		fill := models.Black
		if hasColor {
			fill = col
		}
		cfg.Settings = models.BarSettings{
			Values:     data,
			Fill:       fill,
			Background: models.Transparent,
			HitTesting: false,
		}
	default:
		return nil, fmt.Errorf("configure: unsupported chart style %q", style)
	}

	return cfg, nil
}

// finite returns a copy of data without NaN or infinite samples.
func finite(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	if len(out) < len(data) {
		log.Debug().Int("dropped", len(data)-len(out)).Msg("dropped non-finite samples")
	}
	return out
}

// MustConfigure is like Configure but panics if the gradient cannot be built.
func MustConfigure(in Input) *models.RenderConfig {
	cfg, err := Configure(in)
	if err != nil {
		panic(err)
	}
	return cfg
}
