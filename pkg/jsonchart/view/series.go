package view

import (
	"iter"

	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/models"
)

// LineWidth is the stroke width of a line dataset.
const LineWidth = 2

// Adapt places each sample at its position in the series.
func Adapt(data []float64) []models.DataPoint {
	points := make([]models.DataPoint, 0, len(data))
	for p := range Points(data) {
		points = append(points, p)
	}
	return points
}

// Points lazily yields the data points of data in order.
func Points(data []float64) iter.Seq[models.DataPoint] {
	return func(yield func(models.DataPoint) bool) {
		for i, v := range data {
			if !yield(models.DataPoint{Index: i, Value: v}) {
				return
			}
		}
	}
}

// BuildDataset wraps points with the line display parameters:
// no value labels, no highlight indicators, no dashes, no circles,
// and the area below the line filled with gradient.
func BuildDataset(points []models.DataPoint, gradient models.GradientSpec) models.DatasetDescriptor {
	return models.DatasetDescriptor{
		Points:                  points,
		DrawValues:              false,
		DrawFilled:              true,
		DrawVerticalHighlight:   false,
		DrawHorizontalHighlight: false,
		LineDash:                nil,
		HighlightDash:           nil,
		DrawCircles:             false,
		LineWidth:               LineWidth,
		Fill: models.GradientFill{
			Gradient: gradient,
			Angle:    gradient.Angle,
		},
	}
}
