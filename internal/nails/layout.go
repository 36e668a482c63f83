// Package nails computes the fixed nail positions on the perimeter circle.
package nails

import (
	"errors"

	"stringart/pkg/geometry"
)

// Margin keeps nails strictly inside the canvas.
const Margin = 20

var (
	// ErrCount indicates a non-positive nail count.
	ErrCount = errors.New("nails: count must be positive")
	// ErrCanvasSize indicates a non-positive canvas size.
	ErrCanvasSize = errors.New("nails: canvas size must be positive")
)

// Nail is a fixed peg position on the perimeter circle.
type Nail struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

// Generate places count nails at equal angular spacing on a circle centered
// in a square canvas of the given size, with radius size/2 - Margin. The
// layout is deterministic and never changes after generation.
func Generate(count, canvasSize int) ([]Nail, error) {
	if count <= 0 {
		return nil, ErrCount
	}
	if canvasSize <= 0 {
		return nil, ErrCanvasSize
	}

	center := float64(canvasSize) / 2
	radius := center - Margin
	points := geometry.GenerateCirclePoints(center, center, radius, count)

	out := make([]Nail, count)
	for i, p := range points {
		rp := p.Round()
		out[i] = Nail{Index: i, X: rp.X, Y: rp.Y}
	}
	return out, nil
}

// Positions returns the nail coordinates as integer points, in index order.
func Positions(ns []Nail) []geometry.PointInt {
	pts := make([]geometry.PointInt, len(ns))
	for i, n := range ns {
		pts[i] = geometry.PointInt{X: n.X, Y: n.Y}
	}
	return pts
}
