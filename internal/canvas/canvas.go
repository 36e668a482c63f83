// Package canvas holds the darkness grids the synthesizer reads and writes:
// the mutable accumulator of committed thread and the read-only target.
package canvas

import (
	"image"

	"gonum.org/v1/gonum/mat"
)

// MaxDarkness is the clamp for accumulated darkness, matching 8-bit tone.
const MaxDarkness = 255.0

// Canvas accumulates the simulated darkness of committed lines. Values start
// at zero, only ever grow, and are clamped at MaxDarkness. There is no
// subtraction operation: committed thread cannot be removed.
type Canvas struct {
	size int
	d    *mat.Dense
}

// New creates a zeroed square canvas.
func New(size int) *Canvas {
	return &Canvas{size: size, d: mat.NewDense(size, size, nil)}
}

// Size returns the canvas side length in pixels.
func (c *Canvas) Size() int {
	return c.size
}

// At returns the accumulated darkness at a pixel.
func (c *Canvas) At(x, y int) float64 {
	return c.d.At(y, x)
}

// AddLine deposits one pass of thread over the given points, raising each
// pixel's darkness by opacity up to MaxDarkness. Points must be in bounds;
// the rasterizer's cache guarantees that.
func (c *Canvas) AddLine(points []image.Point, opacity float64) {
	for _, p := range points {
		v := c.d.At(p.Y, p.X) + opacity
		if v > MaxDarkness {
			v = MaxDarkness
		}
		c.d.Set(p.Y, p.X, v)
	}
}
