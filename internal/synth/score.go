package synth

import (
	"image"

	"stringart/internal/canvas"
)

// overshootWeight is the half-weight penalty applied where a line would push
// a pixel past its target darkness. Without it the walk keeps reinforcing
// the same high-need chords until they are massively overdrawn.
const overshootWeight = 0.5

// scorer computes the value of laying one pass of thread along a line,
// against the target and the current canvas.
type scorer struct {
	target  *canvas.Target
	cv      *canvas.Canvas
	opacity float64
}

// lineScore returns the mean per-pixel contribution over the line's points.
// A pixel still lighter than its target contributes the darkening this pass
// actually supplies, capped by the opacity; a pixel already at or past its
// target contributes a penalty proportional to the overshoot. An empty line
// scores 0.
func (s scorer) lineScore(points []image.Point) float64 {
	if len(points) == 0 {
		return 0
	}

	var sum float64
	for _, p := range points {
		target := s.target.At(p.X, p.Y)
		current := s.cv.At(p.X, p.Y)

		if target > current {
			need := target - current
			if need > s.opacity {
				need = s.opacity
			}
			sum += need
		} else {
			after := current + s.opacity
			if after > canvas.MaxDarkness {
				after = canvas.MaxDarkness
			}
			sum -= overshootWeight * (after - target)
		}
	}
	return sum / float64(len(points))
}
