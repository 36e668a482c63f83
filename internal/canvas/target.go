package canvas

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyTarget indicates a darkness target with zero rows or columns.
	ErrEmptyTarget = errors.New("canvas: target must have at least one row and one column")
	// ErrCanvasSize indicates a non-positive canvas size.
	ErrCanvasSize = errors.New("canvas: canvas size must be positive")
)

// Target is the read-only darkness target. Its resolution may differ from
// the canvas; reads are index-scaled from canvas coordinates into target
// coordinates. Higher values mean the pixel should end up darker.
type Target struct {
	d          *mat.Dense
	rows, cols int
	scaleX     float64
	scaleY     float64
}

// NewTarget wraps a darkness matrix for reads in canvas coordinates. The
// scale factors are fixed here, so a zero-area target is rejected up front
// rather than dividing by zero later.
func NewTarget(d *mat.Dense, canvasSize int) (*Target, error) {
	if canvasSize <= 0 {
		return nil, ErrCanvasSize
	}
	rows, cols := d.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrEmptyTarget
	}
	return &Target{
		d:      d,
		rows:   rows,
		cols:   cols,
		scaleX: float64(cols) / float64(canvasSize),
		scaleY: float64(rows) / float64(canvasSize),
	}, nil
}

// At returns the target darkness for a canvas pixel.
func (t *Target) At(x, y int) float64 {
	tx := int(float64(x) * t.scaleX)
	ty := int(float64(y) * t.scaleY)
	if tx >= t.cols {
		tx = t.cols - 1
	}
	if ty >= t.rows {
		ty = t.rows - 1
	}
	return t.d.At(ty, tx)
}
