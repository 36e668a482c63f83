package synth

import "errors"

var (
	// ErrNailCount indicates fewer than two nails were requested.
	ErrNailCount = errors.New("synth: num nails must be greater than 1")
	// ErrCanvasSize indicates a non-positive canvas size.
	ErrCanvasSize = errors.New("synth: canvas size must be positive")
	// ErrMinDistance indicates a minimum nail separation that would reject
	// every chord on the ring.
	ErrMinDistance = errors.New("synth: min distance must be less than half the nail count")
	// ErrOpacity indicates a non-positive per-line opacity.
	ErrOpacity = errors.New("synth: opacity must be positive")
	// ErrMaxLines indicates a negative line budget.
	ErrMaxLines = errors.New("synth: max lines must not be negative")
)
