package synth

import "time"

// Params holds the knobs for one synthesis run.
type Params struct {
	// NumNails is the number of pegs on the perimeter circle.
	NumNails int
	// CanvasSize is the side length of the square simulation canvas.
	CanvasSize int
	// MaxLines caps the number of committed chords.
	MaxLines int
	// MinDistance is the minimum circular index distance between the two
	// nails of a chord. Short chords hug the rim and contribute nothing
	// visually.
	MinDistance int
	// Opacity is the darkness one pass of thread deposits on a pixel.
	Opacity float64
	// MinScore is the commit threshold: the best candidate's mean per-pixel
	// contribution must exceed it.
	MinScore float64
	// StuckLimit is the low-score streak after which the walk jumps to a
	// random nail and forgets recent connections.
	StuckLimit int
	// TerminateLimit is the cumulative low-score streak since the last
	// commit after which the run stops.
	TerminateLimit int
	// RecentLimit bounds the set of recently used chords that are
	// temporarily off limits.
	RecentLimit int
	// Seed feeds the RNG used for restart jumps and recent-set eviction.
	// Identical inputs and seed reproduce the path exactly.
	Seed int64
	// TimeBudget bounds wall-clock time; zero means no budget. On expiry
	// the run returns the path committed so far.
	TimeBudget time.Duration
	// Workers sets how many goroutines score candidates per iteration.
	// Values below 2 keep the scan sequential. The reduction is ordered by
	// candidate index, so the result does not depend on this setting.
	Workers int
}

// DefaultParams returns the parameter set the original service shipped with:
// 200 nails on a 500px canvas, up to 3000 lines, three-minute budget.
func DefaultParams() Params {
	return Params{
		NumNails:       200,
		CanvasSize:     500,
		MaxLines:       3000,
		MinDistance:    8,
		Opacity:        25,
		MinScore:       1.0,
		StuckLimit:     50,
		TerminateLimit: 100,
		RecentLimit:    50,
		Seed:           1,
		TimeBudget:     3 * time.Minute,
		Workers:        1,
	}
}

// WithSeed returns a copy of params with the RNG seed replaced.
func (p Params) WithSeed(seed int64) Params {
	p.Seed = seed
	return p
}

// WithBudget returns a copy of params with the wall-clock budget replaced.
func (p Params) WithBudget(d time.Duration) Params {
	p.TimeBudget = d
	return p
}

// WithLayout returns a copy of params with nail count and canvas size
// replaced.
func (p Params) WithLayout(numNails, canvasSize int) Params {
	p.NumNails = numNails
	p.CanvasSize = canvasSize
	return p
}

// Validate rejects parameter sets the synthesizer cannot run with. Nothing
// is clamped silently.
func (p Params) Validate() error {
	if p.NumNails <= 1 {
		return ErrNailCount
	}
	if p.CanvasSize <= 0 {
		return ErrCanvasSize
	}
	if p.MinDistance*2 >= p.NumNails {
		return ErrMinDistance
	}
	if p.Opacity <= 0 {
		return ErrOpacity
	}
	if p.MaxLines < 0 {
		return ErrMaxLines
	}
	return nil
}
