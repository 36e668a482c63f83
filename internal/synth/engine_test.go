package synth_test

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"stringart/internal/canvas"
	"stringart/internal/render"
	"stringart/internal/synth"
	"stringart/pkg/geometry"
)

// testParams is a small, fast parameter set for 64px runs.
func testParams() synth.Params {
	p := synth.DefaultParams()
	p.NumNails = 16
	p.CanvasSize = 64
	p.MaxLines = 50
	p.MinDistance = 3
	p.Opacity = 50
	p.MinScore = 1.0
	p.StuckLimit = 5
	p.TerminateLimit = 20
	p.RecentLimit = 10
	p.Seed = 7
	p.TimeBudget = 0
	return p
}

// uniformTarget builds a rows×cols darkness matrix filled with v.
func uniformTarget(rows, cols int, v float64) *mat.Dense {
	d := mat.NewDense(rows, cols, nil)
	if v != 0 {
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				d.Set(y, x, v)
			}
		}
	}
	return d
}

// centerSquareTarget is the golden scenario input: a bright 10x10 square in
// the middle of an otherwise empty field.
func centerSquareTarget(size int) *mat.Dense {
	d := mat.NewDense(size, size, nil)
	lo := size/2 - 5
	for y := lo; y < lo+10; y++ {
		for x := lo; x < lo+10; x++ {
			d.Set(y, x, 255)
		}
	}
	return d
}

func mustTarget(t *testing.T, d *mat.Dense, canvasSize int) *canvas.Target {
	t.Helper()
	target, err := canvas.NewTarget(d, canvasSize)
	require.NoError(t, err)
	return target
}

func TestSynthesizeRejectsBadParams(t *testing.T) {
	target := mustTarget(t, uniformTarget(8, 8, 100), 64)

	cases := []struct {
		name   string
		mutate func(*synth.Params)
		err    error
	}{
		{"OneNail", func(p *synth.Params) { p.NumNails = 1 }, synth.ErrNailCount},
		{"ZeroCanvas", func(p *synth.Params) { p.CanvasSize = 0 }, synth.ErrCanvasSize},
		{"MinDistanceHalfRing", func(p *synth.Params) { p.MinDistance = 8 }, synth.ErrMinDistance},
		{"ZeroOpacity", func(p *synth.Params) { p.Opacity = 0 }, synth.ErrOpacity},
		{"NegativeMaxLines", func(p *synth.Params) { p.MaxLines = -1 }, synth.ErrMaxLines},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := testParams()
			tc.mutate(&p)
			_, err := synth.Synthesize(target, p)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestAllZeroTarget: a target needing no darkness anywhere is not an error;
// the threshold fails from iteration one and the run ends with an empty path.
func TestAllZeroTarget(t *testing.T) {
	target := mustTarget(t, uniformTarget(64, 64, 0), 64)

	res, err := synth.Synthesize(target, testParams())
	require.NoError(t, err)

	assert.Empty(t, res.Path)
	assert.Equal(t, synth.ReasonExhausted, res.Reason)
	assert.Len(t, res.Nails, 16)
}

// TestStuckTriggersRestarts: with nothing to commit, the low-score streak
// passes the stuck bound repeatedly before the cumulative bound terminates,
// so the walk jumps without any corresponding path commits.
func TestStuckTriggersRestarts(t *testing.T) {
	target := mustTarget(t, uniformTarget(64, 64, 0), 64)

	res, err := synth.Synthesize(target, testParams())
	require.NoError(t, err)

	assert.Empty(t, res.Path)
	// TerminateLimit 20 with StuckLimit 5 allows three jumps before stopping.
	assert.GreaterOrEqual(t, res.Restarts, 1)
}

func TestDeterminism(t *testing.T) {
	d := radialTarget(64)
	p := testParams()
	p.Seed = 42

	first, err := synth.Synthesize(mustTarget(t, d, 64), p)
	require.NoError(t, err)
	second, err := synth.Synthesize(mustTarget(t, d, 64), p)
	require.NoError(t, err)

	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.Reason, second.Reason)
	assert.Equal(t, first.Restarts, second.Restarts)
}

// TestWorkersDoNotChangeOutput: the parallel candidate scan reduces in index
// order, so any worker count reproduces the sequential path.
func TestWorkersDoNotChangeOutput(t *testing.T) {
	d := radialTarget(64)

	sequential, err := synth.Synthesize(mustTarget(t, d, 64), testParams())
	require.NoError(t, err)

	p := testParams()
	p.Workers = 4
	parallel, err := synth.Synthesize(mustTarget(t, d, 64), p)
	require.NoError(t, err)

	assert.Equal(t, sequential.Path, parallel.Path)
}

// TestPathInvariants runs a real synthesis and checks every committed chord.
func TestPathInvariants(t *testing.T) {
	p := testParams()
	res, err := synth.Synthesize(mustTarget(t, radialTarget(64), 64), p)
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)

	assert.LessOrEqual(t, len(res.Path), p.MaxLines)

	for i, c := range res.Path {
		assert.NotEqual(t, c.StartIndex, c.EndIndex, "degenerate chord %d", i)
		dist := geometry.CircularDistance(c.StartIndex, c.EndIndex, p.NumNails)
		assert.GreaterOrEqual(t, dist, p.MinDistance, "chord %d too short", i)
	}
}

func TestMaxLinesBound(t *testing.T) {
	p := testParams()
	p.MaxLines = 5
	p.TerminateLimit = 200

	res, err := synth.Synthesize(mustTarget(t, uniformTarget(64, 64, 255), 64), p)
	require.NoError(t, err)

	assert.Len(t, res.Path, 5)
	assert.Equal(t, synth.ReasonComplete, res.Reason)
}

// TestTimeout: an expired budget is not an error and is distinguishable
// from natural termination.
func TestTimeout(t *testing.T) {
	p := testParams()
	p.TimeBudget = time.Nanosecond

	res, err := synth.Synthesize(mustTarget(t, uniformTarget(64, 64, 255), 64), p)
	require.NoError(t, err)

	assert.Equal(t, synth.ReasonTimeout, res.Reason)
	assert.NotNil(t, res.Path)
}

// TestCenterSquareScenario: 8 nails, 64px canvas, a bright 10x10 center
// square. The committed chords must darken the bright region visibly more
// than the empty field.
func TestCenterSquareScenario(t *testing.T) {
	p := synth.DefaultParams()
	p.NumNails = 8
	p.CanvasSize = 64
	p.MaxLines = 100
	p.MinDistance = 2
	p.Opacity = 50
	p.MinScore = 1.0
	p.StuckLimit = 10
	p.TerminateLimit = 30
	p.RecentLimit = 10
	p.Seed = 1
	p.TimeBudget = 0

	res, err := synth.Synthesize(mustTarget(t, centerSquareTarget(64), 64), p)
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)

	img := render.Path(res.Nails, res.Path, 64, p.Opacity)

	center := meanGray(img, 27, 27, 10)
	corner := meanGray(img, 2, 2, 10)
	assert.Less(t, center, corner, "bright region must end darker than the empty field")
}

// radialTarget is dark in the middle fading to nothing at the rim.
func radialTarget(size int) *mat.Dense {
	d := mat.NewDense(size, size, nil)
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := math.Hypot(float64(x)-c, float64(y)-c)
			v := 255 * (1 - dist/c)
			if v < 0 {
				v = 0
			}
			d.Set(y, x, v)
		}
	}
	return d
}

func meanGray(img *image.Gray, x0, y0, side int) float64 {
	var sum float64
	for y := y0; y < y0+side; y++ {
		for x := x0; x < x0+side; x++ {
			sum += float64(img.GrayAt(x, y).Y)
		}
	}
	return sum / float64(side*side)
}
