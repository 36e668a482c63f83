// Package synth implements the greedy continuous-walk search that turns a
// darkness target into an ordered thread path over the nail circle.
//
// The walk is steepest-ascent and forward-only: a committed chord is never
// reconsidered, matching the physical constraint that wound thread cannot be
// removed. From the current nail every permissible chord is scored against
// the target and the canvas; the best one is committed if it clears the
// score threshold. Runs of threshold failures first trigger a jump to a
// random nail (escaping a saturated region of the canvas) and eventually
// terminate the run.
package synth

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"stringart/internal/canvas"
	"stringart/internal/nails"
	"stringart/internal/raster"
	"stringart/pkg/geometry"
)

// Synthesize runs the greedy walk over the target with the given parameters
// and returns the nail layout and committed path. The target is read-only;
// the canvas and line cache are created here and owned by this run alone, so
// concurrent calls are independent.
func Synthesize(target *canvas.Target, p Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	ns, err := nails.Generate(p.NumNails, p.CanvasSize)
	if err != nil {
		return nil, err
	}

	e := &engine{
		p:      p,
		ns:     ns,
		target: target,
		cv:     canvas.New(p.CanvasSize),
		cache:  raster.NewCache(nails.Positions(ns), p.CanvasSize),
		rng:    rand.New(rand.NewSource(p.Seed)),
		recent: newRecentSet(p.RecentLimit),
		scores: make([]float64, p.NumNails),
	}
	return e.run(), nil
}

// engine holds the mutable state of one synthesis run.
type engine struct {
	p      Params
	ns     []nails.Nail
	target *canvas.Target
	cv     *canvas.Canvas
	cache  *raster.Cache
	rng    *rand.Rand
	recent *recentSet

	path    []Connection
	current int // nail the thread currently hangs from

	sinceJump   int // threshold failures since the last commit or jump
	sinceCommit int // threshold failures since the last commit
	restarts    int

	scores []float64 // per-candidate scratch for the parallel scan
}

func (e *engine) run() *Result {
	start := time.Now()
	reason := ReasonComplete

	for len(e.path) < e.p.MaxLines {
		if e.p.TimeBudget > 0 && time.Since(start) > e.p.TimeBudget {
			reason = ReasonTimeout
			break
		}

		if e.step() {
			continue
		}

		e.sinceJump++
		e.sinceCommit++
		if e.sinceCommit > e.p.TerminateLimit {
			reason = ReasonExhausted
			break
		}
		if e.sinceJump > e.p.StuckLimit {
			e.jump()
		}
	}

	return assemble(e.ns, e.path, reason, e.restarts, time.Since(start))
}

// step scores every permissible chord from the current nail and commits the
// best one if it clears the threshold. Returns whether a commit happened.
func (e *engine) step() bool {
	sc := scorer{target: e.target, cv: e.cv, opacity: e.p.Opacity}

	if e.p.Workers > 1 {
		e.scoreParallel(sc)
	} else {
		for t := 0; t < e.p.NumNails; t++ {
			e.scores[t] = e.scoreCandidate(sc, t)
		}
	}

	// Ascending-index scan with strict >, so ties resolve to the lowest
	// candidate index regardless of worker count.
	best := -1
	bestScore := math.Inf(-1)
	for t := 0; t < e.p.NumNails; t++ {
		if !e.permitted(t) {
			continue
		}
		if e.scores[t] > bestScore {
			bestScore = e.scores[t]
			best = t
		}
	}

	if best < 0 || bestScore <= e.p.MinScore {
		return false
	}

	e.commit(best)
	return true
}

// permitted applies the structural candidate filters: not the current nail,
// not a rim-hugging short chord, not a recently used pair.
func (e *engine) permitted(t int) bool {
	if t == e.current {
		return false
	}
	if geometry.CircularDistance(e.current, t, e.p.NumNails) < e.p.MinDistance {
		return false
	}
	return !e.recent.contains(raster.PairOf(e.current, t))
}

func (e *engine) scoreCandidate(sc scorer, t int) float64 {
	if !e.permitted(t) {
		return math.Inf(-1)
	}
	return sc.lineScore(e.cache.Line(e.current, t))
}

// scoreParallel fills the score slice using Workers goroutines. Each
// candidate's score lands in its own slot, so the later ordered reduction is
// identical to the sequential scan.
func (e *engine) scoreParallel(sc scorer) {
	// Rasterize any missing lines up front; the cache map must not be
	// written from multiple goroutines.
	for t := 0; t < e.p.NumNails; t++ {
		if e.permitted(t) {
			e.cache.Line(e.current, t)
		}
	}

	workers := e.p.Workers
	if workers > e.p.NumNails {
		workers = e.p.NumNails
	}

	var wg sync.WaitGroup
	chunk := (e.p.NumNails + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > e.p.NumNails {
			hi = e.p.NumNails
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for t := lo; t < hi; t++ {
				e.scores[t] = e.scoreCandidate(sc, t)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// commit makes the chosen chord permanent: record it, deposit its thread on
// the canvas, remember the pair, and move the walk to the far nail.
func (e *engine) commit(best int) {
	pts := e.cache.Line(e.current, best)
	e.path = append(e.path, Connection{StartIndex: e.current, EndIndex: best})
	e.cv.AddLine(pts, e.p.Opacity)
	e.recent.add(raster.PairOf(e.current, best), e.rng)
	e.current = best
	e.sinceJump = 0
	e.sinceCommit = 0
}

// jump is the stuck escape: move to a uniformly random nail and forget all
// recent connections. This is a restart, not a termination; the cumulative
// counter toward the terminate bound keeps running.
func (e *engine) jump() {
	e.current = e.rng.Intn(e.p.NumNails)
	e.recent.clear()
	e.sinceJump = 0
	e.restarts++
}
