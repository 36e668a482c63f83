package synth

import (
	"math/rand"

	"stringart/internal/raster"
)

// recentSet is the bounded set of chords used within the last few commits,
// kept to discourage immediate back-and-forth over the same pair. Eviction
// is unordered: when the set exceeds its bound an arbitrary member is
// removed, chosen by the run's RNG so that runs stay reproducible per seed.
type recentSet struct {
	limit int
	keys  map[raster.Pair]struct{}
	order []raster.Pair
}

func newRecentSet(limit int) *recentSet {
	return &recentSet{
		limit: limit,
		keys:  make(map[raster.Pair]struct{}, limit+1),
	}
}

func (r *recentSet) contains(p raster.Pair) bool {
	_, ok := r.keys[p]
	return ok
}

func (r *recentSet) add(p raster.Pair, rng *rand.Rand) {
	if r.limit <= 0 {
		return
	}
	if _, ok := r.keys[p]; ok {
		return
	}
	r.keys[p] = struct{}{}
	r.order = append(r.order, p)

	if len(r.keys) > r.limit {
		i := rng.Intn(len(r.order))
		evicted := r.order[i]
		r.order[i] = r.order[len(r.order)-1]
		r.order = r.order[:len(r.order)-1]
		delete(r.keys, evicted)
	}
}

func (r *recentSet) clear() {
	r.keys = make(map[raster.Pair]struct{}, r.limit+1)
	r.order = r.order[:0]
}

func (r *recentSet) size() int {
	return len(r.keys)
}
