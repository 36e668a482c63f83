package raster

import (
	"image"

	"stringart/pkg/geometry"
)

// Pair is an unordered nail pair normalized so A < B.
type Pair struct {
	A, B int
}

// PairOf normalizes two nail indices into a cache key.
func PairOf(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Cache memoizes rasterized lines between nails. Entries are populated
// lazily and never evicted; the total is bounded by C(n,2) possible pairs.
// Only in-bounds points are stored, so callers never re-check bounds.
type Cache struct {
	nails      []geometry.PointInt
	canvasSize int
	lines      map[Pair][]image.Point
}

// NewCache creates a line cache over the given nail positions. Points
// outside [0, canvasSize) on either axis are discarded at rasterization
// time.
func NewCache(nails []geometry.PointInt, canvasSize int) *Cache {
	return &Cache{
		nails:      nails,
		canvasSize: canvasSize,
		lines:      make(map[Pair][]image.Point),
	}
}

// Line returns the pixel run connecting two distinct nails. Both traversal
// orders hit the same entry, and repeated calls return the identical cached
// slice. The point set is symmetric under endpoint swap; ordering follows
// the normalized (low, high) direction.
func (c *Cache) Line(a, b int) []image.Point {
	key := PairOf(a, b)
	if pts, ok := c.lines[key]; ok {
		return pts
	}

	p1 := c.nails[key.A]
	p2 := c.nails[key.B]
	pts := Bresenham(p1.X, p1.Y, p2.X, p2.Y)

	// Stored points are always valid canvas indices.
	valid := pts[:0]
	for _, p := range pts {
		if p.X < 0 || p.X >= c.canvasSize || p.Y < 0 || p.Y >= c.canvasSize {
			continue
		}
		valid = append(valid, p)
	}

	c.lines[key] = valid
	return valid
}

// Len reports how many lines have been rasterized so far.
func (c *Cache) Len() int {
	return len(c.lines)
}
