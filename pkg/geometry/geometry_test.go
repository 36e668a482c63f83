package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stringart/pkg/geometry"
)

func TestGenerateCirclePoints(t *testing.T) {
	const (
		cx, cy = 32.0, 32.0
		radius = 12.0
		n      = 16
	)
	points := geometry.GenerateCirclePoints(cx, cy, radius, n)
	require.Len(t, points, n)

	center := geometry.NewPoint2D(cx, cy)
	for i, p := range points {
		assert.InDelta(t, radius, p.Distance(center), 1e-9, "point %d off the circle", i)
	}

	// Angle 0 is the rightmost point.
	assert.InDelta(t, cx+radius, points[0].X, 1e-9)
	assert.InDelta(t, cy, points[0].Y, 1e-9)

	// Equal angular spacing: consecutive chord lengths are all the same.
	chord := points[0].Distance(points[1])
	for i := 1; i < n; i++ {
		next := points[(i+1)%n]
		assert.InDelta(t, chord, points[i].Distance(next), 1e-9)
	}
}

func TestCircularDistance(t *testing.T) {
	cases := []struct {
		name    string
		a, b, n int
		want    int
	}{
		{"Adjacent", 0, 1, 8, 1},
		{"WrapAdjacent", 0, 7, 8, 1},
		{"Opposite", 0, 4, 8, 4},
		{"Same", 3, 3, 8, 0},
		{"Asymmetric", 0, 5, 8, 3},
		{"LargeRing", 10, 190, 200, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geometry.CircularDistance(tc.a, tc.b, tc.n))
			assert.Equal(t, tc.want, geometry.CircularDistance(tc.b, tc.a, tc.n))
		})
	}
}

func TestRound(t *testing.T) {
	p := geometry.Point2D{X: 1.5, Y: -0.4}.Round()
	assert.Equal(t, geometry.PointInt{X: 2, Y: 0}, p)
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, geometry.Point2D{}, geometry.Centroid(nil))

	points := []geometry.Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	c := geometry.Centroid(points)
	assert.InDelta(t, 1.0, c.X, 1e-9)
	assert.InDelta(t, 1.0, c.Y, 1e-9)
}

func TestCircleCentroidIsCenter(t *testing.T) {
	points := geometry.GenerateCirclePoints(50, 50, 30, 64)
	c := geometry.Centroid(points)
	assert.InDelta(t, 50, c.X, 1e-9)
	assert.InDelta(t, 50, c.Y, 1e-9)
}
