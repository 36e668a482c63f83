package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stringart/internal/nails"
	"stringart/internal/render"
	"stringart/internal/synth"
)

func TestPathEmptyIsWhite(t *testing.T) {
	ns, err := nails.Generate(8, 64)
	require.NoError(t, err)

	img := render.Path(ns, nil, 64, 50)
	for i, v := range img.Pix {
		require.EqualValues(t, 255, v, "pixel %d not white", i)
	}
}

func TestPathDrawsChord(t *testing.T) {
	ns, err := nails.Generate(8, 64)
	require.NoError(t, err)

	// Nails 0 and 4 face each other across the center.
	path := []synth.Connection{{StartIndex: 0, EndIndex: 4}}
	img := render.Path(ns, path, 64, 50)

	assert.EqualValues(t, 205, img.GrayAt(32, 32).Y, "chord pixel darkened by one pass")
	assert.EqualValues(t, 255, img.GrayAt(32, 10).Y, "off-chord pixel untouched")
}

func TestPathAccumulates(t *testing.T) {
	ns, err := nails.Generate(8, 64)
	require.NoError(t, err)

	// The same chord six times saturates to black.
	path := make([]synth.Connection, 6)
	for i := range path {
		path[i] = synth.Connection{StartIndex: 0, EndIndex: 4}
	}
	img := render.Path(ns, path, 64, 50)
	assert.EqualValues(t, 0, img.GrayAt(32, 32).Y)
}

func TestOverlayMarksNails(t *testing.T) {
	ns, err := nails.Generate(8, 64)
	require.NoError(t, err)

	img := render.Overlay(ns, nil, 64, 50)
	for _, n := range ns {
		c := img.RGBAAt(n.X, n.Y)
		assert.Greater(t, c.R, c.B, "nail %d marker not drawn", n.Index)
	}
}

func TestUpscale(t *testing.T) {
	ns, err := nails.Generate(8, 64)
	require.NoError(t, err)

	img := render.Upscale(render.Path(ns, nil, 64, 50), 256)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}
