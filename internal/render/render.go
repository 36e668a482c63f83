// Package render draws a committed thread path back into a raster image for
// previews and offline inspection.
package render

import (
	"image"

	"golang.org/x/image/draw"

	"stringart/internal/nails"
	"stringart/internal/raster"
	"stringart/internal/synth"
	"stringart/pkg/colorutil"
)

// Path renders the thread path onto a white size×size canvas. Each chord
// deposits opacity units of darkness per pixel, accumulating exactly like
// the synthesizer's canvas, so the preview matches what the search scored.
func Path(ns []nails.Nail, path []synth.Connection, size int, opacity float64) *image.Gray {
	acc := accumulate(ns, path, size, opacity)

	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetGray(x, y, colorutil.Thread(acc[y*size+x]))
		}
	}
	return img
}

// Overlay renders the thread path with the nail positions marked, for
// checking the physical layout against the pattern.
func Overlay(ns []nails.Nail, path []synth.Connection, size int, opacity float64) *image.RGBA {
	gray := Path(ns, path, size, opacity)

	img := image.NewRGBA(gray.Bounds())
	draw.Draw(img, img.Bounds(), gray, image.Point{}, draw.Src)

	for _, n := range ns {
		dot(img, n.X, n.Y)
	}
	return img
}

// Upscale resizes a preview to the given side length with bilinear
// filtering.
func Upscale(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func accumulate(ns []nails.Nail, path []synth.Connection, size int, opacity float64) []float64 {
	cache := raster.NewCache(nails.Positions(ns), size)
	acc := make([]float64, size*size)
	for _, c := range path {
		for _, p := range cache.Line(c.StartIndex, c.EndIndex) {
			acc[p.Y*size+p.X] += opacity
		}
	}
	return acc
}

// dot paints a 3×3 nail marker.
func dot(img *image.RGBA, cx, cy int) {
	b := img.Bounds()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := cx+dx, cy+dy
			if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
				img.SetRGBA(x, y, colorutil.Red)
			}
		}
	}
}
