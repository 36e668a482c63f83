// Package preprocess turns uploaded photographs into the fixed-size square
// darkness matrix the synthesizer consumes. Dark image regions map to high
// darkness values.
package preprocess

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// TargetSize is the side length of the darkness matrix. The synthesizer
// index-scales it onto whatever canvas size it runs with.
const TargetSize = 150

// contrastFactor stretches tones around the mean before synthesis; flat
// portraits otherwise produce chords everywhere and detail nowhere.
const contrastFactor = 1.3

// ErrEmptyImage indicates a source image with no pixels.
var ErrEmptyImage = errors.New("preprocess: image has no pixels")

// FromImage converts a decoded image into a TargetSize×TargetSize darkness
// matrix: aspect-preserving downscale centered on a white square, grayscale,
// inversion (dark pixels become high values), then a mean-anchored contrast
// stretch.
func FromImage(img image.Image) (*mat.Dense, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}

	nw, nh := fitInto(w, h, TargetSize)

	square := image.NewGray(image.Rect(0, 0, TargetSize, TargetSize))
	draw.Draw(square, square.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	offX := (TargetSize - nw) / 2
	offY := (TargetSize - nh) / 2
	dstRect := image.Rect(offX, offY, offX+nw, offY+nh)
	draw.CatmullRom.Scale(square, dstRect, img, b, draw.Src, nil)

	// Invert: darkness is how dark the pixel should end up.
	values := make([]float64, TargetSize*TargetSize)
	for y := 0; y < TargetSize; y++ {
		for x := 0; x < TargetSize; x++ {
			values[y*TargetSize+x] = 255 - float64(square.GrayAt(x, y).Y)
		}
	}

	stretchContrast(values, contrastFactor)
	return mat.NewDense(TargetSize, TargetSize, values), nil
}

// fitInto scales (w, h) to fit a size×size box, preserving aspect ratio and
// keeping both dimensions at least 1.
func fitInto(w, h, size int) (int, int) {
	nw, nh := size, size
	if w > h {
		nh = h * size / w
	} else if h > w {
		nw = w * size / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}

// stretchContrast scales each value's distance from the mean by factor,
// clamped to [0, 255].
func stretchContrast(values []float64, factor float64) {
	mean := stat.Mean(values, nil)
	for i, v := range values {
		s := (v-mean)*factor + mean
		if s < 0 {
			s = 0
		} else if s > 255 {
			s = 255
		}
		values[i] = s
	}
}
