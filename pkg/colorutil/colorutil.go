// Package colorutil provides shared color constants for overlays and previews.
package colorutil

import "image/color"

// Common overlay colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red     = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Thread returns a gray level for accumulated thread darkness, where
// darkness 0 maps to white and darkness 255 (or more) maps to black.
func Thread(darkness float64) color.Gray {
	if darkness <= 0 {
		return color.Gray{Y: 255}
	}
	if darkness >= 255 {
		return color.Gray{Y: 0}
	}
	return color.Gray{Y: uint8(255 - darkness)}
}
