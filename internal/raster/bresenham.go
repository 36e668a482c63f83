// Package raster converts nail pairs into the pixel runs their thread occupies.
package raster

import "image"

// Bresenham returns the 8-connected digital line from (x1,y1) to (x2,y2),
// both endpoints included, stepping one axis unit at a time by accumulated
// error. Every point appears exactly once and consecutive points differ by
// at most one unit on each axis.
func Bresenham(x1, y1, x2, y2 int) []image.Point {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	points := make([]image.Point, 0, max(dx, dy)+1)
	for {
		points = append(points, image.Point{X: x1, Y: y1})
		if x1 == x2 && y1 == y2 {
			return points
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
