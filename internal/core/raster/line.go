package raster

import (
	"image"
	"iter"

	"chosenoffset.com/wallcaster/internal/core/geom"
)

// Line yields the integer pixels from start to end, both inclusive, using
// Bresenham's integer error accumulator. Coordinates are truncated toward
// zero first. The sequence is not bounds-filtered.
func Line(start, end geom.Vector2) iter.Seq[image.Point] {
	x0, y0 := int(start.X), int(start.Y)
	x1, y1 := int(end.X), int(end.Y)

	return func(yield func(image.Point) bool) {
		dx := abs(x1 - x0)
		dy := -abs(y1 - y0)
		sx := sign(x1 - x0)
		sy := sign(y1 - y0)
		e := dx + dy

		x, y := x0, y0
		for {
			if !yield(image.Point{X: x, Y: y}) {
				return
			}
			if x == x1 && y == y1 {
				return
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x += sx
			}
			if e2 <= dx {
				e += dx
				y += sy
			}
		}
	}
}

// Line is the bounds-filtered pixel sequence of a segment in b
func (b *Buffer) Line(start, end geom.Vector2) iter.Seq[image.Point] {
	return b.lineWithin(b.Bounds(), start, end)
}

// DrawLine plots the segment in c, skipping pixels outside the buffer
func (b *Buffer) DrawLine(start, end geom.Vector2, c Color) {
	for p := range b.Line(start, end) {
		b.Pix[p.Y*b.Width+p.X] = c
	}
}

// DrawLineWithin is DrawLine restricted to r, which is itself intersected
// with the buffer bounds.
func (b *Buffer) DrawLineWithin(r image.Rectangle, start, end geom.Vector2, c Color) {
	for p := range b.lineWithin(r.Intersect(b.Bounds()), start, end) {
		b.Pix[p.Y*b.Width+p.X] = c
	}
}

func (b *Buffer) lineWithin(r image.Rectangle, start, end geom.Vector2) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for p := range Line(start, end) {
			if !p.In(r) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
