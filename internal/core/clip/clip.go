// Package clip implements Cohen–Sutherland clipping of line segments
// against an axis-aligned rectangle.
package clip

import (
	"fmt"

	"chosenoffset.com/wallcaster/internal/core/geom"
)

// OutCode marks which sides of a rectangle a point lies beyond
type OutCode uint8

const (
	Inside OutCode = 0b0000
	Left   OutCode = 0b0001
	Right  OutCode = 0b0010
	Bottom OutCode = 0b0100
	Top    OutCode = 0b1000
)

// Each endpoint needs at most two boundary moves in exact arithmetic.
// Past this, the remaining codes are rounding noise at a corner.
const maxPasses = 8

func (c OutCode) String() string {
	return fmt.Sprintf("%04b", uint8(c))
}

// Outcode classifies p against rect. Points exactly on a boundary are inside.
func Outcode(p geom.Vector2, rect geom.Rect) OutCode {
	code := Inside

	if p.X < rect.Left {
		code |= Left
	} else if p.X > rect.Right {
		code |= Right
	}

	if p.Y < rect.Top {
		code |= Top
	} else if p.Y > rect.Bottom {
		code |= Bottom
	}

	return code
}

// Line clips the segment p1-p2 against rect. ok is false when no part of
// the segment is inside; otherwise q1 and q2 lie inside or exactly on the
// boundary, and an endpoint that was already inside is returned unchanged.
func Line(p1, p2 geom.Vector2, rect geom.Rect) (q1, q2 geom.Vector2, ok bool) {
	code1 := Outcode(p1, rect)
	code2 := Outcode(p2, rect)

	for pass := 0; ; pass++ {
		if pass == maxPasses {
			return clamp(p1, rect), clamp(p2, rect), true
		}

		// both endpoints inside
		if code1|code2 == Inside {
			return p1, p2, true
		}

		// both endpoints beyond the same side
		if code1&code2 != Inside {
			return geom.Vector2{}, geom.Vector2{}, false
		}

		if code1 != Inside {
			p1 = intersect(p1, p2, rect, code1)
			code1 = Outcode(p1, rect)
		} else {
			p2 = intersect(p1, p2, rect, code2)
			code2 = Outcode(p2, rect)
		}
	}
}

// Segment is Line for a geom.LineSegment
func Segment(s geom.LineSegment, rect geom.Rect) (geom.LineSegment, bool) {
	start, end, ok := Line(s.Start, s.End, rect)
	return geom.LineSegment{Start: start, End: end}, ok
}

// intersect moves the endpoint classified by code onto the first violated
// boundary. Top is tested before bottom, bottom before right, right before
// left.
func intersect(p1, p2 geom.Vector2, rect geom.Rect, code OutCode) geom.Vector2 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	switch {
	case code&Top != 0:
		return geom.Vector2{X: p1.X + dx/dy*(rect.Top-p1.Y), Y: rect.Top}
	case code&Bottom != 0:
		return geom.Vector2{X: p1.X + dx/dy*(rect.Bottom-p1.Y), Y: rect.Bottom}
	case code&Right != 0:
		return geom.Vector2{X: rect.Right, Y: p1.Y + dy/dx*(rect.Right-p1.X)}
	case code&Left != 0:
		return geom.Vector2{X: rect.Left, Y: p1.Y + dy/dx*(rect.Left-p1.X)}
	}

	panic(fmt.Sprintf("clip: no boundary for outcode %v", code))
}

func clamp(p geom.Vector2, rect geom.Rect) geom.Vector2 {
	return geom.Vector2{
		X: min(max(p.X, rect.Left), rect.Right),
		Y: min(max(p.Y, rect.Top), rect.Bottom),
	}
}
