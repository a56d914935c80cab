package geom

// LineSegment represents a wall or a rasterized edge
type LineSegment struct {
	Start, End Vector2
}

// Seg is shorthand for a segment between (x1, y1) and (x2, y2)
func Seg(x1, y1, x2, y2 float64) LineSegment {
	return LineSegment{Start: Vec(x1, y1), End: Vec(x2, y2)}
}

// Translate shifts both endpoints by offset
func (s LineSegment) Translate(offset Vector2) LineSegment {
	return LineSegment{Start: s.Start.Add(offset), End: s.End.Add(offset)}
}

// Rotate rotates both endpoints by angle radians about origin
func (s LineSegment) Rotate(angle float64, origin Vector2) LineSegment {
	return LineSegment{
		Start: s.Start.Rotate(angle, origin),
		End:   s.End.Rotate(angle, origin),
	}
}

// Scale scales both endpoints about the world origin
func (s LineSegment) Scale(factor float64) LineSegment {
	return LineSegment{Start: s.Start.Scale(factor), End: s.End.Scale(factor)}
}

// Len returns the length of the segment
func (s LineSegment) Len() float64 {
	return Distance(s.Start, s.End)
}
