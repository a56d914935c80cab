package geom

// Rect is an axis-aligned clip boundary. Top is the smaller Y.
type Rect struct {
	Left, Right, Top, Bottom float64
}

// ScreenRect returns the rectangle covering every addressable pixel of a
// width x height buffer.
func ScreenRect(width, height int) Rect {
	return Rect{
		Left:   0,
		Right:  float64(width - 1),
		Top:    0,
		Bottom: float64(height - 1),
	}
}

// Contains reports whether p lies inside r or on its boundary
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}
