// Package geom holds the 2D value types shared by the renderer: vectors,
// line segments and clip rectangles. Every operation returns a new value.
package geom

import "math"

// Vector2 represents a point or direction in 2D space
type Vector2 struct {
	X, Y float64
}

// Up is world "up". Screen and world Y both grow downward.
var Up = Vector2{X: 0, Y: -1}

// Vec is shorthand for Vector2{x, y}
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Scale multiplies both components by s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Mul multiplies component-wise
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vector2) Normalize() Vector2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Rotate rotates v by angle radians about origin. With Y pointing down a
// positive angle turns clockwise on screen.
func (v Vector2) Rotate(angle float64, origin Vector2) Vector2 {
	return rotate(v.Sub(origin), angle).Add(origin)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Vector2) float64 {
	return b.Sub(a).Len()
}

// RotationBetween returns the signed angle that takes direction a onto
// direction b. Neither vector may be zero.
func RotationBetween(a, b Vector2) float64 {
	return math.Atan2(b.Y, b.X) - math.Atan2(a.Y, a.X)
}

func rotate(v Vector2, angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
	}
}
