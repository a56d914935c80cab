// Package projection turns world-space walls into screen-space drawing:
// the camera transform, the near-plane cull, the perspective projection of
// wall strips, the flat overhead view and the minimap.
package projection

import (
	"chosenoffset.com/wallcaster/internal/core/geom"
)

// DepthEpsilon is added to every depth before the perspective divide, so a
// wall point lying exactly on the near plane projects to a large but
// finite coordinate instead of dividing by zero.
const DepthEpsilon = 0.001

// Camera is the viewer pose. LookDir must be unit length.
type Camera struct {
	Position geom.Vector2
	LookDir  geom.Vector2
}

// View describes the main viewport and its lens
type View struct {
	Width, Height int

	// FocalLength scales the divided lateral coordinate into pixels
	FocalLength float64

	// FocalHeight controls the apparent wall height: the top of a wall at
	// depth d sits FocalHeight/d pixels above the midline.
	FocalHeight float64
}

// Center returns the screen midpoint, which is also where the camera sits
// in camera space.
func (v View) Center() geom.Vector2 {
	return geom.Vec(float64(v.Width)/2, float64(v.Height)/2)
}

// Rect returns the clip rectangle covering the viewport's pixels
func (v View) Rect() geom.Rect {
	return geom.ScreenRect(v.Width, v.Height)
}

// CameraSpace rotates the walls about the camera so that its look
// direction becomes world up, then translates them so the camera sits on
// the screen centre. The input slice is not modified.
func (v View) CameraSpace(walls []geom.LineSegment, cam Camera) []geom.LineSegment {
	rotation := geom.RotationBetween(geom.Up, cam.LookDir)
	offset := v.Center().Sub(cam.Position)

	out := make([]geom.LineSegment, len(walls))
	for i, wall := range walls {
		out[i] = wall.Rotate(-rotation, cam.Position).Translate(offset)
	}
	return out
}
