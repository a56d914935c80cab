package projection

import (
	"image"
	"iter"
	"math"

	"chosenoffset.com/wallcaster/internal/core/clip"
	"chosenoffset.com/wallcaster/internal/core/geom"
	"chosenoffset.com/wallcaster/internal/core/raster"
)

// Project maps a culled camera-space wall to the top edge of its screen
// strip. The bottom edge is the top edge mirrored about the midline.
func (v View) Project(wall geom.LineSegment) geom.LineSegment {
	return geom.LineSegment{
		Start: v.projectPoint(wall.Start),
		End:   v.projectPoint(wall.End),
	}
}

func (v View) projectPoint(p geom.Vector2) geom.Vector2 {
	center := v.Center()

	// camera forward is -Y, so depth grows as Y shrinks
	rel := p.Sub(center)
	lateral := rel.X
	depth := -rel.Y + DepthEpsilon

	return geom.Vector2{
		X: center.X + v.FocalLength*lateral/depth,
		Y: center.Y - v.FocalHeight/depth,
	}
}

// DrawPerspective renders the first-person view of walls as seen by cam.
// Walls behind the camera or entirely off screen draw nothing.
func (v View) DrawPerspective(buf *raster.Buffer, walls []geom.LineSegment, cam Camera, c raster.Color) {
	for _, wall := range Cull(v.CameraSpace(walls, cam), v.Center().Y) {
		v.drawStrip(buf, v.Project(wall), c)
	}
}

// drawStrip fills the columns between a projected top edge and its mirror.
// The part of the top edge inside the screen is drawn as is; the part of a
// close wall that overshoots the first row is pinned to row 0.
func (v View) drawStrip(buf *raster.Buffer, top geom.LineSegment, c raster.Color) {
	if seg, ok := clip.Segment(top, v.Rect()); ok {
		v.fillBetween(buf, seg, c)
	}

	above := geom.Rect{
		Left:   0,
		Right:  float64(v.Width - 1),
		Top:    math.Inf(-1),
		Bottom: 0,
	}
	if seg, ok := clip.Segment(top, above); ok {
		seg.Start.Y, seg.End.Y = 0, 0
		v.fillBetween(buf, seg, c)
	}
}

// fillBetween walks the top edge and its mirrored bottom edge in lock-step
// and fills the vertical span between each pair of pixels.
func (v View) fillBetween(buf *raster.Buffer, top geom.LineSegment, c raster.Color) {
	bottom := v.mirror(top)

	next, stop := iter.Pull(raster.Line(bottom.Start, bottom.End))
	defer stop()

	for p := range raster.Line(top.Start, top.End) {
		q, ok := next()
		if !ok {
			q = image.Point{X: p.X, Y: v.Height - p.Y}
		}
		buf.FillSpan(p.X, p.Y, q.Y, c)
	}
}

func (v View) mirror(s geom.LineSegment) geom.LineSegment {
	h := float64(v.Height)
	return geom.LineSegment{
		Start: geom.Vec(s.Start.X, h-s.Start.Y),
		End:   geom.Vec(s.End.X, h-s.End.Y),
	}
}
