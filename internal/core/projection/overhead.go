package projection

import (
	"chosenoffset.com/wallcaster/internal/core/geom"
	"chosenoffset.com/wallcaster/internal/core/raster"
)

// DrawOverhead renders the camera-space map flat, looking down: walls are
// rotated with the camera and culled at the viewer's line but not
// projected.
func (v View) DrawOverhead(buf *raster.Buffer, walls []geom.LineSegment, cam Camera, c raster.Color) {
	for _, wall := range Cull(v.CameraSpace(walls, cam), v.Center().Y) {
		buf.DrawLine(wall.Start, wall.End, c)
	}
}
