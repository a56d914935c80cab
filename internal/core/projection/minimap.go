package projection

import (
	"image"

	"chosenoffset.com/wallcaster/internal/core/geom"
	"chosenoffset.com/wallcaster/internal/core/raster"
)

// MinimapPalette holds the colors used by the minimap overlay
type MinimapPalette struct {
	Background raster.Color
	Wall       raster.Color
	Marker     raster.Color
}

// Minimap is an orthographic, uniformly scaled top-down view of the map
// drawn over a corner of the frame.
type Minimap struct {
	// Origin is the top-left pixel of the overlay
	Origin image.Point

	// Scale converts world units to minimap pixels
	Scale float64

	// Follow keeps the camera at the overlay centre facing up. When false
	// the whole map is drawn north-up at Origin.
	Follow bool

	// Size is the overlay size in follow mode. In fixed mode the overlay
	// covers the scaled map bounds.
	Size image.Point

	// HeadingLength is the length, in pixels, of the look direction line
	HeadingLength float64
}

// Bounds returns the overlay rectangle for a map of the given size
func (m Minimap) Bounds(mapWidth, mapHeight float64) image.Rectangle {
	size := m.Size
	if !m.Follow {
		size = image.Pt(int(mapWidth*m.Scale), int(mapHeight*m.Scale))
	}
	return image.Rectangle{Min: m.Origin, Max: m.Origin.Add(size)}
}

// Draw renders the overlay. In fixed mode walls are only scaled, never
// clipped, and may spill past the background; in follow mode they are
// kept inside the overlay rectangle.
func (m Minimap) Draw(buf *raster.Buffer, walls []geom.LineSegment, mapWidth, mapHeight float64, cam Camera, p MinimapPalette) {
	r := m.Bounds(mapWidth, mapHeight).Intersect(buf.Bounds())
	buf.DrawRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), p.Background)

	if m.Follow {
		m.drawFollow(buf, r, walls, cam, p)
		return
	}

	offset := geom.Vec(float64(m.Origin.X), float64(m.Origin.Y))
	for _, wall := range walls {
		s := wall.Scale(m.Scale).Translate(offset)
		buf.DrawLine(s.Start, s.End, p.Wall)
	}

	pos := cam.Position.Scale(m.Scale).Add(offset)
	buf.DrawLine(pos, pos.Add(cam.LookDir.Scale(m.HeadingLength)), p.Wall)
	buf.Set(int(pos.X), int(pos.Y), p.Marker)
}

func (m Minimap) drawFollow(buf *raster.Buffer, r image.Rectangle, walls []geom.LineSegment, cam Camera, p MinimapPalette) {
	center := geom.Vec(float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Max.Y)/2)
	rotation := geom.RotationBetween(geom.Up, cam.LookDir)

	for _, wall := range walls {
		s := wall.Rotate(-rotation, cam.Position).
			Translate(cam.Position.Neg()).
			Scale(m.Scale).
			Translate(center)
		buf.DrawLineWithin(r, s.Start, s.End, p.Wall)
	}

	buf.DrawLineWithin(r, center, center.Add(geom.Up.Scale(m.HeadingLength)), p.Wall)
	if image.Pt(int(center.X), int(center.Y)).In(r) {
		buf.Set(int(center.X), int(center.Y), p.Marker)
	}
}
