package projection

import "chosenoffset.com/wallcaster/internal/core/geom"

// Cull drops camera-space segments lying entirely below centerY (behind
// the viewer) and truncates segments that cross it, moving the far
// endpoint onto the line y = centerY. Order is preserved.
func Cull(lines []geom.LineSegment, centerY float64) []geom.LineSegment {
	out := make([]geom.LineSegment, 0, len(lines))

	for _, line := range lines {
		startBehind := line.Start.Y > centerY
		endBehind := line.End.Y > centerY

		switch {
		case startBehind && endBehind:
			continue
		case startBehind:
			line.Start = crossing(line, centerY)
		case endBehind:
			line.End = crossing(line, centerY)
		}
		out = append(out, line)
	}

	return out
}

// crossing returns the point of line at height y. The line must cross y,
// so it is never horizontal.
func crossing(line geom.LineSegment, y float64) geom.Vector2 {
	x1, y1 := line.Start.X, line.Start.Y
	x2, y2 := line.End.X, line.End.Y

	if x1 == x2 {
		return geom.Vec(x1, y)
	}

	k := (y1 - y2) / (x1 - x2)
	m := y1 - k*x1
	return geom.Vec((y-m)/k, y)
}
