package level

import (
	"chosenoffset.com/wallcaster/internal/core/geom"
)

// cell is a grid coordinate
type cell struct {
	X, Y int
}

// side tells which face of a solid cell an edge belongs to
type side int

const (
	sideTop side = iota
	sideRight
	sideBottom
	sideLeft
)

// edge is one exposed face of a solid cell
type edge struct {
	seg  geom.LineSegment
	side side
}

// FromGrid builds a map from rows of text where '#' marks a solid cell of
// size cellSize. The outline of every 4-connected solid region becomes
// walls, and colinear edges that touch are merged into one wall.
func FromGrid(rows []string, cellSize float64) Map {
	width, height := 0, len(rows)
	for _, row := range rows {
		width = max(width, len(row))
	}

	solid := func(c cell) bool {
		if c.Y < 0 || c.Y >= height || c.X < 0 || c.X >= len(rows[c.Y]) {
			return false
		}
		return rows[c.Y][c.X] == '#'
	}

	var edges []edge
	for _, region := range findRegions(width, height, solid) {
		edges = append(edges, perimeter(region, cellSize)...)
	}

	merged := mergeColinear(edges)
	walls := make([]geom.LineSegment, len(merged))
	for i, e := range merged {
		walls[i] = e.seg
	}

	return Map{
		Walls:  walls,
		Width:  float64(width) * cellSize,
		Height: float64(height) * cellSize,
	}
}

// findRegions groups solid cells into 4-connected regions, scanning rows
// top to bottom so the result is deterministic.
func findRegions(width, height int, solid func(cell) bool) [][]cell {
	visited := make(map[cell]bool)
	var regions [][]cell

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := cell{X: x, Y: y}
			if visited[c] || !solid(c) {
				continue
			}
			regions = append(regions, floodFill(c, solid, visited))
		}
	}

	return regions
}

// floodFill collects the region containing start with a BFS
func floodFill(start cell, solid func(cell) bool, visited map[cell]bool) []cell {
	var region []cell
	queue := []cell{start}
	visited[start] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		region = append(region, current)

		neighbors := []cell{
			{X: current.X, Y: current.Y - 1},
			{X: current.X + 1, Y: current.Y},
			{X: current.X, Y: current.Y + 1},
			{X: current.X - 1, Y: current.Y},
		}
		for _, n := range neighbors {
			if visited[n] || !solid(n) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}

	return region
}

// perimeter returns the faces of region that border open space
func perimeter(region []cell, size float64) []edge {
	inRegion := make(map[cell]bool, len(region))
	for _, c := range region {
		inRegion[c] = true
	}

	var edges []edge
	for _, c := range region {
		left := float64(c.X) * size
		top := float64(c.Y) * size
		right := float64(c.X+1) * size
		bottom := float64(c.Y+1) * size

		if !inRegion[cell{X: c.X, Y: c.Y - 1}] {
			edges = append(edges, edge{geom.Seg(left, top, right, top), sideTop})
		}
		if !inRegion[cell{X: c.X + 1, Y: c.Y}] {
			edges = append(edges, edge{geom.Seg(right, top, right, bottom), sideRight})
		}
		if !inRegion[cell{X: c.X, Y: c.Y + 1}] {
			edges = append(edges, edge{geom.Seg(right, bottom, left, bottom), sideBottom})
		}
		if !inRegion[cell{X: c.X - 1, Y: c.Y}] {
			edges = append(edges, edge{geom.Seg(left, bottom, left, top), sideLeft})
		}
	}

	return edges
}

// mergeColinear repeatedly joins edges on the same side and line whose
// ends touch, until no more joins are possible.
func mergeColinear(edges []edge) []edge {
	merged := make([]bool, len(edges))
	var result []edge

	for i := range edges {
		if merged[i] {
			continue
		}
		current := edges[i]
		merged[i] = true

		for extended := true; extended; {
			extended = false
			for j := range edges {
				if merged[j] || !canMerge(current, edges[j]) {
					continue
				}
				current = join(current, edges[j])
				merged[j] = true
				extended = true
			}
		}

		result = append(result, current)
	}

	return result
}

// canMerge checks that two edges face the same way, lie on one line and
// share an endpoint
func canMerge(a, b edge) bool {
	if a.side != b.side {
		return false
	}
	return a.seg.End == b.seg.Start || a.seg.Start == b.seg.End
}

// join extends a by b. Edges keep their winding, so the shared endpoint is
// always End of one and Start of the other.
func join(a, b edge) edge {
	if a.seg.End == b.seg.Start {
		a.seg.End = b.seg.End
	} else {
		a.seg.Start = b.seg.Start
	}
	return a
}
