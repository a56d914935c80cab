// Package level builds the static maps the renderer draws. A map is an
// ordered list of wall segments plus nominal bounds; it is constructed
// once at startup and never edited afterwards.
package level

import (
	"fmt"
	"sort"

	"chosenoffset.com/wallcaster/internal/core/geom"
)

// Map is a read-only set of walls
type Map struct {
	Name   string
	Walls  []geom.LineSegment
	Width  float64 // nominal bounds, used to size the minimap
	Height float64
}

// Prototype is the single-wall test map
func Prototype() Map {
	return Map{
		Name:   "prototype",
		Width:  100,
		Height: 100,
		Walls: []geom.LineSegment{
			geom.Seg(40, 20, 80, 20),
		},
	}
}

// courtyard is a walled yard with a few pillars and an inner wall
var courtyard = []string{
	"##########",
	"#........#",
	"#.##..#..#",
	"#.#......#",
	"#....##..#",
	"#........#",
	"#..#.....#",
	"#..#..##.#",
	"#........#",
	"##########",
}

var builtins = map[string]func() Map{
	"prototype": Prototype,
	"courtyard": func() Map {
		m := FromGrid(courtyard, 10)
		m.Name = "courtyard"
		return m
	},
}

// Builtin returns the named built-in map
func Builtin(name string) (Map, error) {
	build, ok := builtins[name]
	if !ok {
		return Map{}, fmt.Errorf("unknown level %q (available: %v)", name, Names())
	}
	return build(), nil
}

// Names lists the built-in maps in sorted order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
