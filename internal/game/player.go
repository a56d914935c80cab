package game

import (
	"chosenoffset.com/wallcaster/internal/core/geom"
	"chosenoffset.com/wallcaster/internal/core/projection"
)

// Player is the viewer's pose. LookDir stays unit length.
type Player struct {
	Position geom.Vector2
	LookDir  geom.Vector2
}

// NewPlayer places a player at position facing look, which is normalised
func NewPlayer(position, look geom.Vector2) Player {
	return Player{Position: position, LookDir: look.Normalize()}
}

// Move steps the player distance units along its heading. Negative
// distances step backwards.
func (p *Player) Move(distance float64) {
	p.Position = p.Position.Add(p.LookDir.Scale(distance))
}

// Turn rotates the heading by angle radians; positive turns right on
// screen.
func (p *Player) Turn(angle float64) {
	p.LookDir = p.LookDir.Rotate(angle, geom.Vector2{}).Normalize()
}

// Camera returns the pose as seen by the projection pipeline
func (p Player) Camera() projection.Camera {
	return projection.Camera{Position: p.Position, LookDir: p.LookDir}
}
