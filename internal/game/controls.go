package game

import (
	"time"

	"chosenoffset.com/wallcaster/internal/render"
)

// Action is a logical input the frame loop reacts to
type Action int

const (
	ActionForward Action = iota
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	ActionExit
	ActionToggleView
	ActionToggleMinimap
)

// Controls is the input capability the frame loop depends on
type Controls interface {
	// Active reports whether the action is held
	Active(a Action) bool

	// Triggered reports whether the action started this tick
	Triggered(a Action) bool

	// Elapsed returns the seconds since the previous call
	Elapsed() float64
}

// maxElapsed caps a single tick so a stalled frame does not teleport the
// player.
const maxElapsed = 0.25

// DefaultBindings maps each action to the keys that trigger it
var DefaultBindings = map[Action][]render.Key{
	ActionForward:       {render.KeyW, render.KeyUp, render.KeyF},
	ActionBackward:      {render.KeyS, render.KeyDown},
	ActionTurnLeft:      {render.KeyA, render.KeyLeft, render.KeyR},
	ActionTurnRight:     {render.KeyD, render.KeyRight, render.KeyT},
	ActionExit:          {render.KeyEscape, render.KeyQ},
	ActionToggleView:    {render.KeyV},
	ActionToggleMinimap: {render.KeyM},
}

// KeyControls implements Controls on top of a render.InputManager and the
// wall clock.
type KeyControls struct {
	input    render.InputManager
	bindings map[Action][]render.Key
	now      func() time.Time
	last     time.Time
}

// NewKeyControls creates controls using DefaultBindings
func NewKeyControls(input render.InputManager) *KeyControls {
	return &KeyControls{
		input:    input,
		bindings: DefaultBindings,
		now:      time.Now,
	}
}

// Active implements Controls
func (c *KeyControls) Active(a Action) bool {
	for _, key := range c.bindings[a] {
		if c.input.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Triggered implements Controls
func (c *KeyControls) Triggered(a Action) bool {
	for _, key := range c.bindings[a] {
		if c.input.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// Elapsed implements Controls. The first call returns 0.
func (c *KeyControls) Elapsed() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return min(max(dt, 0), maxElapsed)
}
