// Package render abstracts the windowing, input and presentation layer so
// the frame loop does not depend on a particular backend.
package render

import (
	"errors"
	"image"
)

// ErrTermination is returned from Game.Update to end the loop cleanly.
// Engines translate it into a nil error from RunGame.
var ErrTermination = errors.New("render: termination requested")

// Image represents a presentation surface the game draws its frame to
type Image interface {
	// Bounds returns the surface size
	Bounds() image.Rectangle

	// WritePixels replaces every pixel with RGBA bytes, 4 per pixel,
	// row-major. len(pix) must be 4 * width * height.
	WritePixels(pix []byte)
}

// InputManager handles input from the user
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game binds
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyF
	KeyR
	KeyT
	KeyV // view toggle
	KeyM // minimap toggle
	KeyQ
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
)

// Game represents the game interface that the engine will call.
type Game interface {
	// Update advances the game by one tick. Returning ErrTermination ends
	// the loop.
	Update() error

	// Draw draws the current frame to screen
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size, which is the size of the Image passed to Draw.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game. It blocks until
	// the game terminates.
	RunGame(game Game) error
}
