// Package terminal implements the render interfaces on a text terminal
// with tcell. Each character cell shows two pixels stacked vertically,
// using an upper half block with the top pixel as foreground and the
// bottom pixel as background.
package terminal

import (
	"errors"
	"fmt"
	"image"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"chosenoffset.com/wallcaster/internal/render"
)

const (
	defaultTickRate = 16 * time.Millisecond // ~60 FPS

	// Terminals report key presses and auto-repeats, never releases. A key
	// counts as held for this long after its last event.
	defaultHoldWindow = 150 * time.Millisecond

	halfBlock = '▀'
)

// Backend is a terminal Engine and InputManager
type Backend struct {
	screen     tcell.Screen
	tickRate   time.Duration
	holdWindow time.Duration
	now        func() time.Time

	lastSeen    map[render.Key]time.Time
	justPressed map[render.Key]bool

	frame *canvas     // logical frame, drawn by the game
	cells *image.RGBA // frame scaled to cols x rows*2
}

// NewBackend creates a backend that opens the controlling terminal when
// the game starts.
func NewBackend() *Backend {
	return NewBackendWithScreen(nil)
}

// NewBackendWithScreen creates a backend drawing to screen. A nil screen
// is created from the environment in RunGame.
func NewBackendWithScreen(screen tcell.Screen) *Backend {
	return &Backend{
		screen:      screen,
		tickRate:    defaultTickRate,
		holdWindow:  defaultHoldWindow,
		now:         time.Now,
		lastSeen:    make(map[render.Key]time.Time),
		justPressed: make(map[render.Key]bool),
	}
}

// SetWindowSize is a no-op; the terminal decides its own size.
func (b *Backend) SetWindowSize(width, height int) {}

// SetWindowTitle is a no-op on terminals.
func (b *Backend) SetWindowTitle(title string) {}

// SetWindowResizable is a no-op; terminals are always resizable.
func (b *Backend) SetWindowResizable(resizable bool) {}

// IsKeyPressed reports whether key had an event within the hold window
func (b *Backend) IsKeyPressed(key render.Key) bool {
	t, ok := b.lastSeen[key]
	return ok && b.now().Sub(t) <= b.holdWindow
}

// IsKeyJustPressed reports whether key had an event since the last tick
func (b *Backend) IsKeyJustPressed(key render.Key) bool {
	return b.justPressed[key]
}

// RunGame runs the loop until the game returns render.ErrTermination or
// another error. Events are read on a separate goroutine and applied on
// the loop goroutine between ticks.
func (b *Backend) RunGame(game render.Game) error {
	if b.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		b.screen = screen
	}
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer b.screen.Fini()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := b.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(b.tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			b.handleEvent(ev)
		case <-ticker.C:
			if err := b.tick(game); err != nil {
				if errors.Is(err, render.ErrTermination) {
					return nil
				}
				return err
			}
		}
	}
}

// tick runs one Update and, unless it failed, one Draw
func (b *Backend) tick(game render.Game) error {
	err := game.Update()
	clear(b.justPressed)
	if err != nil {
		return err
	}

	cols, rows := b.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	width, height := game.Layout(cols, rows*2)
	if b.frame == nil || b.frame.Bounds().Dx() != width || b.frame.Bounds().Dy() != height {
		b.frame = &canvas{image.NewRGBA(image.Rect(0, 0, width, height))}
	}

	game.Draw(b.frame)
	b.present(cols, rows)
	return nil
}

// present scales the frame to the cell grid and shows it
func (b *Backend) present(cols, rows int) {
	target := image.Rect(0, 0, cols, rows*2)
	if b.cells == nil || b.cells.Bounds() != target {
		b.cells = image.NewRGBA(target)
	}
	xdraw.NearestNeighbor.Scale(b.cells, target, b.frame.RGBA, b.frame.Bounds(), xdraw.Src, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			upper := b.cells.RGBAAt(x, 2*y)
			lower := b.cells.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			b.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}

	b.screen.Show()
}

func (b *Backend) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, ok := keyFromEvent(ev)
		if !ok {
			return
		}
		b.lastSeen[key] = b.now()
		b.justPressed[key] = true
	case *tcell.EventResize:
		b.screen.Sync()
	}
}

var runeKeys = map[rune]render.Key{
	'w': render.KeyW,
	'a': render.KeyA,
	's': render.KeyS,
	'd': render.KeyD,
	'f': render.KeyF,
	'r': render.KeyR,
	't': render.KeyT,
	'v': render.KeyV,
	'm': render.KeyM,
	'q': render.KeyQ,
}

// keyFromEvent converts a tcell key event to a render.Key
func keyFromEvent(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return render.KeyEscape, true
	case tcell.KeyRune:
		key, ok := runeKeys[unicode.ToLower(ev.Rune())]
		return key, ok
	}
	return 0, false
}

// canvas is the render.Image the game draws into
type canvas struct {
	*image.RGBA
}

// WritePixels copies pix over the canvas
func (c *canvas) WritePixels(pix []byte) {
	copy(c.Pix, pix)
}
