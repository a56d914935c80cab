package terminal

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/wallcaster/internal/render"
)

// stripeGame draws a frame whose top half is red and bottom half blue
type stripeGame struct {
	width, height int
	updates       int
	quitAfter     int
	sawJust       bool
	backend       *Backend
}

func (g *stripeGame) Update() error {
	g.updates++
	if g.backend != nil && g.backend.IsKeyJustPressed(render.KeyV) {
		g.sawJust = true
	}
	if g.quitAfter > 0 && g.updates >= g.quitAfter {
		return render.ErrTermination
	}
	return nil
}

func (g *stripeGame) Draw(screen render.Image) {
	b := screen.Bounds()
	pix := make([]byte, 0, 4*b.Dx()*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if y < b.Dy()/2 {
				pix = append(pix, 255, 0, 0, 255)
			} else {
				pix = append(pix, 0, 0, 255, 255)
			}
		}
	}
	screen.WritePixels(pix)
}

func (g *stripeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func newSimBackend(t *testing.T, cols, rows int) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return NewBackendWithScreen(screen), screen
}

func TestTickPresentsHalfBlocks(t *testing.T) {
	b, screen := newSimBackend(t, 8, 4)
	game := &stripeGame{width: 24, height: 16}

	if err := b.tick(game); err != nil {
		t.Fatalf("tick: %v", err)
	}

	red := tcell.NewRGBColor(255, 0, 0)
	blue := tcell.NewRGBColor(0, 0, 255)

	for _, tc := range []struct {
		row    int
		fg, bg tcell.Color
	}{
		{0, red, red},
		{1, red, red},
		{2, blue, blue},
		{3, blue, blue},
	} {
		mainc, _, style, _ := screen.GetContent(3, tc.row)
		if mainc != halfBlock {
			t.Errorf("row %d: expected half block, got %q", tc.row, mainc)
		}
		fg, bg, _ := style.Decompose()
		if fg != tc.fg || bg != tc.bg {
			t.Errorf("row %d: expected fg %v bg %v, got fg %v bg %v", tc.row, tc.fg, tc.bg, fg, bg)
		}
	}

	if b.frame.Bounds() != image.Rect(0, 0, 24, 16) {
		t.Errorf("Expected a 24x16 frame, got %v", b.frame.Bounds())
	}
	if got := b.frame.RGBAAt(0, 15); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Expected the frame to hold the game's pixels, got %v", got)
	}
}

func TestTickStopsOnTermination(t *testing.T) {
	b, _ := newSimBackend(t, 8, 4)
	game := &stripeGame{width: 8, height: 8, quitAfter: 1}

	if err := b.tick(game); !errors.Is(err, render.ErrTermination) {
		t.Fatalf("Expected ErrTermination, got %v", err)
	}
	if b.frame != nil {
		t.Error("Expected no frame to be drawn after termination")
	}
}

func TestKeyHoldWindow(t *testing.T) {
	b, _ := newSimBackend(t, 8, 4)
	now := time.Unix(100, 0)
	b.now = func() time.Time { return now }

	b.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone))
	b.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))

	if !b.IsKeyPressed(render.KeyW) || !b.IsKeyPressed(render.KeyLeft) {
		t.Fatal("Expected keys to be held right after their events")
	}
	if !b.IsKeyJustPressed(render.KeyW) {
		t.Error("Expected W to be just pressed")
	}
	if b.IsKeyPressed(render.KeyS) {
		t.Error("Expected S not to be pressed")
	}

	now = now.Add(b.holdWindow + time.Millisecond)
	if b.IsKeyPressed(render.KeyW) {
		t.Error("Expected W to be released after the hold window")
	}
}

func TestJustPressedClearedAfterTick(t *testing.T) {
	b, _ := newSimBackend(t, 8, 4)
	game := &stripeGame{width: 8, height: 8, backend: b}

	b.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModNone))
	if err := b.tick(game); err != nil {
		t.Fatal(err)
	}
	if !game.sawJust {
		t.Error("Expected the game to see the just pressed key during Update")
	}
	if b.IsKeyJustPressed(render.KeyV) {
		t.Error("Expected just pressed state to be cleared after the tick")
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want render.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), render.KeyUp, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), render.KeyEscape, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), render.KeyEscape, true},
		{tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), render.KeyT, true},
		{tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModShift), render.KeyM, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		got, ok := keyFromEvent(tt.ev)
		if ok != tt.ok || got != tt.want {
			t.Errorf("keyFromEvent(%v) = %v, %v; want %v, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestRunGameExitsOnTermination(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(8, 4)
	b := NewBackendWithScreen(screen)
	b.tickRate = time.Millisecond

	game := &stripeGame{width: 8, height: 8, quitAfter: 3}

	errc := make(chan error, 1)
	go func() { errc <- b.RunGame(game) }()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Expected clean exit, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("RunGame did not return")
	}
	if game.updates != 3 {
		t.Errorf("Expected 3 updates, got %d", game.updates)
	}
}
