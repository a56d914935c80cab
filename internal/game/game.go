// Package game runs one frame of the renderer: it reads the controls,
// moves the player and composes the main view and the minimap into a
// pixel buffer that a render backend presents.
package game

import (
	"fmt"
	"image"
	"log"

	"chosenoffset.com/wallcaster/internal/config"
	"chosenoffset.com/wallcaster/internal/core/geom"
	"chosenoffset.com/wallcaster/internal/core/projection"
	"chosenoffset.com/wallcaster/internal/core/raster"
	"chosenoffset.com/wallcaster/internal/render"
	"chosenoffset.com/wallcaster/internal/world/level"
)

// Game holds all frame state and implements render.Game
type Game struct {
	Level    level.Map
	Player   Player
	View     projection.View
	Minimap  projection.Minimap
	Palette  config.Palette
	Controls Controls

	// Runtime modes
	ViewMode       string
	MinimapEnabled bool

	Speed    float64 // world units per second
	TurnRate float64 // radians per second

	frame  *raster.Buffer
	pixels []byte
}

// New builds a game from the configuration and map
func New(cfg *config.Config, lvl level.Map, controls Controls) (*Game, error) {
	palette, err := cfg.Palette.Parse()
	if err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}

	return &Game{
		Level: lvl,
		Player: NewPlayer(
			geom.Vec(cfg.Player.StartX, cfg.Player.StartY),
			geom.Vec(cfg.Player.LookX, cfg.Player.LookY),
		),
		View: projection.View{
			Width:       cfg.Screen.Width,
			Height:      cfg.Screen.Height,
			FocalLength: cfg.Camera.FocalLength,
			FocalHeight: cfg.Camera.FocalHeight,
		},
		Minimap: projection.Minimap{
			Origin:        image.Pt(cfg.Minimap.X, cfg.Minimap.Y),
			Scale:         cfg.Minimap.Scale,
			Follow:        cfg.Minimap.Follow,
			Size:          image.Pt(cfg.Minimap.Width, cfg.Minimap.Height),
			HeadingLength: cfg.Minimap.HeadingLength,
		},
		Palette:        palette,
		Controls:       controls,
		ViewMode:       cfg.Camera.ViewMode,
		MinimapEnabled: cfg.Minimap.Enabled,
		Speed:          cfg.Player.Speed,
		TurnRate:       cfg.Player.TurnRate,
		frame:          raster.NewBuffer(cfg.Screen.Width, cfg.Screen.Height),
	}, nil
}

// Update handles input and moves the player
func (g *Game) Update() error {
	dt := g.Controls.Elapsed()

	if g.Controls.Active(ActionExit) {
		return render.ErrTermination
	}

	if g.Controls.Triggered(ActionToggleView) {
		if g.ViewMode == config.ViewPerspective {
			g.ViewMode = config.ViewOverhead
		} else {
			g.ViewMode = config.ViewPerspective
		}
		log.Printf("View mode: %s", g.ViewMode)
	}

	if g.Controls.Triggered(ActionToggleMinimap) {
		g.MinimapEnabled = !g.MinimapEnabled
		log.Printf("Minimap enabled: %v", g.MinimapEnabled)
	}

	if g.Controls.Active(ActionForward) {
		g.Player.Move(g.Speed * dt)
	}
	if g.Controls.Active(ActionBackward) {
		g.Player.Move(-g.Speed * dt)
	}
	if g.Controls.Active(ActionTurnLeft) {
		g.Player.Turn(-g.TurnRate * dt)
	}
	if g.Controls.Active(ActionTurnRight) {
		g.Player.Turn(g.TurnRate * dt)
	}

	return nil
}

// Draw renders the frame and presents it on screen
func (g *Game) Draw(screen render.Image) {
	g.RenderFrame(g.frame)
	g.pixels = g.frame.AppendRGBA(g.pixels[:0])
	screen.WritePixels(g.pixels)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.View.Width, g.View.Height
}

// RenderFrame composes the main view and the minimap into buf, which must
// match the view size.
func (g *Game) RenderFrame(buf *raster.Buffer) {
	cam := g.Player.Camera()
	buf.Clear(g.Palette.Background)

	switch g.ViewMode {
	case config.ViewOverhead:
		g.View.DrawOverhead(buf, g.Level.Walls, cam, g.Palette.Wall)
	default:
		g.View.DrawPerspective(buf, g.Level.Walls, cam, g.Palette.Wall)
	}

	if g.MinimapEnabled {
		g.Minimap.Draw(buf, g.Level.Walls, g.Level.Width, g.Level.Height, cam, projection.MinimapPalette{
			Background: g.Palette.Minimap,
			Wall:       g.Palette.Wall,
			Marker:     g.Palette.Marker,
		})
	}

	center := g.View.Center()
	buf.Set(int(center.X), int(center.Y), g.Palette.Marker)
}
