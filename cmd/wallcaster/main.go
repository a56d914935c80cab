package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	"chosenoffset.com/wallcaster/internal/config"
	"chosenoffset.com/wallcaster/internal/core/raster"
	"chosenoffset.com/wallcaster/internal/game"
	"chosenoffset.com/wallcaster/internal/render"
	ebitenrender "chosenoffset.com/wallcaster/internal/render/ebiten"
	"chosenoffset.com/wallcaster/internal/render/terminal"
	"chosenoffset.com/wallcaster/internal/world/level"
)

func main() {
	configPath := flag.String("config", "wallcaster.json", "path to the JSON config file")
	backend := flag.String("backend", "ebiten", "render backend: ebiten or terminal")
	levelName := flag.String("level", "", "built-in level to load (overrides config)")
	snapshot := flag.String("snapshot", "", "render one frame to this PNG file and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *levelName != "" {
		cfg.Level = *levelName
	}

	lvl, err := level.Builtin(cfg.Level)
	if err != nil {
		log.Fatalf("Failed to load level: %v (available: %v)", err, level.Names())
	}
	log.Printf("Loaded level %s with %d walls", lvl.Name, len(lvl.Walls))

	if *snapshot != "" {
		if err := writeSnapshot(cfg, lvl, *snapshot); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("Wrote %s", *snapshot)
		return
	}

	var (
		engine render.Engine
		input  render.InputManager
	)
	switch *backend {
	case "ebiten":
		engine = ebitenrender.NewEngine()
		input = ebitenrender.NewInputManager()
	case "terminal":
		term := terminal.NewBackend()
		engine, input = term, term
		// stderr shares the tty with the frame
		log.SetOutput(io.Discard)
	default:
		log.Fatalf("Unknown backend %q", *backend)
	}

	g, err := game.New(cfg, lvl, game.NewKeyControls(input))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	engine.SetWindowSize(cfg.Screen.Width*cfg.Screen.Scale, cfg.Screen.Height*cfg.Screen.Scale)
	engine.SetWindowTitle(cfg.Screen.Title)
	engine.SetWindowResizable(true)

	log.Printf("Starting %s backend...", *backend)
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// writeSnapshot renders the opening frame without any backend
func writeSnapshot(cfg *config.Config, lvl level.Map, path string) error {
	g, err := game.New(cfg, lvl, nil)
	if err != nil {
		return err
	}

	buf := raster.NewBuffer(cfg.Screen.Width, cfg.Screen.Height)
	g.RenderFrame(buf)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, buf); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
