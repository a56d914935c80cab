// Package config holds the renderer's tunable constants: screen size,
// movement rates, lens parameters, minimap layout and palette. Values are
// loaded from a JSON file so each setup can override only what it needs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"chosenoffset.com/wallcaster/internal/core/raster"
)

// View modes
const (
	ViewPerspective = "perspective"
	ViewOverhead    = "overhead"
)

// Config holds every setting of a run
type Config struct {
	Screen  ScreenConfig  `json:"screen"`
	Player  PlayerConfig  `json:"player"`
	Camera  CameraConfig  `json:"camera"`
	Minimap MinimapConfig `json:"minimap"`
	Palette PaletteConfig `json:"palette"`

	// Level names a built-in map
	Level string `json:"level"`
}

// ScreenConfig defines the pixel buffer and window
type ScreenConfig struct {
	Width  int    `json:"width"`  // pixel buffer width
	Height int    `json:"height"` // pixel buffer height
	Scale  int    `json:"scale"`  // window pixels per buffer pixel
	Title  string `json:"title"`
}

// PlayerConfig defines the starting pose and movement rates
type PlayerConfig struct {
	StartX   float64 `json:"start_x"`
	StartY   float64 `json:"start_y"`
	LookX    float64 `json:"look_x"` // initial heading, normalised on load
	LookY    float64 `json:"look_y"`
	Speed    float64 `json:"speed"`     // world units per second
	TurnRate float64 `json:"turn_rate"` // radians per second
}

// CameraConfig defines the main view's lens
type CameraConfig struct {
	FocalLength float64 `json:"focal_length"` // lateral scale after the perspective divide
	FocalHeight float64 `json:"focal_height"` // apparent wall height
	ViewMode    string  `json:"view_mode"`    // "perspective" or "overhead"
}

// MinimapConfig defines the overlay
type MinimapConfig struct {
	Enabled       bool    `json:"enabled"`
	X             int     `json:"x"`
	Y             int     `json:"y"`
	Scale         float64 `json:"scale"`
	Follow        bool    `json:"follow"`
	Width         int     `json:"width"`  // overlay size in follow mode
	Height        int     `json:"height"` // overlay size in follow mode
	HeadingLength float64 `json:"heading_length"`
}

// PaletteConfig holds colors as "#rrggbb" strings
type PaletteConfig struct {
	Background string `json:"background"`
	Wall       string `json:"wall"`
	Marker     string `json:"marker"`
	Minimap    string `json:"minimap"`
}

// Palette is PaletteConfig parsed into packed colors
type Palette struct {
	Background raster.Color
	Wall       raster.Color
	Marker     raster.Color
	Minimap    raster.Color
}

// DefaultConfig returns the prototype's settings
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  240,
			Height: 160,
			Scale:  4,
			Title:  "wallcaster - ESC to exit",
		},
		Player: PlayerConfig{
			StartX:   50,
			StartY:   50,
			LookX:    0,
			LookY:    -1,
			Speed:    40,
			TurnRate: math.Pi,
		},
		Camera: CameraConfig{
			FocalLength: 120,
			FocalHeight: 1200,
			ViewMode:    ViewPerspective,
		},
		Minimap: MinimapConfig{
			Enabled:       true,
			X:             0,
			Y:             0,
			Scale:         0.5,
			Follow:        false,
			Width:         50,
			Height:        50,
			HeadingLength: 5,
		},
		Palette: PaletteConfig{
			Background: "#0000ff",
			Wall:       "#00ff00",
			Marker:     "#ffffff",
			Minimap:    "#000000",
		},
		Level: "prototype",
	}
}

// LoadConfig loads a config from a JSON file over the defaults. A missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the settings the renderer cannot work without
func (c *Config) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.Scale <= 0 {
		errs = append(errs, fmt.Errorf("screen scale %d must be positive", c.Screen.Scale))
	}
	if c.Player.LookX == 0 && c.Player.LookY == 0 {
		errs = append(errs, errors.New("player look direction must not be zero"))
	}
	if c.Camera.FocalLength <= 0 || c.Camera.FocalHeight <= 0 {
		errs = append(errs, errors.New("camera focal length and height must be positive"))
	}
	if c.Camera.ViewMode != ViewPerspective && c.Camera.ViewMode != ViewOverhead {
		errs = append(errs, fmt.Errorf("unknown view mode %q", c.Camera.ViewMode))
	}
	if c.Minimap.Scale <= 0 {
		errs = append(errs, fmt.Errorf("minimap scale %v must be positive", c.Minimap.Scale))
	}
	if _, err := c.Palette.Parse(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Parse converts the hex strings into packed colors
func (p PaletteConfig) Parse() (Palette, error) {
	var palette Palette
	fields := []struct {
		name string
		hex  string
		dst  *raster.Color
	}{
		{"background", p.Background, &palette.Background},
		{"wall", p.Wall, &palette.Wall},
		{"marker", p.Marker, &palette.Marker},
		{"minimap", p.Minimap, &palette.Minimap},
	}

	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = raster.RGB(c.RGB255())
	}

	return palette, nil
}
