// Package config holds the tuning constants of the exercises and loads them
// from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"render-exercises/core"
	"render-exercises/particles"
	"render-exercises/scene"
)

type Config struct {
	Debug     bool              `toml:"debug"`
	Window    core.WindowConfig `toml:"window"`
	Assets    Assets            `toml:"assets"`
	Particles Particles         `toml:"particles"`
	Portal    Portal            `toml:"portal"`
	Terrain   Terrain           `toml:"terrain"`
}

type Assets struct {
	ShaderDir string `toml:"shader_dir"`
	ImageDir  string `toml:"image_dir"`
}

type Particles struct {
	Capacity int     `toml:"capacity"`
	Layout   string  `toml:"layout"` // default, rgb, rotated or packed
	Gravity  float32 `toml:"gravity"`
	Seed     int64   `toml:"seed"`

	Ring    Ring    `toml:"ring"`
	Pointer Pointer `toml:"pointer"`
}

type Ring struct {
	Enabled         bool    `toml:"enabled"`
	Count           int     `toml:"count"`
	Radius          float32 `toml:"radius"`
	AngularSpeedDeg float32 `toml:"angular_speed_deg"`
}

type Pointer struct {
	Enabled bool `toml:"enabled"`
}

type Portal struct {
	Enabled    bool             `toml:"enabled"`
	Background scene.Background `toml:"background"`
	View       scene.Background `toml:"view"`
	Segments   int              `toml:"segments"`
	Inset      float32          `toml:"inset"`
	Tint       [3]float32       `toml:"tint"`
	UseTint    bool             `toml:"use_tint"`
}

type Terrain struct {
	GridX     int     `toml:"grid_x"`
	GridY     int     `toml:"grid_y"`
	Amplitude float32 `toml:"amplitude"`
	Frequency float32 `toml:"frequency"`
	Texture   string  `toml:"texture"`
}

// Default returns the values the exercises ship with.
func Default() Config {
	return Config{
		Window: core.DefaultWindowConfig(),
		Assets: Assets{
			ShaderDir: "assets/shaders",
			ImageDir:  "assets/images",
		},
		Particles: Particles{
			Capacity: 4000,
			Layout:   "default",
			Seed:     42,
			Ring: Ring{
				Enabled:         true,
				Count:           40,
				Radius:          0.4,
				AngularSpeedDeg: 120,
			},
			Pointer: Pointer{Enabled: true},
		},
		Portal: Portal{
			Enabled:    true,
			Background: scene.Room,
			View:       scene.Forest,
			Segments:   100,
			Inset:      0.8,
			Tint:       [3]float32{0, 0.75, 0},
		},
		Terrain: Terrain{
			GridX:     128,
			GridY:     128,
			Amplitude: 0.08,
			Frequency: 2,
		},
	}
}

// Load reads path over Default. Unknown keys are rejected so typos surface.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("config: %s", strict.String())
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the exercises cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Particles.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("particles.capacity must be positive, got %d", c.Particles.Capacity))
	}
	if _, err := particles.LayoutByName(c.Particles.Layout); err != nil {
		errs = append(errs, fmt.Errorf("particles.layout: %w", err))
	}
	if c.Particles.Ring.Count <= 0 {
		errs = append(errs, fmt.Errorf("particles.ring.count must be positive, got %d", c.Particles.Ring.Count))
	}
	if c.Terrain.GridX <= 0 || c.Terrain.GridY <= 0 {
		errs = append(errs, fmt.Errorf("terrain grid must be positive, got %dx%d", c.Terrain.GridX, c.Terrain.GridY))
	}
	if !c.Portal.Background.Valid() || !c.Portal.View.Valid() {
		errs = append(errs, fmt.Errorf("portal backgrounds out of range"))
	}
	return errors.Join(errs...)
}

// Encode renders c as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
