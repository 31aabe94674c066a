// Package config holds the settings shared by the demo programs.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/sketch"
)

// MaxCircleSegments bounds car.circle_segments so one circle stays well
// inside a single draw command's 16-bit index range.
const MaxCircleSegments = 1024

// Config is the full set of tunables. Zero-valued fields in a YAML file keep
// their defaults because files are decoded on top of Default().
type Config struct {
	Window   Window   `yaml:"window"`
	Log      Log      `yaml:"log"`
	ClickBox ClickBox `yaml:"clickbox"`
	Car      Car      `yaml:"car"`
}

// Window describes the GLFW window and context.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Log configures the zap logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// RGBA is a color in 0.0-1.0 components.
type RGBA [4]float32

// ClickBox configures the reaction game.
type ClickBox struct {
	Title        string  `yaml:"title"`
	Background   RGBA    `yaml:"background"`
	HalfWidth    float32 `yaml:"half_width"`
	HalfHeight   float32 `yaml:"half_height"`
	MoveInterval float32 `yaml:"move_interval"`
	SpawnRange   float32 `yaml:"spawn_range"`
	Seed         int64   `yaml:"seed"`
}

// Car configures the car animation.
type Car struct {
	Title          string  `yaml:"title"`
	Background     RGBA    `yaml:"background"`
	Speed          float32 `yaml:"speed"`
	MinSpeed       float32 `yaml:"min_speed"`
	MaxSpeed       float32 `yaml:"max_speed"`
	SpeedStep      float32 `yaml:"speed_step"`
	GroundY        float32 `yaml:"ground_y"`
	WheelRadius    float32 `yaml:"wheel_radius"`
	BounceAmp      float32 `yaml:"bounce_amp"`
	BounceFreq     float32 `yaml:"bounce_freq"`
	CircleSegments int     `yaml:"circle_segments"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Log: Log{
			Level: "info",
		},
		ClickBox: ClickBox{
			Title:        "Click The Box",
			Background:   RGBA{0.15, 0.25, 0.3, 1},
			HalfWidth:    0.25,
			HalfHeight:   0.25,
			MoveInterval: 2,
			SpawnRange:   0.7,
		},
		Car: Car{
			Title:          "Car",
			Background:     RGBA{0.53, 0.81, 0.92, 1},
			Speed:          0.5,
			MinSpeed:       0,
			MaxSpeed:       2,
			SpeedStep:      0.1,
			GroundY:        -0.35,
			WheelRadius:    0.08,
			BounceAmp:      0.015,
			BounceFreq:     8,
			CircleSegments: 32,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadReader(f)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadReader decodes YAML from r over the defaults and validates the result.
func LoadReader(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.ClickBox.HalfWidth <= 0 || c.ClickBox.HalfHeight <= 0 {
		errs = append(errs, errors.New("clickbox half extents must be positive"))
	}
	if c.ClickBox.MoveInterval <= 0 {
		errs = append(errs, fmt.Errorf("clickbox move_interval must be positive, got %g", c.ClickBox.MoveInterval))
	}
	if c.ClickBox.SpawnRange <= 0 || c.ClickBox.SpawnRange > 1 {
		errs = append(errs, fmt.Errorf("clickbox spawn_range must be in (0, 1], got %g", c.ClickBox.SpawnRange))
	}
	if c.Car.MinSpeed < 0 || c.Car.MinSpeed > c.Car.MaxSpeed {
		errs = append(errs, fmt.Errorf("car speed bounds out of order: min %g max %g", c.Car.MinSpeed, c.Car.MaxSpeed))
	}
	if c.Car.Speed < c.Car.MinSpeed || c.Car.Speed > c.Car.MaxSpeed {
		errs = append(errs, fmt.Errorf("car speed %g outside [%g, %g]", c.Car.Speed, c.Car.MinSpeed, c.Car.MaxSpeed))
	}
	if c.Car.WheelRadius <= 0 {
		errs = append(errs, errors.New("car wheel_radius must be positive"))
	}
	if c.Car.BounceAmp < 0 {
		errs = append(errs, errors.New("car bounce_amp must not be negative"))
	}
	if c.Car.CircleSegments < sketch.MinCircleSegments || c.Car.CircleSegments > MaxCircleSegments {
		errs = append(errs, fmt.Errorf("car circle_segments must be in [%d, %d], got %d",
			sketch.MinCircleSegments, MaxCircleSegments, c.Car.CircleSegments))
	}
	return errors.Join(errs...)
}
