// Package config loads the YAML description of a bouncing-sprite demo: the
// window, the loop's tick rate and the entities of each scene.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/plus3/fixedstep/loop"
	"github.com/plus3/fixedstep/loop/components"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window           Window  `yaml:"window"`
	Tick             Tick    `yaml:"tick"`
	MaxSteps         int     `yaml:"max_steps"`
	ResetLagOnSwitch bool    `yaml:"reset_lag_on_switch"`
	LogLevel         string  `yaml:"log_level"`
	LogFile          string  `yaml:"log_file"`
	Bounce           Bounce  `yaml:"bounce"`
	SteerSpeed       float64 `yaml:"steer_speed"`
	Scenes           []Scene `yaml:"scenes"`
}

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Tick sets the loop rate; exactly one of FPS and Step may be given.
type Tick struct {
	FPS  int           `yaml:"fps"`
	Step time.Duration `yaml:"step"`
}

type Bounce struct {
	Low     float64 `yaml:"low"`
	High    float64 `yaml:"high"`
	Rebound Point   `yaml:"rebound"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Loop() loop.Point { return loop.Point{X: p.X, Y: p.Y} }

type Scene struct {
	Name     string   `yaml:"name"`
	Entities []Entity `yaml:"entities"`
}

type Entity struct {
	Position Point  `yaml:"position"`
	Velocity Point  `yaml:"velocity"`
	Size     Point  `yaml:"size"`
	Color    string `yaml:"color"`
	Glyph    string `yaml:"glyph"`
	Steer    bool   `yaml:"steer"`
	Static   bool   `yaml:"static"`
}

// Default returns the configuration used when no file is given: one scene
// with a single ball bouncing between the default bounds at 30 ticks/s.
func Default() *Config {
	return &Config{
		Window:     Window{Title: "bounce", Width: 320, Height: 240},
		Tick:       Tick{FPS: loop.DefaultFPS},
		LogLevel:   "info",
		SteerSpeed: 3,
		Bounce: Bounce{
			Low:     components.DefaultLow,
			High:    components.DefaultHigh,
			Rebound: Point{X: components.DefaultRebound.X, Y: components.DefaultRebound.Y},
		},
		Scenes: []Scene{{
			Name: "main",
			Entities: []Entity{{
				Position: Point{X: 0, Y: 40},
				Velocity: Point{X: 4, Y: 2},
				Size:     Point{X: 16, Y: 16},
				Color:    "#f08080",
				Glyph:    "o",
			}},
		}},
	}
}

// Load decodes YAML from r on top of Default and validates the result. The
// default tick rate only applies when the document sets neither tick.fps nor
// tick.step.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	c.Tick = Tick{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if c.Tick == (Tick{}) {
		c.Tick.FPS = loop.DefaultFPS
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile loads the YAML file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate reports the first inconsistency in c.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Tick.FPS != 0 && c.Tick.Step != 0 {
		return errors.New("config: tick.fps and tick.step are mutually exclusive")
	}
	if c.Tick.FPS < 0 || c.Tick.Step < 0 {
		return fmt.Errorf("config: %w", loop.ErrInvalidTickRate)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("config: max_steps %d must not be negative", c.MaxSteps)
	}
	if c.Bounce.Low >= c.Bounce.High {
		return fmt.Errorf("config: bounce.low %g must be below bounce.high %g", c.Bounce.Low, c.Bounce.High)
	}
	if len(c.Scenes) == 0 {
		return fmt.Errorf("config: %w", loop.ErrNoScenes)
	}
	for i, s := range c.Scenes {
		for j, e := range s.Entities {
			if e.Size.X <= 0 || e.Size.Y <= 0 {
				return fmt.Errorf("config: scenes[%d].entities[%d]: size must be positive", i, j)
			}
			if _, err := ParseColor(e.Color); err != nil {
				return fmt.Errorf("config: scenes[%d].entities[%d]: %w", i, j, err)
			}
		}
	}
	return nil
}

// DriverOptions translates the loop settings into driver options.
func (c *Config) DriverOptions() []loop.Option {
	opts := []loop.Option{
		loop.WithMaxSteps(c.MaxSteps),
		loop.WithLagResetOnSwitch(c.ResetLagOnSwitch),
	}
	switch {
	case c.Tick.Step > 0:
		opts = append(opts, loop.WithStep(c.Tick.Step))
	case c.Tick.FPS > 0:
		opts = append(opts, loop.WithFPS(c.Tick.FPS))
	}
	return opts
}

// NewBounce builds the shared bounce physics.
func (c *Config) NewBounce() *components.Bounce {
	return &components.Bounce{
		Low:     c.Bounce.Low,
		High:    c.Bounce.High,
		Rebound: c.Bounce.Rebound.Loop(),
	}
}

// ParseColor parses "#rgb" or "#rrggbb". An empty string is white.
func ParseColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 0:
		c.R, c.G, c.B = 0xff, 0xff, 0xff
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	default:
		err = errors.New("want #rgb or #rrggbb")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
