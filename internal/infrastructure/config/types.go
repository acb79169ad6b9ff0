package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for any out-of-range value
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display *DisplayConfig
	Wave    *WaveConfig
}

// DisplayConfig configures the window and frame rate
type DisplayConfig struct {
	Title     string `yaml:"title"`
	Scale     int    `yaml:"scale"`
	Framerate int    `yaml:"framerate"`
}

// WaveConfig is the root config for wave.yaml.
// All distances are in world pixels, speeds in pixels per frame,
// and intervals in seconds.
type WaveConfig struct {
	Game   GameArea     `yaml:"game"`
	Ship   ShipConfig   `yaml:"ship"`
	Aliens AlienConfig  `yaml:"aliens"`
	Bolt   BoltConfig   `yaml:"bolt"`
	Hearts HeartsConfig `yaml:"hearts"`
}

type GameArea struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	DefenseLine float64 `yaml:"defenseLine"`
}

type ShipConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Bottom     float64 `yaml:"bottom"`   // Centre y of the ship
	Movement   float64 `yaml:"movement"` // Pixels per frame
	Lives      int     `yaml:"lives"`
	DeathSpeed float64 `yaml:"deathSpeed"` // Seconds for the destruction animation
}

type AlienConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	HSep    float64 `yaml:"hSep"`
	VSep    float64 `yaml:"vSep"`
	Ceiling float64 `yaml:"ceiling"`
	Rows    int     `yaml:"rows"`
	Columns int     `yaml:"columns"`
	HWalk   float64 `yaml:"hWalk"`
	VWalk   float64 `yaml:"vWalk"`
	// StepInterval is the initial number of seconds between march steps
	StepInterval float64  `yaml:"stepInterval"`
	SpeedDecay   float64  `yaml:"speedDecay"` // Multiplier applied per kill
	Images       []string `yaml:"images"`
}

type BoltConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"`
	MaxRate int     `yaml:"maxRate"` // Upper bound of the alien fire threshold (march steps)
}

type HeartsConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`    // Seconds for one full pulse
	IdleTime float64 `yaml:"idleTime"` // Seconds between pulses
}

// Default returns the stock tuning values
func Default() WaveConfig {
	return WaveConfig{
		Game: GameArea{Width: 800, Height: 700, DefenseLine: 100},
		Ship: ShipConfig{
			Width:      44,
			Height:     44,
			Bottom:     32,
			Movement:   5,
			Lives:      3,
			DeathSpeed: 0.4,
		},
		Aliens: AlienConfig{
			Width:        33,
			Height:       33,
			HSep:         16,
			VSep:         16,
			Ceiling:      100,
			Rows:         5,
			Columns:      12,
			HWalk:        8,
			VWalk:        16,
			StepInterval: 1.0,
			SpeedDecay:   0.97,
			Images:       []string{"alien1", "alien2", "alien3"},
		},
		Bolt: BoltConfig{Width: 4, Height: 16, Speed: 15, MaxRate: 5},
		Hearts: HeartsConfig{
			Width:    32,
			Height:   32,
			Speed:    0.5,
			IdleTime: 3.0,
		},
	}
}

// DefaultDisplay returns the stock display settings
func DefaultDisplay() DisplayConfig {
	return DisplayConfig{Title: "Alien Invaders", Scale: 1, Framerate: 60}
}

// Validate checks that every value is usable by the wave simulation
func (c *WaveConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"game.width", c.Game.Width},
		{"game.height", c.Game.Height},
		{"ship.width", c.Ship.Width},
		{"ship.height", c.Ship.Height},
		{"ship.deathSpeed", c.Ship.DeathSpeed},
		{"aliens.width", c.Aliens.Width},
		{"aliens.height", c.Aliens.Height},
		{"aliens.stepInterval", c.Aliens.StepInterval},
		{"bolt.width", c.Bolt.Width},
		{"bolt.height", c.Bolt.Height},
		{"bolt.speed", c.Bolt.Speed},
		{"hearts.width", c.Hearts.Width},
		{"hearts.height", c.Hearts.Height},
		{"hearts.speed", c.Hearts.Speed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %.2f", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Ship.Lives < 1 {
		return fmt.Errorf("%w: ship.lives must be at least 1, got %d", ErrInvalidConfig, c.Ship.Lives)
	}
	if c.Aliens.Rows < 1 || c.Aliens.Columns < 1 {
		return fmt.Errorf("%w: aliens grid %dx%d is empty", ErrInvalidConfig, c.Aliens.Rows, c.Aliens.Columns)
	}
	if c.Aliens.SpeedDecay <= 0 || c.Aliens.SpeedDecay > 1 {
		return fmt.Errorf("%w: aliens.speedDecay must be in (0, 1], got %.3f", ErrInvalidConfig, c.Aliens.SpeedDecay)
	}
	if len(c.Aliens.Images) == 0 {
		return fmt.Errorf("%w: aliens.images is empty", ErrInvalidConfig)
	}
	if c.Bolt.MaxRate < 1 {
		return fmt.Errorf("%w: bolt.maxRate must be at least 1, got %d", ErrInvalidConfig, c.Bolt.MaxRate)
	}
	if c.Game.DefenseLine < 0 || c.Game.DefenseLine >= c.Game.Height {
		return fmt.Errorf("%w: game.defenseLine %.1f outside [0, %.1f)", ErrInvalidConfig, c.Game.DefenseLine, c.Game.Height)
	}

	return nil
}

// Validate checks the display settings
func (c *DisplayConfig) Validate() error {
	if c.Scale < 1 {
		return fmt.Errorf("%w: display.scale must be at least 1, got %d", ErrInvalidConfig, c.Scale)
	}
	if c.Framerate < 1 {
		return fmt.Errorf("%w: display.framerate must be at least 1, got %d", ErrInvalidConfig, c.Framerate)
	}
	return nil
}
