// Package config provides configuration loading and access for the
// visualization.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Sim       SimConfig       `yaml:"sim"`
	Camera    CameraConfig    `yaml:"camera"`
	Pathway   PathwayConfig   `yaml:"pathway"`
	Flow      FlowConfig      `yaml:"flow"`
	Monitor   MonitorConfig   `yaml:"monitor"`
	Console   ConsoleConfig   `yaml:"console"`
	Thoughts  ThoughtsConfig  `yaml:"thoughts"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimConfig holds frame-loop parameters.
type SimConfig struct {
	DT               float64 `yaml:"dt"`                // seconds per tick
	AutoplayInterval float64 `yaml:"autoplay_interval"` // seconds between auto-advances
}

// CameraConfig holds orbit camera parameters.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Pitch       float64 `yaml:"pitch"`        // initial pitch in radians
	OrbitSpeed  float64 `yaml:"orbit_speed"`  // radians per pixel of drag
	ZoomSpeed   float64 `yaml:"zoom_speed"`   // distance units per wheel notch
	IdleDrift   float64 `yaml:"idle_drift"`   // slow yaw drift, radians per second
	FOV         float64 `yaml:"fov"`          // vertical field of view, degrees
}

// PathwayConfig holds pathway and pulse dynamics.
type PathwayConfig struct {
	PulseCount     int     `yaml:"pulse_count"`
	SpeedFloor     float64 `yaml:"speed_floor"`     // progress per tick at zero activity
	SpeedGain      float64 `yaml:"speed_gain"`      // additional progress per tick per unit activity
	Smoothing      float64 `yaml:"smoothing"`       // lerp factor toward targets, in (0,1)
	OpacityScale   float64 `yaml:"opacity_scale"`   // target scaled by this before intensity lerp
	SportDampening float64 `yaml:"sport_dampening"` // speed multiplier while sport is suppressed
	SportJitter    float64 `yaml:"sport_jitter"`    // positional jitter amplitude while suppressed
	TubeRadius     float64 `yaml:"tube_radius"`
	PulseRadius    float64 `yaml:"pulse_radius"`
}

// FlowConfig holds ambient flow field parameters.
type FlowConfig struct {
	ParticlesPerPath int     `yaml:"particles_per_path"`
	SpeedMin         float64 `yaml:"speed_min"`
	SpeedMax         float64 `yaml:"speed_max"`
	DriftStrength    float64 `yaml:"drift_strength"` // pointer perturbation scale
}

// MonitorConfig holds activity strip-chart parameters.
type MonitorConfig struct {
	HistorySize int     `yaml:"history_size"`
	HzScale     float64 `yaml:"hz_scale"` // displayed value * scale = Hz readout
	Jitter      float64 `yaml:"jitter"`   // cosmetic per-sample noise per draw
}

// ConsoleConfig holds log feed parameters.
type ConsoleConfig struct {
	Capacity    int `yaml:"capacity"`
	LineDelayMs int `yaml:"line_delay_ms"` // spacing between staggered stage log lines
}

// ThoughtsConfig holds thought bubble lifecycle parameters.
type ThoughtsConfig struct {
	HoldMin float64 `yaml:"hold_min"` // seconds fully visible, lower bound
	HoldMax float64 `yaml:"hold_max"` // seconds fully visible, upper bound
	Fade    float64 `yaml:"fade"`     // fade-out seconds after hold
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32          float32 // Sim.DT as float32
	ScreenW32     float32
	ScreenH32     float32
	AutoplayTicks int // Sim.AutoplayInterval in ticks
	WindowTicks   int // Telemetry.StatsWindow in ticks
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Sim.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	ticks := func(sec float64) int {
		n := int(sec / c.Sim.DT)
		if n < 1 {
			n = 1
		}
		return n
	}
	c.Derived.AutoplayTicks = ticks(c.Sim.AutoplayInterval)
	c.Derived.WindowTicks = ticks(c.Telemetry.StatsWindow)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
