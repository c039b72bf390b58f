package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
// Fields left out of the file keep the values from Default.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Page      PageConfig      `yaml:"page"`
	Series    SeriesConfig    `yaml:"series"`
	Simulator SimulatorConfig `yaml:"simulator"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Controls  ControlsConfig  `yaml:"controls"`
	Cache     CacheConfig     `yaml:"cache"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Env             string        `yaml:"env"`
	StaticDir       string        `yaml:"static_dir"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// PageConfig is the hosting/display configuration fixed at startup.
type PageConfig struct {
	Title        string `yaml:"title"`
	Layout       string `yaml:"layout"`
	LogoURL      string `yaml:"logo_url"`
	HeroImageURL string `yaml:"hero_image_url"`
	HeroCaption  string `yaml:"hero_caption"`
}

type SeriesConfig struct {
	Length int     `yaml:"length"`
	Offset float64 `yaml:"offset"`
	Seed   uint64  `yaml:"seed"`
}

type SimulatorConfig struct {
	Trades int `yaml:"trades"`
}

type MetricsConfig struct {
	Samples        int     `yaml:"samples"`
	PeriodsPerYear float64 `yaml:"periods_per_year"`
}

// Bounds describes one numeric input control.
type Bounds struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Default float64 `yaml:"default"`
	Step    float64 `yaml:"step"`
}

// Clamp pins v into [Min, Max].
func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

type ControlsConfig struct {
	ShortWindow    Bounds `yaml:"short_window"`
	LongWindow     Bounds `yaml:"long_window"`
	InitialBalance Bounds `yaml:"initial_balance"`
	TradeSize      Bounds `yaml:"trade_size"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// Default returns the stock dashboard configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			Env:             "development",
			StaticDir:       "./web/static",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Page: PageConfig{
			Title:        "QuantDec",
			Layout:       "wide",
			LogoURL:      "https://quantdec.streamlit.app/favicon.png",
			HeroImageURL: "https://images.unsplash.com/photo-1624996752380-8ec242e0f85b",
			HeroCaption:  "Quantitative Finance in Action",
		},
		Series: SeriesConfig{
			Length: 500,
			Offset: 100,
			Seed:   42,
		},
		Simulator: SimulatorConfig{
			Trades: 100,
		},
		Metrics: MetricsConfig{
			Samples:        1000,
			PeriodsPerYear: 252,
		},
		Controls: ControlsConfig{
			ShortWindow:    Bounds{Min: 5, Max: 50, Default: 20, Step: 1},
			LongWindow:     Bounds{Min: 50, Max: 200, Default: 100, Step: 1},
			InitialBalance: Bounds{Min: 1000, Max: 1000000, Default: 10000, Step: 1},
			TradeSize:      Bounds{Min: 100, Max: 10000, Default: 1000, Step: 1},
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     time.Minute,
		},
	}
}

// Load reads path over the defaults and validates the result.
// An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be > 0")
	}
	if c.Page.Title == "" {
		return errors.New("page.title is required")
	}
	if c.Series.Length <= 0 {
		return errors.New("series.length must be > 0")
	}
	if c.Simulator.Trades < 0 {
		return errors.New("simulator.trades must be >= 0")
	}
	if c.Metrics.Samples <= 0 {
		return errors.New("metrics.samples must be > 0")
	}
	if c.Metrics.PeriodsPerYear <= 0 {
		return errors.New("metrics.periods_per_year must be > 0")
	}
	controls := []struct {
		name string
		b    Bounds
	}{
		{"controls.short_window", c.Controls.ShortWindow},
		{"controls.long_window", c.Controls.LongWindow},
		{"controls.initial_balance", c.Controls.InitialBalance},
		{"controls.trade_size", c.Controls.TradeSize},
	}
	for _, ctl := range controls {
		if err := ctl.b.validate(); err != nil {
			return fmt.Errorf("%s invalid: %w", ctl.name, err)
		}
	}
	if c.Controls.ShortWindow.Min < 1 || c.Controls.LongWindow.Min < 1 {
		return errors.New("moving-average windows must be >= 1")
	}
	if c.Controls.ShortWindow.Max > c.Controls.LongWindow.Min {
		return fmt.Errorf("controls.short_window max (%g) must not exceed controls.long_window min (%g)",
			c.Controls.ShortWindow.Max, c.Controls.LongWindow.Min)
	}
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be > 0 when the cache is enabled")
	}
	return nil
}

func (b Bounds) validate() error {
	if b.Min > b.Max {
		return fmt.Errorf("min %v > max %v", b.Min, b.Max)
	}
	if b.Default < b.Min || b.Default > b.Max {
		return fmt.Errorf("default %v outside [%v, %v]", b.Default, b.Min, b.Max)
	}
	if b.Step < 0 {
		return errors.New("step must be >= 0")
	}
	return nil
}

// MergeServer overlays non-zero fields from override onto base.
// This is used when applying environment overrides to the file config.
func MergeServer(base, override ServerConfig) ServerConfig {
	out := base
	if override.Port != "" {
		out.Port = override.Port
	}
	if override.Env != "" {
		out.Env = override.Env
	}
	if override.StaticDir != "" {
		out.StaticDir = override.StaticDir
	}
	if len(override.AllowedOrigins) > 0 {
		out.AllowedOrigins = override.AllowedOrigins
	}
	if override.ShutdownTimeout != 0 {
		out.ShutdownTimeout = override.ShutdownTimeout
	}
	return out
}

// IsProduction reports whether the server runs in production mode.
func (s ServerConfig) IsProduction() bool {
	return s.Env == "production"
}
