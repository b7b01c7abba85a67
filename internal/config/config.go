// Package config loads and validates the client configuration.
//
// Configuration lives in a YAML file (by default
// $XDG_CONFIG_HOME/isitcinema/config.yaml). A missing file yields defaults;
// environment variables override file values.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"isitcinema/internal/animation"
	"isitcinema/internal/movie"

	"gopkg.in/yaml.v3"
)

const appDir = "isitcinema"

// Config holds all client configuration.
type Config struct {
	// Backend service
	API APIConfig `yaml:"api"`

	// Placeholder and roast animations
	Animation AnimationConfig `yaml:"animation"`

	// Aspect chart
	Chart ChartConfig `yaml:"chart"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the backend client.
type APIConfig struct {
	BaseURL   string `yaml:"base_url"`
	Timeout   string `yaml:"timeout"`
	UserAgent string `yaml:"user_agent"`
}

// AnimationConfig configures the text animations.
type AnimationConfig struct {
	Placeholders     []string `yaml:"placeholders"`
	TypingSpeed      string   `yaml:"typing_speed"`      // placeholder base speed; half per rune
	PlaceholderPause string   `yaml:"placeholder_pause"` // hold on a fully typed placeholder
	TypeDelay        string   `yaml:"type_delay"`        // roast per-rune typing delay
	DeleteDelay      string   `yaml:"delete_delay"`      // roast per-rune delete delay
	PhrasePause      string   `yaml:"phrase_pause"`      // hold after each scripted roast phrase

	Roast animation.Script `yaml:"roast"`
}

// ChartConfig configures the aspect chart.
type ChartConfig struct {
	AxisPolicy string `yaml:"axis_policy"` // padded, percent
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "http://localhost:5515",
			Timeout:   "90s",
			UserAgent: "isitcinema/1.0",
		},

		Animation: AnimationConfig{
			Placeholders:     append([]string(nil), animation.DefaultPlaceholders...),
			TypingSpeed:      "120ms",
			PlaceholderPause: "3s",
			TypeDelay:        "50ms",
			DeleteDelay:      "30ms",
			PhrasePause:      "1500ms",
			Roast:            animation.DefaultScript,
		},

		Chart: ChartConfig{
			AxisPolicy: string(movie.PolicyPadded),
		},

		UI: *DefaultUIConfig(),

		Logging: LoggingConfig{
			Level:     "info",
			Format:    "text",
			DebugMode: false,
			Dir:       DefaultLogDir(),
		},
	}
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", appDir, "config.yaml")
	}
	return filepath.Join(dir, appDir, "config.yaml")
}

// DefaultLogDir returns the default log directory.
func DefaultLogDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(".", appDir, "logs")
	}
	return filepath.Join(dir, appDir, "logs")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Defaults if the config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if u := os.Getenv("CINEMA_API_URL"); u != "" {
		c.API.BaseURL = u
	}
	if t := os.Getenv("CINEMA_API_TIMEOUT"); t != "" {
		c.API.Timeout = t
	}
	if os.Getenv("CINEMA_DARK_MODE") == "1" {
		c.UI.Theme = ThemeDark
	}
	if os.Getenv("CINEMA_DEBUG") == "1" {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
	if dir := os.Getenv("CINEMA_LOG_DIR"); dir != "" {
		c.Logging.Dir = dir
	}
}

func durationOr(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

// GetAPITimeout returns the backend request timeout.
func (c *Config) GetAPITimeout() time.Duration {
	return durationOr(c.API.Timeout, 90*time.Second)
}

// GetTypingSpeed returns the placeholder base typing speed.
func (c *Config) GetTypingSpeed() time.Duration {
	return durationOr(c.Animation.TypingSpeed, animation.DefaultTypingSpeed)
}

// GetPlaceholderPause returns the placeholder hold time.
func (c *Config) GetPlaceholderPause() time.Duration {
	return durationOr(c.Animation.PlaceholderPause, animation.DefaultPlaceholderPause)
}

// GetRoastDelays returns the roast typing, deleting and pause delays.
func (c *Config) GetRoastDelays() (typing, deleting, pause time.Duration) {
	return durationOr(c.Animation.TypeDelay, animation.DefaultTypeDelay),
		durationOr(c.Animation.DeleteDelay, animation.DefaultDeleteDelay),
		durationOr(c.Animation.PhrasePause, animation.DefaultPhrasePause)
}

// GetAxisPolicy returns the configured chart axis policy.
func (c *Config) GetAxisPolicy() movie.AxisPolicy {
	return movie.ParseAxisPolicy(c.Chart.AxisPolicy)
}

// NewCycler builds the placeholder machine from the animation settings.
func (c *Config) NewCycler() (*animation.Cycler, error) {
	return animation.NewCycler(c.Animation.Placeholders,
		animation.WithTypingSpeed(c.GetTypingSpeed()),
		animation.WithPause(c.GetPlaceholderPause()),
	)
}

// NewTypewriter builds the roast reveal machine from the animation settings.
func (c *Config) NewTypewriter() (*animation.Typewriter, error) {
	typing, deleting, pause := c.GetRoastDelays()
	return animation.NewTypewriter(c.Animation.Roast, animation.WithDelays(typing, deleting, pause))
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.API.BaseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api.base_url %q (want http(s)://host[:port])", c.API.BaseURL)
	}

	if len(c.Animation.Placeholders) == 0 {
		return fmt.Errorf("animation.placeholders must not be empty")
	}
	if err := c.Animation.Roast.Validate(); err != nil {
		return fmt.Errorf("invalid animation.roast: %w", err)
	}

	switch movie.AxisPolicy(strings.ToLower(strings.TrimSpace(c.Chart.AxisPolicy))) {
	case movie.PolicyPadded, movie.PolicyPercent:
	default:
		return fmt.Errorf("invalid chart.axis_policy: %s (valid: padded, percent)", c.Chart.AxisPolicy)
	}

	if !validTheme(c.UI.Theme) {
		return fmt.Errorf("invalid ui.theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	return nil
}
