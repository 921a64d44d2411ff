package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const appName = "couchcontrols"

type Config struct {
	Controls ControlsConfig `toml:"controls"`
	Playback PlaybackConfig `toml:"playback"`
	UI       UIConfig       `toml:"ui"`
	Keybinds KeybindConfig  `toml:"keybinds"`
	Logging  LoggingConfig  `toml:"logging"`
}

type ControlsConfig struct {
	// DefaultTimeoutMs is how long the controls stay up after activity.
	DefaultTimeoutMs int  `toml:"default_timeout_ms"`
	Scalable         bool `toml:"scalable"`
}

type PlaybackConfig struct {
	HWAccel string `toml:"hwdec"`
	Volume  int    `toml:"volume"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type KeybindConfig struct {
	PlayPause  string `toml:"play_pause"`
	Play       string `toml:"play"`
	Pause      string `toml:"pause"`
	Dismiss    string `toml:"dismiss"`
	Fullscreen string `toml:"fullscreen"`
	VolumeUp   string `toml:"volume_up"`
	VolumeDown string `toml:"volume_down"`
	Mute       string `toml:"mute"`
	Quit       string `toml:"quit"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	// File is the log file path. Empty logs to stderr.
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
	MaxAge     int    `toml:"max_age"`
	Compress   bool   `toml:"compress"`
}

func DefaultConfig() *Config {
	return &Config{
		Controls: ControlsConfig{
			DefaultTimeoutMs: 3000,
			Scalable:         true,
		},
		Playback: PlaybackConfig{
			HWAccel: "auto-safe",
			Volume:  100,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
		},
		Keybinds: KeybindConfig{
			PlayPause:  "Space",
			Play:       "P",
			Pause:      "Pause",
			Dismiss:    "Escape",
			Fullscreen: "F",
			VolumeUp:   "Up",
			VolumeDown: "Down",
			Mute:       "M",
			Quit:       "Q",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}
}

// DefaultTimeout returns the auto-hide timeout as a duration.
func (c *Config) DefaultTimeout() time.Duration {
	return time.Duration(c.Controls.DefaultTimeoutMs) * time.Millisecond
}

// Validate reports every value that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Controls.DefaultTimeoutMs < 0 {
		errs = append(errs, fmt.Errorf("controls.default_timeout_ms must not be negative, got %d", c.Controls.DefaultTimeoutMs))
	}
	if c.Playback.Volume < 0 || c.Playback.Volume > 150 {
		errs = append(errs, fmt.Errorf("playback.volume must be within 0..150, got %d", c.Playback.Volume))
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf("ui size must be positive, got %dx%d", c.UI.Width, c.UI.Height))
	}
	return errors.Join(errs...)
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path. A missing file yields the
// defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path over the defaults. A missing file
// yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
