package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "storytray"

type Config struct {
	StoriesFile string `koanf:"stories_file"` // story file to show instead of the store (watched for changes)
	Icons       string `koanf:"icons"`        // "nerd", "unicode", or "none"

	// Terminal cell size override in pixels (0 = detect)
	Cell CellConfig `koanf:"cell"`

	// Carousel transition settings
	Transition TransitionConfig `koanf:"transition"`

	// Log file settings
	Log LogConfig `koanf:"log"`
}

// CellConfig overrides the detected terminal cell size.
type CellConfig struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
}

// TransitionConfig holds carousel animation settings.
type TransitionConfig struct {
	DurationMS int `koanf:"duration_ms"` // time before a navigation commits (default: 500)
	FrameRate  int `koanf:"frame_rate"`  // animation frames per second (default: 60)
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/storytray/storytray.log
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
}

// Load reads the default config files. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFiles(getConfigPaths()...)
}

// LoadFiles reads the given config files in order (last wins).
func LoadFiles(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.StoriesFile = expandPath(cfg.StoriesFile)
	cfg.Log.File = expandPath(cfg.Log.File)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/storytray/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasStoriesFile returns true if a story file replaces the store.
func (c *Config) HasStoriesFile() bool {
	return c.StoriesFile != ""
}

// TransitionDuration returns the navigation duration with defaults applied.
func (c *Config) TransitionDuration() time.Duration {
	if c.Transition.DurationMS <= 0 || c.Transition.DurationMS > 5000 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.Transition.DurationMS) * time.Millisecond
}

// FrameRate returns the animation frame rate with defaults applied.
func (c *Config) FrameRate() int {
	if c.Transition.FrameRate <= 0 || c.Transition.FrameRate > 240 {
		return 60
	}
	return c.Transition.FrameRate
}

// CellSize returns the configured cell size, or zeros to request detection.
func (c *Config) CellSize() (width, height int) {
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return 0, 0
	}
	return c.Cell.Width, c.Cell.Height
}

// LogLevel returns the slog level for the configured level name.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFile returns the log file path with defaults applied.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
