package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultWeekStart      = "monday"
	defaultLocale         = "en"
	defaultHighlightColor = "#00FFFF"
	defaultTodayColor     = "#FFAF00"
	defaultLogLevel       = "info"
)

// Config is the top-level application configuration. Every field is
// optional; an empty file behaves like no file at all.
type Config struct {
	// WeekStart controls which weekday is treated as the first column of the
	// month grid. Supported values:
	//   - "monday" (default)
	//   - "sunday"
	WeekStart string `yaml:"week_start" json:"week_start"`

	// Locale is a BCP 47 tag selecting the display labels (e.g. "en", "es-AR").
	Locale string `yaml:"locale" json:"locale"`

	// HighlightColor is the background of day cells that have events.
	HighlightColor string `yaml:"highlight_color" json:"highlight_color"`

	// TodayColor is the foreground of the current day's cell.
	TodayColor string `yaml:"today_color" json:"today_color"`

	// LogLevel is one of debug, info, error.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		WeekStart:      defaultWeekStart,
		Locale:         defaultLocale,
		HighlightColor: defaultHighlightColor,
		TodayColor:     defaultTodayColor,
		LogLevel:       defaultLogLevel,
	}
}

// Normalize fills in missing/zero values with sensible defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	c.WeekStart = strings.ToLower(strings.TrimSpace(c.WeekStart))
	switch c.WeekStart {
	case "monday", "sunday":
		// ok
	default:
		// Unknown value; fall back to monday to avoid surprising layouts.
		c.WeekStart = defaultWeekStart
	}

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = defaultLocale
	}
	if c.HighlightColor == "" {
		c.HighlightColor = defaultHighlightColor
	}
	if c.TodayColor == "" {
		c.TodayColor = defaultTodayColor
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = defaultLogLevel
	}
}

// FirstWeekday returns WeekStart as a time.Weekday.
func (c *Config) FirstWeekday() time.Weekday {
	if c.WeekStart == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If path is empty or the file does not exist, the defaults are
//     returned. Nothing is written to disk.
//   - If the file exists, it is unmarshalled over the defaults and
//     normalized.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Normalize()

	return cfg, nil
}
