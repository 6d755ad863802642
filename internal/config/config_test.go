package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, time.Monday, cfg.FirstWeekday())
}

func TestLoadMissingFileDoesNotCreateIt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "week_start: Sunday\nlocale: es-AR\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sunday", cfg.WeekStart)
	assert.Equal(t, time.Sunday, cfg.FirstWeekday())
	assert.Equal(t, "es-AR", cfg.Locale)
	assert.Equal(t, defaultHighlightColor, cfg.HighlightColor)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("week_start: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{WeekStart: "friday", LogLevel: "DEBUG", HighlightColor: "#123456"}
	cfg.Normalize()

	assert.Equal(t, "monday", cfg.WeekStart)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "#123456", cfg.HighlightColor)
	assert.Equal(t, defaultTodayColor, cfg.TodayColor)
	assert.Equal(t, defaultLocale, cfg.Locale)
}
