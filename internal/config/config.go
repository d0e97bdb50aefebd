// Package config loads QuickPad settings with viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI        UIConfig
	Clipboard ClipboardConfig
	Log       LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title           string
	ShowLineNumbers bool          `mapstructure:"show_line_numbers"`
	TabWidth        int           `mapstructure:"tab_width"`
	StatusDuration  time.Duration `mapstructure:"status_duration"`
}

// ClipboardConfig controls change detection for the system clipboard.
type ClipboardConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// LogConfig selects the log sink. An empty File disables logging.
type LogConfig struct {
	File  string
	Level string
}

// Defaults mirrors the values Load falls back to.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			Title:          "QuickPad",
			TabWidth:       4,
			StatusDuration: 2 * time.Second,
		},
		Clipboard: ClipboardConfig{PollInterval: 500 * time.Millisecond},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads configuration from file and env. Env var overrides use prefix
// QUICKPAD_. A missing config file is not an error.
func Load() (Config, error) {
	return load(os.Getenv("QUICKPAD_CONFIG"), filepath.Join(os.Getenv("HOME"), ".config", "quickpad"))
}

func load(cfgPath, searchDir string) (Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.show_line_numbers", d.UI.ShowLineNumbers)
	v.SetDefault("ui.tab_width", d.UI.TabWidth)
	v.SetDefault("ui.status_duration", d.UI.StatusDuration)
	v.SetDefault("clipboard.poll_interval", d.Clipboard.PollInterval)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)

	v.SetConfigType("toml")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(searchDir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("QUICKPAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c.sanitized(), nil
}

// sanitized replaces out-of-range values with defaults.
func (c Config) sanitized() Config {
	d := Defaults()
	if strings.TrimSpace(c.UI.Title) == "" {
		c.UI.Title = d.UI.Title
	}
	if c.UI.TabWidth <= 0 || c.UI.TabWidth > 16 {
		c.UI.TabWidth = d.UI.TabWidth
	}
	if c.UI.StatusDuration <= 0 {
		c.UI.StatusDuration = d.UI.StatusDuration
	}
	if c.Clipboard.PollInterval <= 0 {
		c.Clipboard.PollInterval = d.Clipboard.PollInterval
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	return c
}
