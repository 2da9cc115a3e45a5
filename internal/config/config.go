package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magdy/fawkes/tidytodo/internal/todo"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme  string `mapstructure:"theme"`
	Filter string `mapstructure:"filter"`
	// InlineFiltersMinWidth is the terminal width (columns) from which the
	// filter controls sit inline with "Clear Completed".
	InlineFiltersMinWidth int           `mapstructure:"inline_filters_min_width"`
	RemovalDelay          time.Duration `mapstructure:"removal_delay"`
	NoticeDuration        time.Duration `mapstructure:"notice_duration"`
	Markdown              bool          `mapstructure:"markdown"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Level   string `mapstructure:"level"`
}

// The browser layout switched at 1180px; a terminal cell is roughly 10px wide.
const DefaultInlineFiltersMinWidth = 1180 / 10

// Load reads configuration from defaults, an optional TOML file and env.
// Env var overrides use prefix TIDYTODO_. An explicit path must exist.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "light")
	v.SetDefault("ui.filter", "all")
	v.SetDefault("ui.inline_filters_min_width", DefaultInlineFiltersMinWidth)
	v.SetDefault("ui.removal_delay", 300*time.Millisecond)
	v.SetDefault("ui.notice_duration", 3*time.Second)
	v.SetDefault("ui.markdown", true)
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.path", "tidytodo.log")
	v.SetDefault("log.level", "debug")

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("TIDYTODO_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tidytodo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TIDYTODO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values that cannot be repaired silently.
func (c Config) Validate() error {
	if _, _, err := todo.ParseTheme(c.UI.Theme); err != nil {
		return fmt.Errorf("ui.theme: %w", err)
	}
	if _, err := todo.ParseFilter(c.UI.Filter); err != nil {
		return fmt.Errorf("ui.filter: %w", err)
	}
	if c.UI.InlineFiltersMinWidth <= 0 {
		return fmt.Errorf("ui.inline_filters_min_width: must be positive, got %d", c.UI.InlineFiltersMinWidth)
	}
	if c.UI.RemovalDelay < 0 || c.UI.NoticeDuration < 0 {
		return errors.New("ui durations must not be negative")
	}
	return nil
}
