// Package config loads jsonchart settings from defaults, a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart"
	"github.com/xinxiaotech/jsonchart-go/pkg/jsonchart/render"
)

// EnvPrefix prefixes every environment override, e.g. JSONCHART_RENDER_FORMAT.
const EnvPrefix = "JSONCHART"

// Config is the full set of jsonchart settings.
type Config struct {
	Render  RenderConfig  `mapstructure:"render"  yaml:"render"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

type RenderConfig struct {
	Format string  `mapstructure:"format" yaml:"format"` // "png", "svg", "xlsx"
	Width  int     `mapstructure:"width"  yaml:"width"`
	Height int     `mapstructure:"height" yaml:"height"`
	DPI    float64 `mapstructure:"dpi"    yaml:"dpi"`
}

type OutputConfig struct {
	Pretty    bool   `mapstructure:"pretty"     yaml:"pretty"`
	ChartsDir string `mapstructure:"charts_dir" yaml:"charts_dir"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "console" or "json"
}

// Load reads jsonchart.yaml from the working directory or ~/.jsonchart when
// present, then applies JSONCHART_* environment overrides.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("jsonchart")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".jsonchart"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFromFile reads settings from an explicit file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := jsonchart.DefaultOptions()

	v.SetDefault("render.format", string(defaults.Format))
	v.SetDefault("render.width", defaults.Width)
	v.SetDefault("render.height", defaults.Height)
	v.SetDefault("render.dpi", 0)

	v.SetDefault("output.pretty", false)
	v.SetDefault("output.charts_dir", "")

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if _, err := render.New(render.Format(c.Render.Format), render.Size{}); err != nil {
		return err
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("invalid size %dx%d", c.Render.Width, c.Render.Height)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q (must be console or json)", c.Logging.Format)
	}
	return nil
}

// Options converts the render settings into pipeline options.
func (c *Config) Options() jsonchart.Options {
	return jsonchart.Options{
		Format: render.Format(c.Render.Format),
		Width:  c.Render.Width,
		Height: c.Render.Height,
		DPI:    c.Render.DPI,
	}
}

// Level returns the configured log level, or warn when it cannot be parsed.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
