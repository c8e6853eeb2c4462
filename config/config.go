// SPDX-License-Identifier: MIT

// Package config loads draftheat settings from a config file, DRAFTHEAT_*
// environment variables and command-line flags (bound by the caller), in
// viper's usual precedence: flag > env > file > default.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/draftheat/heatmap"
	"github.com/katalvlaran/draftheat/scale"
	"github.com/katalvlaran/draftheat/winrate"
)

// Names used to locate the config file and environment variables.
const (
	FileName  = "draftheat"
	EnvPrefix = "DRAFTHEAT"
)

// Keys.
const (
	KeyAugmentation   = "render.augmentation"
	KeyWidth          = "render.width"
	KeyHeight         = "render.height"
	KeyReference      = "render.reference"
	KeyStrict         = "render.strict"
	KeyRowSeparator   = "input.row_separator"
	KeyValueSeparator = "input.value_separator"
	KeyHTTPAddr       = "http.addr"
	KeyCORSOrigins    = "http.cors_origins"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the fully resolved configuration.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Input  InputConfig  `mapstructure:"input"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Log    LogConfig    `mapstructure:"log"`
}

type RenderConfig struct {
	Augmentation string  `mapstructure:"augmentation"`
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	Reference    float64 `mapstructure:"reference"`
	Strict       bool    `mapstructure:"strict"`
}

type InputConfig struct {
	RowSeparator   string `mapstructure:"row_separator"`
	ValueSeparator string `mapstructure:"value_separator"`
}

type HTTPConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers every key with its default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAugmentation, heatmap.AugmentationEnabled.String())
	v.SetDefault(KeyWidth, heatmap.DefaultWidth)
	v.SetDefault(KeyHeight, heatmap.DefaultHeight)
	v.SetDefault(KeyReference, scale.DefaultReference)
	v.SetDefault(KeyStrict, false)
	v.SetDefault(KeyRowSeparator, winrate.DefaultRowSeparator)
	v.SetDefault(KeyValueSeparator, winrate.DefaultValueSeparator)
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyCORSOrigins, []string{"*"})
	v.SetDefault(KeyLogLevel, zerolog.LevelInfoValue)
	v.SetDefault(KeyLogFormat, LogFormatConsole)
}

// NewViper returns a viper instance with defaults and environment binding.
// When file is empty, draftheat.{yaml,toml,json} is looked up in the working
// directory and in $HOME/.draftheat; a missing file is not an error.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.draftheat")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every field; the first problem is returned.
func (c Config) Validate() error {
	if _, err := heatmap.ParseAugmentation(c.Render.Augmentation); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyAugmentation, err)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("%w: render size %dx%d must be positive", ErrInvalid, c.Render.Width, c.Render.Height)
	}
	if math.IsNaN(c.Render.Reference) || math.IsInf(c.Render.Reference, 0) {
		return fmt.Errorf("%w: %s must be finite", ErrInvalid, KeyReference)
	}
	if c.Input.RowSeparator == "" || c.Input.ValueSeparator == "" {
		return fmt.Errorf("%w: grid separators must not be empty", ErrInvalid)
	}
	if c.Input.RowSeparator == c.Input.ValueSeparator {
		return fmt.Errorf("%w: row and value separators are both %q", ErrInvalid, c.Input.RowSeparator)
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalid, KeyHTTPAddr)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}
	if c.Log.Format != LogFormatConsole && c.Log.Format != LogFormatJSON {
		return fmt.Errorf("%w: %s %q (want %s or %s)", ErrInvalid, KeyLogFormat, c.Log.Format, LogFormatConsole, LogFormatJSON)
	}

	return nil
}

// PipelineOptions translates the render and input sections into heatmap options.
func (c Config) PipelineOptions() []heatmap.Option {
	aug, _ := heatmap.ParseAugmentation(c.Render.Augmentation)

	return []heatmap.Option{
		heatmap.WithAugmentation(aug),
		heatmap.WithReference(c.Render.Reference),
		heatmap.WithStrictRange(c.Render.Strict),
		heatmap.WithSize(c.Render.Width, c.Render.Height),
		heatmap.WithSeparators(c.Input.RowSeparator, c.Input.ValueSeparator),
	}
}
