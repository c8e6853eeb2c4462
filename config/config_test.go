// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/draftheat/config"
	"github.com/katalvlaran/draftheat/heatmap"
)

func TestLoad_Defaults(t *testing.T) {
	v, err := config.NewViper("")
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	require.Equal(t, "enabled", c.Render.Augmentation)
	require.Equal(t, heatmap.DefaultWidth, c.Render.Width)
	require.Equal(t, heatmap.DefaultHeight, c.Render.Height)
	require.Equal(t, 50.0, c.Render.Reference)
	require.False(t, c.Render.Strict)
	require.Equal(t, ";", c.Input.RowSeparator)
	require.Equal(t, ",", c.Input.ValueSeparator)
	require.Equal(t, ":8080", c.HTTP.Addr)
	require.Equal(t, []string{"*"}, c.HTTP.CORSOrigins)
	require.Equal(t, "info", c.Log.Level)
	require.Equal(t, config.LogFormatConsole, c.Log.Format)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "draftheat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"render:",
		"  augmentation: disabled",
		"  width: 1024",
		"http:",
		"  cors_origins: [\"https://dotabuff.com\"]",
		"log:",
		"  format: json",
	}, "\n")), 0o600))

	t.Setenv("DRAFTHEAT_RENDER_WIDTH", "1200")
	t.Setenv("DRAFTHEAT_LOG_LEVEL", "debug")

	v, err := config.NewViper(path)
	require.NoError(t, err)
	c, err := config.Load(v)
	require.NoError(t, err)

	require.Equal(t, "disabled", c.Render.Augmentation)
	require.Equal(t, 1200, c.Render.Width) // env beats file
	require.Equal(t, heatmap.DefaultHeight, c.Render.Height)
	require.Equal(t, []string{"https://dotabuff.com"}, c.HTTP.CORSOrigins)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, config.LogFormatJSON, c.Log.Format)

	p := heatmap.New(c.PipelineOptions()...)
	require.Equal(t, heatmap.AugmentationDisabled, p.Augmentation)
	require.Equal(t, 1200, p.Width)
}

func TestNewViper_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.NewViper(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() config.Config {
		return config.Config{
			Render: config.RenderConfig{Augmentation: "enabled", Width: 10, Height: 10, Reference: 50},
			Input:  config.InputConfig{RowSeparator: ";", ValueSeparator: ","},
			HTTP:   config.HTTPConfig{Addr: ":0"},
			Log:    config.LogConfig{Level: "info", Format: "console"},
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(*config.Config){
		"augmentation": func(c *config.Config) { c.Render.Augmentation = "sometimes" },
		"width":        func(c *config.Config) { c.Render.Width = 0 },
		"separators":   func(c *config.Config) { c.Input.ValueSeparator = ";" },
		"empty sep":    func(c *config.Config) { c.Input.RowSeparator = "" },
		"addr":         func(c *config.Config) { c.HTTP.Addr = "" },
		"level":        func(c *config.Config) { c.Log.Level = "loud" },
		"format":       func(c *config.Config) { c.Log.Format = "xml" },
	}
	for name, mutate := range cases {
		c := valid()
		mutate(&c)
		require.ErrorIs(t, c.Validate(), config.ErrInvalid, name)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := config.LogConfig{Level: "warn", Format: config.LogFormatJSON}.NewLogger(&buf)
	require.NoError(t, err)
	l.Info().Msg("hidden")
	l.Warn().Str("k", "v").Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"k":"v"`)

	buf.Reset()
	l, err = config.LogConfig{Level: "info", Format: config.LogFormatConsole}.NewLogger(&buf)
	require.NoError(t, err)
	l.Info().Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.NotContains(t, buf.String(), `"message"`)

	_, err = config.LogConfig{Level: "loud"}.NewLogger(&buf)
	require.Error(t, err)
}
