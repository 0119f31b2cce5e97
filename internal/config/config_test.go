package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/csslogo"
	"honnef.co/go/csslogo/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, "logo.yaml", `
w1: 20
t3: 30.5
fg: black
title: CSS
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := csslogo.DefaultConfig(csslogo.Centered240)
	want.W1 = 20
	want.T3 = 30.5
	want.Foreground = "black"
	want.Title = "CSS"
	assert.Equal(t, want, cfg)
}

func TestLoadProfileSelectsDefaults(t *testing.T) {
	path := writeFile(t, "logo.yml", "profile: topleft1000\nr: 0\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := csslogo.DefaultConfig(csslogo.TopLeft1000)
	want.Radius = 0
	assert.Equal(t, want, cfg)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "logo.json", `{"bg": "#1b1b1b", "k": 30, "profile": "centered240"}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "#1b1b1b", cfg.Background)
	assert.Equal(t, 30.0, cfg.Kerning)
	assert.Equal(t, 18.0, cfg.W1)
}

func TestLoadEmpty(t *testing.T) {
	for _, name := range []string{"empty.json", "empty.yaml"} {
		cfg, err := config.Load(writeFile(t, name, ""))
		require.NoError(t, err, name)
		assert.Equal(t, csslogo.DefaultConfig(csslogo.Centered240), cfg, name)
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(writeFile(t, "logo.toml", "w1 = 3"))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "unknown.yaml", "width: 3\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "unknown.json", `{"width": 3}`))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "profile.json", `{"profile": "a4"}`))
	assert.ErrorIs(t, err, csslogo.ErrUnknownProfile)

	_, err = config.Load(writeFile(t, "profile.yaml", "profile: a4\n"))
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := csslogo.DefaultConfig(csslogo.TopLeft1000)
	cfg.ID = "css-dark"
	cfg.Title = "CSS"
	for _, format := range []config.Format{config.JSON, config.YAML} {
		var buf bytes.Buffer
		require.NoError(t, config.Encode(&buf, cfg, format))
		got, err := config.Decode(buf.Bytes(), format)
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	}
}

func TestFormatOf(t *testing.T) {
	f, err := config.FormatOf("a/b/LOGO.YML")
	require.NoError(t, err)
	assert.Equal(t, config.YAML, f)

	_, err = config.FormatOf("logo")
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

func TestLoadOver(t *testing.T) {
	path := writeFile(t, "logo.yaml", "profile: centered240\nfg: black\n")
	base := csslogo.DefaultConfig(csslogo.TopLeft1000)
	cfg, err := config.LoadOver(path, base)
	require.NoError(t, err)

	// The file's profile key is applied, but the geometry stays with base.
	assert.Equal(t, csslogo.Centered240, cfg.Profile)
	assert.Equal(t, base.W1, cfg.W1)
	assert.Equal(t, "black", cfg.Foreground)
}
