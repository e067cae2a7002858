package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-exercises/scene"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4000, cfg.Particles.Capacity)
	assert.Equal(t, 40, cfg.Particles.Ring.Count)
	assert.Equal(t, scene.Room, cfg.Portal.Background)
	assert.Equal(t, scene.Forest, cfg.Portal.View)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
debug = true

[window]
title = "Portal"

[particles]
capacity = 256
layout = "rotated"

[particles.ring]
angular_speed_deg = 90.0

[portal]
background = "scary"
view = "Room"
`))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "Portal", cfg.Window.Title)
	assert.Equal(t, 1024, cfg.Window.Width, "unset keys keep their defaults")
	assert.Equal(t, 256, cfg.Particles.Capacity)
	assert.Equal(t, "rotated", cfg.Particles.Layout)
	assert.Equal(t, float32(90), cfg.Particles.Ring.AngularSpeedDeg)
	assert.Equal(t, 40, cfg.Particles.Ring.Count)
	assert.Equal(t, scene.Scary, cfg.Portal.Background)
	assert.Equal(t, scene.Room, cfg.Portal.View)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":        "[particles]\ncapacty = 10\n",
		"zero capacity":      "[particles]\ncapacity = 0\n",
		"bad layout":         "[particles]\nlayout = \"soa\"\n",
		"unknown background": "[portal]\nbackground = \"beach\"\n",
		"empty background":   "[portal]\nview = \"\"\n",
		"bad grid":           "[terrain]\ngrid_x = -1\n",
		"syntax":             "[particles\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadAndEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Particles.Capacity = 99
	cfg.Portal.View = scene.Scary

	data, err := cfg.Encode()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestShippedConfigParses(t *testing.T) {
	_, err := Load(filepath.Join("..", "assets", "config.toml"))
	require.NoError(t, err)
}
