package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glabs.toml")
	content := `
[window]
width = 800
height = 600
vsync = false
fps_limit = 144

[camera]
move_speed = 3.5

[assets]
dir = "../assets"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, s.Window.Width)
	assert.Equal(t, 600, s.Window.Height)
	assert.False(t, s.Window.VSync)
	assert.Equal(t, 144, s.Window.FPSLimit)
	assert.Equal(t, float32(3.5), s.Camera.MoveSpeed)
	// untouched keys keep their defaults
	assert.Equal(t, float32(45), s.Camera.FOV)
	assert.Equal(t, filepath.Join("..", "assets", "objects", "cube.obj"), s.AssetPath("objects", "cube.obj"))
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero width":  "[window]\nwidth = 0\n",
		"bad fov":     "[camera]\nfov = 200.0\n",
		"far < near":  "[camera]\nnear = 10.0\nfar = 1.0\n",
		"empty dir":   "[assets]\ndir = \"\"\n",
		"broken toml": "[window\nwidth = 3",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "glabs.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glabs.toml")
	s := Default()
	s.Render.ClearColor = [3]float32{0.1, 0.2, 0.3}
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Render.ClearColor, loaded.Render.ClearColor)
}

func TestFPSLimitClamp(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(5000)
	assert.Equal(t, 1000, GetFPSLimit())
}

func TestToggleWireframeMode(t *testing.T) {
	defer SetWireframeMode(GetWireframeMode())

	SetWireframeMode(false)
	assert.True(t, ToggleWireframeMode())
	assert.True(t, GetWireframeMode())
	assert.False(t, ToggleWireframeMode())
}
