package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"render-labs/core"
	"render-labs/math"
	"render-labs/scene"
)

func TestReflectancePresetRoundTrip(t *testing.T) {
	cam := scene.DefaultFlyCamera()
	cam.UpdateOrientation(30, 5)
	cam.Move(scene.Forward, 1)

	params := scene.DefaultParams()
	params.LightIntensity = 2.5
	params.LinkColors = false
	params.ModelColors[2] = core.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	params.Bands = 6

	path := filepath.Join(t.TempDir(), "preset.toml")
	require.NoError(t, SavePreset(path, NewReflectancePreset(cam.Snapshot(), &params)))

	preset, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, PresetVersion, preset.Version)
	assert.Equal(t, "reflectance", preset.Lab)
	assert.Nil(t, preset.Transmittance)

	got := scene.DefaultParams()
	preset.ApplyParams(&got)
	assert.Equal(t, params, got)

	restored := scene.DefaultFlyCamera()
	restored.Restore(preset.CameraSnapshot())
	assert.Equal(t, cam.Snapshot(), restored.Snapshot())
}

func TestSkyboxPresetRoundTrip(t *testing.T) {
	tp := scene.DefaultTransmittanceParams()
	tp.IOR = 1.33
	tp.Spin = false

	path := filepath.Join(t.TempDir(), "sky.toml")
	require.NoError(t, SavePreset(path, NewSkyboxPreset(scene.DefaultFlyCamera().Snapshot(), &tp)))

	preset, err := LoadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, "skybox", preset.Lab)
	assert.Nil(t, preset.Light)

	got := scene.DefaultTransmittanceParams()
	preset.ApplyTransmittance(&got)
	assert.Equal(t, tp, got)
}

func TestLoadPresetClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wild.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
version = "1.0"
lab = "reflectance"

[camera]
position = [0.0, 1.0, 2.0]
yaw = 10.0
pitch = 500.0
zoom = 400.0

[light]
position = [1.0, 2.0, 3.0]
color = [2.0, 0.5, -1.0]
intensity = 99.0

[materials]
roughness = 3.0
bands = 100.0
min_shade = -1.0
shininess = 0.0
specular = 7.0
`), 0o644))

	preset, err := LoadPreset(path)
	require.NoError(t, err)

	p := scene.DefaultParams()
	preset.ApplyParams(&p)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, p.LightPos)
	assert.Equal(t, core.Color{R: 1, G: 0.5, B: 0, A: 1}, p.LightColor)
	assert.Equal(t, scene.MaxIntensity, p.LightIntensity)
	assert.Equal(t, scene.MaxRoughness, p.Roughness)
	assert.Equal(t, scene.MaxBands, p.Bands)
	assert.Equal(t, scene.MinShade, p.MinShade)
	assert.Equal(t, scene.MinShininess, p.Shininess)
	assert.Equal(t, scene.MaxSpecular, p.Specular)
	// absent sections keep their current values
	assert.Equal(t, float32(4), p.Spacing)

	cam := scene.DefaultFlyCamera()
	cam.Restore(preset.CameraSnapshot())
	assert.Equal(t, scene.MaxPitch, cam.Pitch)
	assert.Equal(t, cam.MaxZoom, cam.Zoom)
}

func TestLoadPresetErrors(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "missing.toml"))
	var ioErr *core.IOError
	assert.ErrorAs(t, err, &ioErr)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = \n"), 0o644))
	_, err = LoadPreset(path)
	assert.Error(t, err)
}
