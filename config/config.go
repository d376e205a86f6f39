// Package config loads the viewer settings from an optional TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"render-labs/scene"
)

// DefaultPath is the file read when no -config flag is given.
const DefaultPath = "lab.toml"

// Lab selects which viewer's defaults to start from.
type Lab int

const (
	Reflectance Lab = iota
	Skybox
)

func (l Lab) String() string {
	switch l {
	case Reflectance:
		return "reflectance"
	case Skybox:
		return "skybox"
	}
	return "unknown"
}

type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Render RenderConfig `toml:"render"`
	Assets AssetsConfig `toml:"assets"`
	Log    LogConfig    `toml:"log"`
	Watch  WatchConfig  `toml:"watch"`
}

type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	VSync     bool   `toml:"vsync"`
	Resizable bool   `toml:"resizable"`
	// Fullscreen opens the window on the primary monitor.
	Fullscreen bool `toml:"fullscreen"`
}

type CameraConfig struct {
	Position    [3]float32 `toml:"position"`
	Yaw         float32    `toml:"yaw"`
	Pitch       float32    `toml:"pitch"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	Zoom        float32    `toml:"zoom"`
	MinZoom     float32    `toml:"min_zoom"`
	MaxZoom     float32    `toml:"max_zoom"`
}

type RenderConfig struct {
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
	ClearColor [3]float32 `toml:"clear_color"`
	// MaxDelta caps the frame delta in seconds after a stall.
	MaxDelta float64 `toml:"max_delta"`
}

type AssetsConfig struct {
	ShaderDir string `toml:"shader_dir"`
	// Model is an .obj/.gltf/.glb path or a primitive name (sphere, torus, cube).
	Model       string    `toml:"model"`
	SkyboxFaces [6]string `toml:"skybox_faces"`
	Preset      string    `toml:"preset"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type WatchConfig struct {
	Enabled bool `toml:"enabled"`
}

// Default returns the compiled-in settings for lab.
func Default(lab Lab) Config {
	cam := scene.DefaultFlyCamera()
	cfg := Config{
		Window: WindowConfig{
			Width:     1920,
			Height:    1080,
			VSync:     true,
			Resizable: true,
		},
		Camera: CameraConfig{
			Position:    cam.Position.Array(),
			Yaw:         cam.Yaw,
			Pitch:       cam.Pitch,
			Speed:       cam.Speed,
			Sensitivity: cam.Sensitivity,
			Zoom:        cam.Zoom,
			MinZoom:     cam.MinZoom,
			MaxZoom:     cam.MaxZoom,
		},
		Render: RenderConfig{
			Near:       0.1,
			ClearColor: [3]float32{0.1, 0.1, 0.15},
			MaxDelta:   0.25,
		},
		Assets: AssetsConfig{
			ShaderDir: filepath.Join("assets", "shaders"),
		},
		Log:   LogConfig{Level: "info"},
		Watch: WatchConfig{Enabled: true},
	}

	switch lab {
	case Reflectance:
		cfg.Window.Title = "Lab 1 - Reflectance Models"
		cfg.Render.Far = 1000
		cfg.Assets.Model = filepath.Join("assets", "models", "torus_knot.obj")
		cfg.Assets.Preset = "reflectance-preset.toml"
	case Skybox:
		cfg.Window.Title = "Desert Colony"
		cfg.Render.Far = 100
		cfg.Assets.Model = "sphere"
		for i := range cfg.Assets.SkyboxFaces {
			cfg.Assets.SkyboxFaces[i] = filepath.Join("assets", "skybox", scene.FaceName(i)+".png")
		}
		cfg.Assets.Preset = "skybox-preset.toml"
	}
	return cfg
}

// Load reads path over the defaults of lab. A missing file yields the
// defaults; a malformed file or unknown key is an error.
func Load(path string, lab Lab) (Config, error) {
	cfg := Default(lab)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Default(lab), fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(lab), fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the viewers cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Render.Near <= 0 || c.Render.Far <= c.Render.Near {
		errs = append(errs, fmt.Errorf("clip planes near=%g far=%g: need 0 < near < far", c.Render.Near, c.Render.Far))
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom || c.Camera.MaxZoom >= 180 {
		errs = append(errs, fmt.Errorf("zoom bounds [%g, %g] out of range", c.Camera.MinZoom, c.Camera.MaxZoom))
	}
	if c.Render.MaxDelta < 0 {
		errs = append(errs, fmt.Errorf("max_delta %g must not be negative", c.Render.MaxDelta))
	}
	return errors.Join(errs...)
}

// Save writes c as TOML.
func Save(path string, c Config) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// NewCamera builds the start camera described by the [camera] section.
func (c *Config) NewCamera() *scene.FlyCamera {
	cam := scene.DefaultFlyCamera()
	cam.Speed = c.Camera.Speed
	cam.Sensitivity = c.Camera.Sensitivity
	cam.MinZoom = c.Camera.MinZoom
	cam.MaxZoom = c.Camera.MaxZoom
	cam.Restore(scene.CameraSnapshot{
		Position: c.Camera.Position,
		Yaw:      c.Camera.Yaw,
		Pitch:    c.Camera.Pitch,
		Zoom:     c.Camera.Zoom,
	})
	return cam
}

// ShaderPath joins name onto the shader directory.
func (c *Config) ShaderPath(name string) string {
	return filepath.Join(c.Assets.ShaderDir, name)
}
