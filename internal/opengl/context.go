package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"render-labs/core"
)

// Init loads the OpenGL function pointers and sets the state both labs
// share. Must be called after the GLFW window context is made current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	core.LogInfo("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	core.LogDebug("GLSL version: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	core.LogDebug("renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return nil
}

// SetViewport resizes the OpenGL viewport.
func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color and depth buffers.
func Clear(c core.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Device exposes the frame-level GL state changes as methods so the frame
// loop can be driven without a context in tests.
type Device struct{}

func (Device) SetViewport(width, height int) { SetViewport(width, height) }

func (Device) Clear(c core.Color) { Clear(c) }
