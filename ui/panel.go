// Package ui builds the lab control panels on top of Dear ImGui.
package ui

import (
	"render-labs/core"
	"render-labs/math"
)

// Panel is the widget vocabulary the labs draw their controls with. Widget
// methods return true when the user changed the bound value this frame.
type Panel interface {
	Begin(title string) bool
	End()

	Text(format string, args ...any)
	Separator()
	SameLine()

	Checkbox(label string, v *bool) bool
	SliderFloat(label string, v *float32, min, max float32) bool
	DragFloat3(label string, v *math.Vec3, speed float32) bool
	ColorEdit3(label string, c *core.Color) bool
	Button(label string) bool

	WantCaptureMouse() bool
	WantCaptureKeyboard() bool
	Framerate() float32
}
