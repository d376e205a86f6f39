package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"render-labs/core"
	"render-labs/math"
)

// ImGuiPanel implements Panel with cimgui-go immediate-mode widgets.
type ImGuiPanel struct{}

func (ImGuiPanel) Begin(title string) bool { return imgui.Begin(title) }
func (ImGuiPanel) End()                    { imgui.End() }

func (ImGuiPanel) Text(format string, args ...any) {
	imgui.TextUnformatted(fmt.Sprintf(format, args...))
}

func (ImGuiPanel) Separator() { imgui.Separator() }
func (ImGuiPanel) SameLine()  { imgui.SameLine() }

func (ImGuiPanel) Checkbox(label string, v *bool) bool {
	return imgui.Checkbox(label, v)
}

func (ImGuiPanel) SliderFloat(label string, v *float32, min, max float32) bool {
	return imgui.SliderFloat(label, v, min, max)
}

func (ImGuiPanel) DragFloat3(label string, v *math.Vec3, speed float32) bool {
	arr := v.Array()
	changed := imgui.DragFloat3V(label, &arr, speed, 0, 0, "%.3f", 0)
	if changed {
		*v = math.Vec3FromArray(arr)
	}
	return changed
}

func (ImGuiPanel) ColorEdit3(label string, c *core.Color) bool {
	arr := [3]float32{c.R, c.G, c.B}
	changed := imgui.ColorEdit3(label, &arr)
	if changed {
		c.R, c.G, c.B = arr[0], arr[1], arr[2]
	}
	return changed
}

func (ImGuiPanel) Button(label string) bool { return imgui.Button(label) }

func (ImGuiPanel) WantCaptureMouse() bool    { return imgui.CurrentIO().WantCaptureMouse() }
func (ImGuiPanel) WantCaptureKeyboard() bool { return imgui.CurrentIO().WantCaptureKeyboard() }
func (ImGuiPanel) Framerate() float32        { return imgui.CurrentIO().Framerate() }
