package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"render-labs/core"
)

var keyMap = map[core.Key]imgui.Key{
	core.KeyTab:          imgui.KeyTab,
	core.KeyLeft:         imgui.KeyLeftArrow,
	core.KeyRight:        imgui.KeyRightArrow,
	core.KeyUp:           imgui.KeyUpArrow,
	core.KeyDown:         imgui.KeyDownArrow,
	core.KeyPageUp:       imgui.KeyPageUp,
	core.KeyPageDown:     imgui.KeyPageDown,
	core.KeyHome:         imgui.KeyHome,
	core.KeyEnd:          imgui.KeyEnd,
	core.KeyDelete:       imgui.KeyDelete,
	core.KeyBackspace:    imgui.KeyBackspace,
	core.KeyEnter:        imgui.KeyEnter,
	core.KeyEscape:       imgui.KeyEscape,
	core.KeySpace:        imgui.KeySpace,
	core.KeyA:            imgui.KeyA,
	core.KeyD:            imgui.KeyD,
	core.KeyS:            imgui.KeyS,
	core.KeyW:            imgui.KeyW,
	core.KeyLeftShift:    imgui.KeyLeftShift,
	core.KeyRightShift:   imgui.KeyRightShift,
	core.KeyLeftControl:  imgui.KeyLeftCtrl,
	core.KeyRightControl: imgui.KeyRightCtrl,
	core.KeyLeftAlt:      imgui.KeyLeftAlt,
	core.KeyRightAlt:     imgui.KeyRightAlt,
	core.KeyLeftSuper:    imgui.KeyLeftSuper,
	core.KeyRightSuper:   imgui.KeyRightSuper,
}

// imguiKey translates a window key code to ImGui's key enum.
func imguiKey(k core.Key) (imgui.Key, bool) {
	key, ok := keyMap[k]
	return key, ok
}
