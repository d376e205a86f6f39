package core

// Key is a keyboard key code. The values are GLFW's so the platform layer
// can pass them through unchanged.
type Key int

const (
	KeyUnknown   Key = -1
	KeySpace     Key = 32
	KeyA         Key = 65
	KeyD         Key = 68
	KeyS         Key = 83
	KeyW         Key = 87
	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyDelete    Key = 261
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyPageUp    Key = 266
	KeyPageDown  Key = 267
	KeyHome      Key = 268
	KeyEnd       Key = 269
	KeyF5        Key = 294

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
)

// Action is the state change reported with a key or mouse button event.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// MouseButton indexes the mouse buttons, 0 being the left button.
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)
