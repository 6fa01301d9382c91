package input

import "github.com/Carmen-Shannon/oxy-flycam/common"

// NewKeyboardMouseMap creates an input map with the default fly-camera
// bindings for a keyboard and mouse: WASD strafe/forward, Q/E vertical,
// arrow-key look, Shift boost, and the mouse axes on pitch/yaw with a
// max-magnitude policy so keyboard and mouse look input never double-apply.
//
// Parameters:
//   - keyboard: the keyboard device
//   - mouse: the mouse device
//
// Returns:
//   - InputMap: the populated map
func NewKeyboardMouseMap(keyboard *KeyboardDevice, mouse *MouseDevice) InputMap {
	m := NewInputMap("flycam (keyboard/mouse)")

	// Movement.
	m.MapFloat(ControlMoveX, keyboard, common.KeyD, 1)
	m.MapFloat(ControlMoveX, keyboard, common.KeyA, -1)
	m.MapFloat(ControlMoveY, keyboard, common.KeyE, 1)
	m.MapFloat(ControlMoveY, keyboard, common.KeyQ, -1)
	m.MapFloat(ControlMoveZ, keyboard, common.KeyW, 1)
	m.MapFloat(ControlMoveZ, keyboard, common.KeyS, -1)

	// Look.
	m.MapFloat(ControlPitch, keyboard, common.KeyArrowUp, 1)
	m.MapFloat(ControlPitch, keyboard, common.KeyArrowDown, -1)
	m.MapFloat(ControlYaw, keyboard, common.KeyArrowLeft, 1)
	m.MapFloat(ControlYaw, keyboard, common.KeyArrowRight, -1)
	m.MapFloat(ControlPitch, mouse, MouseAxisY, 1)
	m.MapFloat(ControlYaw, mouse, MouseAxisX, 1)
	m.SetPolicy(ControlPitch, PolicyMax)
	m.SetPolicy(ControlYaw, PolicyMax)

	// Modifiers and pointer buttons.
	m.MapBool(ControlBoost, keyboard, common.KeyLeftShift)
	m.MapBool(ControlBoost, keyboard, common.KeyRightShift)
	m.MapBool(ControlPointerPrimary, mouse, MouseButtonLeft)
	m.MapBool(ControlPointerSecondary, mouse, MouseButtonRight)

	return m
}

// NewGamepadMap creates an input map with the default fly-camera bindings
// for a gamepad: left stick strafe/forward, triggers vertical, right stick
// look, stick clicks boost.
//
// Parameters:
//   - pad: the gamepad device
//
// Returns:
//   - InputMap: the populated map
func NewGamepadMap(pad *GamepadDevice) InputMap {
	m := NewInputMap("flycam (pad)")

	// GLFW stick Y axes point down-positive; forward is stick-up.
	m.MapFloat(ControlMoveX, pad, PadAxisLeftX, 1)
	m.MapFloat(ControlMoveZ, pad, PadAxisLeftY, -1)
	// Left trigger moves down, right trigger moves up.
	m.MapFloat(ControlMoveY, pad, PadAxisLeftTrigger, -1)
	m.MapFloat(ControlMoveY, pad, PadAxisRightTrigger, 1)

	m.MapFloat(ControlPitch, pad, PadAxisRightY, -1)
	m.MapFloat(ControlYaw, pad, PadAxisRightX, 1)

	m.MapBool(ControlBoost, pad, PadButtonLeftThumb)
	m.MapBool(ControlBoost, pad, PadButtonRightThumb)

	return m
}
