package input

// Physical input codes for the mouse device. Button codes match GLFW mouse
// button values.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseAxisX uint32 = 0 // horizontal cursor axis
	MouseAxisY uint32 = 1 // vertical cursor axis

	MouseButtonLeft   uint32 = 0
	MouseButtonRight  uint32 = 1
	MouseButtonMiddle uint32 = 2
)

// Physical input codes for the gamepad device. Values match the GLFW gamepad
// axis and button indices.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#GamepadAxis
const (
	PadAxisLeftX        uint32 = 0
	PadAxisLeftY        uint32 = 1
	PadAxisRightX       uint32 = 2
	PadAxisRightY       uint32 = 3
	PadAxisLeftTrigger  uint32 = 4
	PadAxisRightTrigger uint32 = 5

	PadButtonLeftThumb  uint32 = 9
	PadButtonRightThumb uint32 = 10
)

// Device is a physical input source queried by InputMap bindings.
// Implementations must be safe for concurrent use: window callbacks feed
// devices from the message pump goroutine while the tick loop reads them.
type Device interface {
	// Float returns the current sustained value of a float input, normalized
	// to [-1, 1]. Relative axes (mouse movement) have no sustained value and
	// report zero; consume them through FloatDelta instead.
	//
	// Parameters:
	//   - code: the physical input code
	//
	// Returns:
	//   - float32: the normalized sustained value, or 0 if the input is unknown
	Float(code uint32) float32

	// FloatDelta returns the raw change of a float input since the last
	// EndFrame call, unsmoothed and unnormalized.
	//
	// Parameters:
	//   - code: the physical input code
	//
	// Returns:
	//   - float32: the per-frame change, or 0 if the input is unknown
	FloatDelta(code uint32) float32

	// Bool returns whether a button input is currently held.
	//
	// Parameters:
	//   - code: the physical input code
	//
	// Returns:
	//   - bool: true while the input is active
	Bool(code uint32) bool

	// EndFrame latches per-frame deltas and frame state. Call once per
	// simulation frame, after the frame's input has been consumed.
	EndFrame()
}
