package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// defaultDeadZone is the stick magnitude below which axis input is dropped.
const defaultDeadZone float32 = 0.15

// GamepadDevice reads a single GLFW joystick slot. The slot is explicit
// configuration; a disconnected or non-gamepad slot reports neutral values
// for every input.
//
// GLFW restricts joystick queries to the main thread, so polling and reading
// are split: Poll queries GLFW and must run on the message pump thread (wire
// it through the window's update callback), while EndFrame latches the most
// recent poll for the tick goroutine.
//
// GLFW reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Joystick
type GamepadDevice struct {
	mu sync.Mutex

	slot     glfw.Joystick
	deadZone float32

	// Pending state written by Poll on the pump thread.
	polledAxes    [6]float32
	polledButtons [15]bool

	// Frame state latched by EndFrame on the tick goroutine.
	axes     [6]float32
	prevAxes [6]float32
	buttons  [15]bool
}

var _ Device = &GamepadDevice{}

// GamepadDeviceOption is a functional option for configuring a GamepadDevice.
type GamepadDeviceOption func(*GamepadDevice)

// WithDeadZone sets the stick dead zone magnitude.
//
// Parameters:
//   - deadZone: magnitude below which stick axes read as zero
//
// Returns:
//   - GamepadDeviceOption: option function to apply
func WithDeadZone(deadZone float32) GamepadDeviceOption {
	return func(g *GamepadDevice) {
		g.deadZone = deadZone
	}
}

// NewGamepadDevice creates a gamepad device reading the given joystick slot.
// The device holds no GLFW resources; Poll queries the slot's current state.
//
// Parameters:
//   - slot: the GLFW joystick slot to poll (glfw.Joystick1 for the first pad)
//   - options: functional options to configure the device
//
// Returns:
//   - *GamepadDevice: the newly created device
func NewGamepadDevice(slot glfw.Joystick, options ...GamepadDeviceOption) *GamepadDevice {
	g := &GamepadDevice{
		slot:     slot,
		deadZone: defaultDeadZone,
	}
	for _, option := range options {
		option(g)
	}
	return g
}

func (g *GamepadDevice) Float(code uint32) float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if int(code) >= len(g.axes) {
		return 0
	}
	return g.axes[code]
}

func (g *GamepadDevice) FloatDelta(code uint32) float32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if int(code) >= len(g.axes) {
		return 0
	}
	return g.axes[code] - g.prevAxes[code]
}

func (g *GamepadDevice) Bool(code uint32) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if int(code) >= len(g.buttons) {
		return false
	}
	return g.buttons[code]
}

// Poll queries the joystick slot and stores its state as the pending polled
// values. Joystick queries are main-thread-only in GLFW, so Poll must run on
// the message pump thread; the window's update callback is the natural home.
func (g *GamepadDevice) Poll() {
	if !g.slot.Present() || !g.slot.IsGamepad() {
		g.ingest(nil)
		return
	}
	g.ingest(g.slot.GetGamepadState())
}

// ingest normalizes a raw gamepad state into the pending polled values.
// Stick axes get the dead zone applied; triggers are remapped from GLFW's
// [-1, 1] resting-at--1 convention to [0, 1]. A nil state reads as neutral.
func (g *GamepadDevice) ingest(state *glfw.GamepadState) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if state == nil {
		g.polledAxes = [6]float32{}
		g.polledButtons = [15]bool{}
		return
	}

	for i, v := range state.Axes {
		switch uint32(i) {
		case PadAxisLeftTrigger, PadAxisRightTrigger:
			g.polledAxes[i] = (v + 1) / 2
		default:
			if v > -g.deadZone && v < g.deadZone {
				v = 0
			}
			g.polledAxes[i] = v
		}
	}
	for i, a := range state.Buttons {
		g.polledButtons[i] = a == glfw.Press
	}
}

// EndFrame latches the most recently polled state as the frame's axis and
// button values.
func (g *GamepadDevice) EndFrame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prevAxes = g.axes
	g.axes = g.polledAxes
	g.buttons = g.polledButtons
}
