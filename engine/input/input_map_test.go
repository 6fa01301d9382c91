package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubDevice is a Device with directly settable values.
type stubDevice struct {
	floats map[uint32]float32
	deltas map[uint32]float32
	bools  map[uint32]bool
}

func newStubDevice() *stubDevice {
	return &stubDevice{
		floats: make(map[uint32]float32),
		deltas: make(map[uint32]float32),
		bools:  make(map[uint32]bool),
	}
}

func (d *stubDevice) Float(code uint32) float32      { return d.floats[code] }
func (d *stubDevice) FloatDelta(code uint32) float32 { return d.deltas[code] }
func (d *stubDevice) Bool(code uint32) bool          { return d.bools[code] }
func (d *stubDevice) EndFrame()                      {}

// TestInputMap_UnboundControlsNeutral verifies every query on a control with
// no bindings returns the neutral value.
func TestInputMap_UnboundControlsNeutral(t *testing.T) {
	m := NewInputMap("empty")

	assert.Equal(t, "empty", m.Name())
	assert.Zero(t, m.GetFloat(ControlMoveX))
	assert.Zero(t, m.GetFloatDelta(ControlPitch))
	assert.False(t, m.GetBool(ControlBoost))
}

// TestInputMap_ScaleAppliesSignAndAmplitude verifies the binding scale
// multiplies the device value, sign included.
func TestInputMap_ScaleAppliesSignAndAmplitude(t *testing.T) {
	dev := newStubDevice()
	m := NewInputMap("test")
	m.MapFloat(ControlMoveZ, dev, 0, -0.5)

	dev.floats[0] = 0.8
	assert.InDelta(t, -0.4, m.GetFloat(ControlMoveZ), 1e-6)

	dev.deltas[0] = 2
	assert.InDelta(t, -1.0, m.GetFloatDelta(ControlMoveZ), 1e-6)
}

// TestInputMap_SumPolicy verifies the default policy adds binding values, so
// opposed bindings on one control cancel.
func TestInputMap_SumPolicy(t *testing.T) {
	dev := newStubDevice()
	m := NewInputMap("test")
	m.MapFloat(ControlMoveX, dev, 0, 1)
	m.MapFloat(ControlMoveX, dev, 1, -1)

	dev.floats[0] = 1
	assert.Equal(t, float32(1), m.GetFloat(ControlMoveX))

	dev.floats[1] = 1
	assert.Equal(t, float32(0), m.GetFloat(ControlMoveX))

	dev.floats[1] = 0.25
	assert.InDelta(t, 0.75, m.GetFloat(ControlMoveX), 1e-6)
}

// TestInputMap_MaxPolicy verifies the max policy keeps the single
// largest-magnitude value, preserving its sign.
func TestInputMap_MaxPolicy(t *testing.T) {
	dev := newStubDevice()
	m := NewInputMap("test")
	m.MapFloat(ControlYaw, dev, 0, 1)
	m.MapFloat(ControlYaw, dev, 1, 1)
	m.SetPolicy(ControlYaw, PolicyMax)

	dev.floats[0] = 0.3
	dev.floats[1] = -0.7
	assert.Equal(t, float32(-0.7), m.GetFloat(ControlYaw))

	dev.floats[0] = 0.9
	assert.Equal(t, float32(0.9), m.GetFloat(ControlYaw))

	// The policy applies to deltas the same way.
	dev.deltas[0] = -5
	dev.deltas[1] = 2
	assert.Equal(t, float32(-5), m.GetFloatDelta(ControlYaw))
}

// TestInputMap_GetBoolAnyBinding verifies a bool control reads true when any
// of its bindings is active.
func TestInputMap_GetBoolAnyBinding(t *testing.T) {
	dev := newStubDevice()
	m := NewInputMap("test")
	m.MapBool(ControlBoost, dev, 0)
	m.MapBool(ControlBoost, dev, 1)

	assert.False(t, m.GetBool(ControlBoost))

	dev.bools[1] = true
	assert.True(t, m.GetBool(ControlBoost))

	dev.bools[0] = true
	assert.True(t, m.GetBool(ControlBoost))

	dev.bools[0] = false
	dev.bools[1] = false
	assert.False(t, m.GetBool(ControlBoost))
}
