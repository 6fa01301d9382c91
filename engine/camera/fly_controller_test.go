package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
)

// fakeCamera records the transform calls the controller makes. The embedded
// interface satisfies the methods the controller never touches.
type fakeCamera struct {
	Camera

	translation [3]float32
	rotation    [4]float32
	lastDelta   [3]float32

	translateCalls   int
	setRotationCalls int
}

func (f *fakeCamera) Translate(x, y, z float32) {
	f.lastDelta = [3]float32{x, y, z}
	f.translation[0] += x
	f.translation[1] += y
	f.translation[2] += z
	f.translateCalls++
}

func (f *fakeCamera) SetTranslation(x, y, z float32) {
	f.translation = [3]float32{x, y, z}
}

func (f *fakeCamera) SetRotation(q [4]float32) {
	f.rotation = q
	f.setRotationCalls++
}

// scriptDevice is an input.Device with directly settable values.
type scriptDevice struct {
	floats map[uint32]float32
	deltas map[uint32]float32
	bools  map[uint32]bool
}

func newScriptDevice() *scriptDevice {
	return &scriptDevice{
		floats: make(map[uint32]float32),
		deltas: make(map[uint32]float32),
		bools:  make(map[uint32]bool),
	}
}

func (d *scriptDevice) Float(code uint32) float32      { return d.floats[code] }
func (d *scriptDevice) FloatDelta(code uint32) float32 { return d.deltas[code] }
func (d *scriptDevice) Bool(code uint32) bool          { return d.bools[code] }
func (d *scriptDevice) EndFrame()                      {}

// Physical codes used by the test devices below. Values are arbitrary; the
// map layer is what gives them meaning.
const (
	codeMoveX uint32 = iota
	codeMoveY
	codeMoveZ
	codePitch
	codeYaw
	codeBoost
	codeAim
)

// newTestRig wires one scripted device to every control on a fresh map and
// hands back the device, the map, and a fake camera.
func newTestRig() (*scriptDevice, input.InputMap, *fakeCamera) {
	dev := newScriptDevice()
	m := input.NewInputMap("test")
	m.MapFloat(input.ControlMoveX, dev, codeMoveX, 1)
	m.MapFloat(input.ControlMoveY, dev, codeMoveY, 1)
	m.MapFloat(input.ControlMoveZ, dev, codeMoveZ, 1)
	m.MapFloat(input.ControlPitch, dev, codePitch, 1)
	m.MapFloat(input.ControlYaw, dev, codeYaw, 1)
	m.MapBool(input.ControlBoost, dev, codeBoost)
	m.MapBool(input.ControlPointerPrimary, dev, codeAim)
	return dev, m, &fakeCamera{}
}

// TestNewFlyController_NilCameraPanics verifies the required-argument guard.
func TestNewFlyController_NilCameraPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewFlyController(nil)
	})
}

// TestFlyController_ResetView verifies the canonical pose: zeroed channel
// states, pitch 0, yaw 90, and the reset translation pushed to the camera.
func TestFlyController_ResetView(t *testing.T) {
	dev, m, cam := newTestRig()
	fc := NewFlyController(cam, WithInputMap(m)).(*flyControllerImpl)

	// Dirty the state first so the reset has something to undo.
	dev.floats[codeMoveZ] = 1
	dev.floats[codePitch] = 1
	for i := 0; i < 30; i++ {
		require.NoError(t, fc.Update(1.0/60.0))
	}
	require.NotZero(t, fc.moveZ)
	require.NotZero(t, fc.Pitch())

	fc.ResetView()

	assert.Zero(t, fc.moveX)
	assert.Zero(t, fc.moveY)
	assert.Zero(t, fc.moveZ)
	assert.Zero(t, fc.pitchRate)
	assert.Zero(t, fc.yawRate)
	assert.Equal(t, float32(0), fc.Pitch())
	assert.Equal(t, float32(90), fc.Yaw())
	assert.Equal(t, [3]float32{0, 1.5, 0.25}, cam.translation)

	want := common.QuaternionFromPitchYaw(0, common.DegToRad(90))
	for i := range want {
		assert.InDelta(t, want[i], cam.rotation[i], 1e-6)
	}
}

// TestFlyController_MovementSmoothing runs one frame of full forward input at
// 60 Hz without boost. The raw frame delta is 1 * 10 * 0.1 * (1/60), and the
// first smoothed output is 40% of that (the fast decay branch).
func TestFlyController_MovementSmoothing(t *testing.T) {
	dev, m, cam := newTestRig()
	fc := NewFlyController(cam, WithInputMap(m)).(*flyControllerImpl)

	dev.floats[codeMoveZ] = 1
	require.NoError(t, fc.Update(1.0/60.0))

	raw := float32(1.0) * 10.0 * 0.1 * (1.0 / 60.0)
	assert.InDelta(t, 0.4*raw, fc.moveZ, 1e-6)
	assert.InDelta(t, 0.4*raw, cam.lastDelta[2], 1e-6)
	assert.Zero(t, cam.lastDelta[0])
	assert.Zero(t, cam.lastDelta[1])
}

// TestFlyController_BoostScalesMovement verifies holding boost multiplies the
// movement delta by ten relative to the unboosted frame.
func TestFlyController_BoostScalesMovement(t *testing.T) {
	dev, m, cam := newTestRig()
	fc := NewFlyController(cam, WithInputMap(m)).(*flyControllerImpl)

	dev.floats[codeMoveX] = 1
	require.NoError(t, fc.Update(1.0/60.0))
	slow := cam.lastDelta[0]

	fc.ResetView()
	dev.bools[codeBoost] = true
	require.NoError(t, fc.Update(1.0/60.0))
	fast := cam.lastDelta[0]

	assert.InDelta(t, 10.0, float64(fast/slow), 1e-4)
}

// TestFlyController_BoostFromAnyMap verifies boost held on one map scales
// movement driven by another.
func TestFlyController_BoostFromAnyMap(t *testing.T) {
	moveDev, moveMap, cam := newTestRig()

	boostDev := newScriptDevice()
	boostMap := input.NewInputMap("boost-only")
	boostMap.MapBool(input.ControlBoost, boostDev, codeBoost)

	fc := NewFlyController(cam, WithInputMap(moveMap), WithInputMap(boostMap)).(*flyControllerImpl)

	moveDev.floats[codeMoveX] = 1
	require.NoError(t, fc.Update(1.0/60.0))
	slow := cam.lastDelta[0]

	fc.ResetView()
	boostDev.bools[codeBoost] = true
	require.NoError(t, fc.Update(1.0/60.0))
	fast := cam.lastDelta[0]

	assert.InDelta(t, 10.0, float64(fast/slow), 1e-4)
}

// TestFlyController_PitchClampsAtVertical drives full upward look with boost
// for far longer than it takes to reach vertical and checks the accumulator
// never passes 90 and lands exactly on it.
func TestFlyController_PitchClampsAtVertical(t *testing.T) {
	dev, m, cam := newTestRig()
	fc := NewFlyController(cam, WithInputMap(m)).(*flyControllerImpl)

	dev.floats[codePitch] = 1
	dev.bools[codeBoost] = true

	// 180 deg/s of look for 5 simulated seconds.
	for i := 0; i < 300; i++ {
		require.NoError(t, fc.Update(1.0/60.0))
		require.LessOrEqual(t, fc.Pitch(), float32(90))
	}
	assert.Equal(t, float32(90), fc.Pitch())

	// And the same on the way down.
	dev.floats[codePitch] = -1
	for i := 0; i < 600; i++ {
		require.NoError(t, fc.Update(1.0/60.0))
		require.GreaterOrEqual(t, fc.Pitch(), float32(-90))
	}
	assert.Equal(t, float32(-90), fc.Pitch())
}

// TestFlyController_YawAccumulatesUnbounded verifies yaw keeps winding past a
// full turn instead of wrapping or clamping.
func TestFlyController_YawAccumulatesUnbounded(t *testing.T) {
	dev, m, cam := newTestRig()
	fc := NewFlyController(cam, WithInputMap(m)).(*flyControllerImpl)

	dev.floats[codeYaw] = 1
	dev.bools[codeBoost] = true

	// 180 deg/s for 4 simulated seconds covers two full turns once the
	// filter has spun up.
	for i := 0; i < 240; i++ {
		require.NoError(t, fc.Update(1.0/60.0))
	}
	assert.Greater(t, fc.Yaw(), float32(450))
}

// TestFlyController_PointerBypass verifies the held-button pointer path adds
// the raw delta scaled by mouse sensitivity and rotation scale, with no
// smoothing. At dt=0 the smoothed channels contribute nothing, isolating the
// bypass: 10 px * 0.1 deg/px * 0.5 = 0.5 degrees.
func TestFlyController_PointerBypass(t *testing.T) {
	dev, m, cam := newTestRig()
	fc := NewFlyController(cam, WithInputMap(m)).(*flyControllerImpl)

	dev.deltas[codePitch] = 10
	dev.deltas[codeYaw] = 4

	// Button up: pointer deltas are ignored entirely.
	require.NoError(t, fc.Update(0))
	assert.Zero(t, fc.Pitch())
	assert.Equal(t, float32(90), fc.Yaw())

	// Button down: raw deltas apply immediately.
	dev.bools[codeAim] = true
	require.NoError(t, fc.Update(0))
	assert.InDelta(t, 0.5, fc.Pitch(), 1e-6)
	assert.InDelta(t, 90+4*0.1*0.5, fc.Yaw(), 1e-6)

	// Boost lifts the rotation scale to 1.
	fc.ResetView()
	dev.bools[codeBoost] = true
	require.NoError(t, fc.Update(0))
	assert.InDelta(t, 1.0, fc.Pitch(), 1e-6)
}

// TestFlyController_InverseY verifies the vertical flip applies to the final
// pitch delta, bypass included, and leaves yaw alone.
func TestFlyController_InverseY(t *testing.T) {
	dev, m, cam := newTestRig()
	fc := NewFlyController(cam, WithInputMap(m), WithInverseY(true)).(*flyControllerImpl)

	require.True(t, fc.InverseY())

	dev.deltas[codePitch] = 10
	dev.deltas[codeYaw] = 4
	dev.bools[codeAim] = true

	require.NoError(t, fc.Update(0))
	assert.InDelta(t, -0.5, fc.Pitch(), 1e-6)
	assert.InDelta(t, 90+4*0.1*0.5, fc.Yaw(), 1e-6)
}

// TestFlyController_InvalidFrameTime verifies negative and non-finite frame
// times are rejected without touching the controller or the camera.
func TestFlyController_InvalidFrameTime(t *testing.T) {
	dev, m, cam := newTestRig()
	fc := NewFlyController(cam, WithInputMap(m)).(*flyControllerImpl)

	dev.floats[codeMoveZ] = 1
	dev.floats[codePitch] = 1

	rotationsBefore := cam.setRotationCalls
	for _, dt := range []float32{
		-1.0 / 60.0,
		float32(math.NaN()),
		float32(math.Inf(1)),
		float32(math.Inf(-1)),
	} {
		err := fc.Update(dt)
		require.ErrorIs(t, err, ErrInvalidFrameTime)
	}

	assert.Zero(t, fc.moveZ)
	assert.Zero(t, fc.pitchRate)
	assert.Equal(t, float32(0), fc.Pitch())
	assert.Equal(t, float32(90), fc.Yaw())
	assert.Zero(t, cam.translateCalls)
	assert.Equal(t, rotationsBefore, cam.setRotationCalls)
}

// TestFlyController_MovementSumsAcrossMaps verifies movement input stacks
// across maps while look keeps the largest magnitude per map policy.
func TestFlyController_MovementSumsAcrossMaps(t *testing.T) {
	devA, mapA, cam := newTestRig()

	devB := newScriptDevice()
	mapB := input.NewInputMap("second")
	mapB.MapFloat(input.ControlMoveZ, devB, codeMoveZ, 1)

	fc := NewFlyController(cam, WithInputMap(mapA), WithInputMap(mapB)).(*flyControllerImpl)

	devA.floats[codeMoveZ] = 0.5
	devB.floats[codeMoveZ] = 0.5
	require.NoError(t, fc.Update(1.0/60.0))

	raw := float32(1.0) * 10.0 * 0.1 * (1.0 / 60.0)
	assert.InDelta(t, 0.4*raw, fc.moveZ, 1e-6)
}

// TestFlyController_TuningOptions verifies the builder options reach the
// tuning fields.
func TestFlyController_TuningOptions(t *testing.T) {
	_, m, cam := newTestRig()
	fc := NewFlyController(cam,
		WithInputMap(m),
		WithMoveSpeed(25),
		WithLookSensitivity(90),
		WithMouseSensitivity(0.25),
	).(*flyControllerImpl)

	assert.Equal(t, float32(25), fc.moveSpeed)
	assert.Equal(t, float32(90), fc.lookSensitivity)
	assert.Equal(t, float32(0.25), fc.mouseSensitivity)
}
