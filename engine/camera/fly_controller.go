package camera

import (
	"errors"
	"math"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
)

// ErrInvalidFrameTime is returned by Update when deltaTime is negative or
// non-finite. The controller's state is left untouched in that case.
var ErrInvalidFrameTime = errors.New("camera: frame time must be finite and non-negative")

// Default control loop tuning. Movement speed is in world units per second,
// look sensitivity in degrees per second of full deflection, and mouse
// sensitivity in degrees per pixel of pointer movement.
const (
	defaultMoveSpeed        float32 = 10.0
	defaultLookSensitivity  float32 = 180.0
	defaultMouseSensitivity float32 = 0.1
)

// Boost scale pairs. Without boost the camera creeps at a tenth of full
// speed with halved look sensitivity.
const (
	boostedSpeedScale      float32 = 1.0
	unboostedSpeedScale    float32 = 0.1
	boostedRotationScale   float32 = 1.0
	unboostedRotationScale float32 = 0.5
)

// Pitch is clamped so the view never flips over the vertical; yaw accumulates
// without bound. ResetView restores the canonical pose below.
const (
	minPitch float32 = -90.0
	maxPitch float32 = 90.0

	resetYaw float32 = 90.0
)

// resetTranslation is the canonical world-space position after ResetView.
var resetTranslation = [3]float32{0, 1.5, 0.25}

// flyControllerImpl is the single implementation of FlyController.
//
// It owns five persistent channel states (one per smoothed axis) and the
// pitch/yaw accumulators. The contract is strictly single-threaded: Update is
// called once per simulation frame by one goroutine, so the controller holds
// no locks. The camera is borrowed and must outlive the controller.
type flyControllerImpl struct {
	cam  Camera
	maps []input.InputMap

	// Channel states: the last smoothed output per axis, reused as the
	// filter's previous value on the next frame.
	moveX, moveY, moveZ float32
	pitchRate, yawRate  float32

	// Orientation accumulators in degrees.
	pitch, yaw float32

	inverseY bool

	moveSpeed        float32
	lookSensitivity  float32
	mouseSensitivity float32
}

// FlyController converts aggregated multi-device input into smoothed camera
// translation and orientation updates, once per simulation frame.
type FlyController interface {
	// Update samples the attached input maps, smooths the per-axis deltas,
	// applies the unsmoothed pointer look bypass, and pushes the resulting
	// translation and rotation into the camera.
	//
	// Parameters:
	//   - deltaTime: the frame duration in seconds (must be finite and >= 0)
	//
	// Returns:
	//   - error: ErrInvalidFrameTime if deltaTime is negative or non-finite
	Update(deltaTime float32) error

	// ResetView zeroes all channel states and the pitch accumulator, restores
	// the canonical yaw, and sets the camera to the canonical reset pose.
	ResetView()

	// Pitch returns the accumulated pitch in degrees, always in [-90, 90].
	//
	// Returns:
	//   - float32: the current pitch
	Pitch() float32

	// Yaw returns the accumulated yaw in degrees (unbounded).
	//
	// Returns:
	//   - float32: the current yaw
	Yaw() float32

	// InverseY reports whether vertical look input is inverted.
	//
	// Returns:
	//   - bool: true if the pitch delta sign is flipped
	InverseY() bool
}

var _ FlyController = &flyControllerImpl{}

// NewFlyController creates a fly controller driving the given camera.
// The camera is required and NewFlyController panics if it is nil; it is
// borrowed, not owned, and the caller must keep it alive for the controller's
// lifetime. The controller starts in the canonical reset pose.
//
// Parameters:
//   - cam: the camera to drive (must not be nil)
//   - options: functional options to configure the controller
//
// Returns:
//   - FlyController: the newly created controller
func NewFlyController(cam Camera, options ...FlyControllerOption) FlyController {
	if cam == nil {
		panic("camera: NewFlyController requires a non-nil camera")
	}

	fc := &flyControllerImpl{
		cam:              cam,
		moveSpeed:        defaultMoveSpeed,
		lookSensitivity:  defaultLookSensitivity,
		mouseSensitivity: defaultMouseSensitivity,
	}
	for _, option := range options {
		option(fc)
	}

	fc.ResetView()
	return fc
}

func (fc *flyControllerImpl) Update(deltaTime float32) error {
	dt := float64(deltaTime)
	if deltaTime < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return ErrInvalidFrameTime
	}

	speedScale, rotationScale := unboostedSpeedScale, unboostedRotationScale
	if fc.anyBool(input.ControlBoost) {
		speedScale, rotationScale = boostedSpeedScale, boostedRotationScale
	}

	// Raw per-frame deltas. Movement sums across maps so keyboard and pad
	// stack; look keeps the largest-magnitude contribution.
	x := fc.sumFloat(input.ControlMoveX) * fc.moveSpeed * speedScale * deltaTime
	y := fc.sumFloat(input.ControlMoveY) * fc.moveSpeed * speedScale * deltaTime
	z := fc.sumFloat(input.ControlMoveZ) * fc.moveSpeed * speedScale * deltaTime
	pitch := fc.maxFloat(input.ControlPitch) * fc.lookSensitivity * rotationScale * deltaTime
	yaw := fc.maxFloat(input.ControlYaw) * fc.lookSensitivity * rotationScale * deltaTime

	fc.moveX = Smooth(fc.moveX, x, deltaTime)
	fc.moveY = Smooth(fc.moveY, y, deltaTime)
	fc.moveZ = Smooth(fc.moveZ, z, deltaTime)
	fc.pitchRate = Smooth(fc.pitchRate, pitch, deltaTime)
	fc.yawRate = Smooth(fc.yawRate, yaw, deltaTime)

	pitchDelta := fc.pitchRate
	yawDelta := fc.yawRate

	// Pointer aim bypass: while the primary button is held the raw pointer
	// delta is applied directly, skipping the filter for zero-latency aiming.
	if fc.anyBool(input.ControlPointerPrimary) {
		pitchDelta += fc.sumFloatDelta(input.ControlPitch) * fc.mouseSensitivity * rotationScale
		yawDelta += fc.sumFloatDelta(input.ControlYaw) * fc.mouseSensitivity * rotationScale
	}

	if fc.inverseY {
		pitchDelta = -pitchDelta
	}

	fc.pitch = common.Clamp(fc.pitch+pitchDelta, minPitch, maxPitch)
	fc.yaw += yawDelta

	fc.cam.Translate(fc.moveX, fc.moveY, fc.moveZ)
	fc.cam.SetRotation(common.QuaternionFromPitchYaw(
		common.DegToRad(fc.pitch), common.DegToRad(fc.yaw),
	))
	return nil
}

func (fc *flyControllerImpl) ResetView() {
	fc.moveX, fc.moveY, fc.moveZ = 0, 0, 0
	fc.pitchRate, fc.yawRate = 0, 0
	fc.pitch = 0
	fc.yaw = resetYaw

	fc.cam.SetRotation(common.QuaternionFromPitchYaw(
		common.DegToRad(fc.pitch), common.DegToRad(fc.yaw),
	))
	fc.cam.SetTranslation(resetTranslation[0], resetTranslation[1], resetTranslation[2])
}

func (fc *flyControllerImpl) Pitch() float32 {
	return fc.pitch
}

func (fc *flyControllerImpl) Yaw() float32 {
	return fc.yaw
}

func (fc *flyControllerImpl) InverseY() bool {
	return fc.inverseY
}

// sumFloat adds a control's value across all attached maps.
func (fc *flyControllerImpl) sumFloat(ctrl input.Control) float32 {
	var sum float32
	for _, m := range fc.maps {
		sum += m.GetFloat(ctrl)
	}
	return sum
}

// maxFloat keeps the largest-magnitude value of a control across all
// attached maps.
func (fc *flyControllerImpl) maxFloat(ctrl input.Control) float32 {
	var combined float32
	for _, m := range fc.maps {
		if v := m.GetFloat(ctrl); abs(v) > abs(combined) {
			combined = v
		}
	}
	return combined
}

// sumFloatDelta adds a control's raw per-frame delta across all attached maps.
func (fc *flyControllerImpl) sumFloatDelta(ctrl input.Control) float32 {
	var sum float32
	for _, m := range fc.maps {
		sum += m.GetFloatDelta(ctrl)
	}
	return sum
}

// anyBool ORs a button control across all attached maps.
func (fc *flyControllerImpl) anyBool(ctrl input.Control) bool {
	for _, m := range fc.maps {
		if m.GetBool(ctrl) {
			return true
		}
	}
	return false
}
