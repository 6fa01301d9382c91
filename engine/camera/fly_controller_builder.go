package camera

import "github.com/Carmen-Shannon/oxy-flycam/engine/input"

// FlyControllerOption is a functional option for configuring a FlyController.
type FlyControllerOption func(*flyControllerImpl)

// WithInputMap attaches an input map to the controller. May be given multiple
// times; the controller aggregates across every attached map (movement sums,
// look takes the largest magnitude, buttons OR).
//
// Parameters:
//   - m: the input map to attach
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithInputMap(m input.InputMap) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		if m != nil {
			fc.maps = append(fc.maps, m)
		}
	}
}

// WithInverseY enables or disables inverted vertical look. When enabled the
// pitch delta sign is flipped before accumulation. Immutable after
// construction.
//
// Parameters:
//   - inverted: true to invert vertical look
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithInverseY(inverted bool) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.inverseY = inverted
	}
}

// WithMoveSpeed sets the movement speed in world units per second at full
// deflection with boost held.
//
// Parameters:
//   - speed: movement speed (default 10)
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithMoveSpeed(speed float32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.moveSpeed = speed
	}
}

// WithLookSensitivity sets the look rate in degrees per second at full
// deflection with boost held.
//
// Parameters:
//   - sensitivity: look rate (default 180)
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithLookSensitivity(sensitivity float32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.lookSensitivity = sensitivity
	}
}

// WithMouseSensitivity sets the pointer aim scale in degrees per pixel for
// the unsmoothed look bypass.
//
// Parameters:
//   - sensitivity: pointer scale (default 0.1)
//
// Returns:
//   - FlyControllerOption: option function to apply
func WithMouseSensitivity(sensitivity float32) FlyControllerOption {
	return func(fc *flyControllerImpl) {
		fc.mouseSensitivity = sensitivity
	}
}
