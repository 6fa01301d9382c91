// Package input provides logical-control input aggregation for the fly camera:
// physical device signals (keyboard, mouse, gamepad) are bound to logical
// controls and combined under an explicit per-control policy. Devices that are
// absent or unbound always report neutral values, never errors.
package input

// Control identifies a logical camera control. Bindings attach one or more
// (device, physical code, scale) tuples to each control.
type Control int

const (
	// ControlMoveX is lateral movement (positive = right).
	ControlMoveX Control = iota
	// ControlMoveY is vertical movement (positive = up).
	ControlMoveY
	// ControlMoveZ is forward movement (positive = forward).
	ControlMoveZ
	// ControlPitch is vertical look rotation.
	ControlPitch
	// ControlYaw is horizontal look rotation.
	ControlYaw
	// ControlBoost raises movement speed and look sensitivity while held.
	ControlBoost
	// ControlPointerPrimary is the primary look-engage button (left mouse).
	ControlPointerPrimary
	// ControlPointerSecondary is the secondary pointer button (right mouse).
	ControlPointerSecondary
)

// CombinePolicy selects how multiple float bindings on the same control are
// merged into a single value.
type CombinePolicy int

const (
	// PolicySum adds all bound contributions. Used for movement controls so
	// keyboard and pad input stack.
	PolicySum CombinePolicy = iota
	// PolicyMax keeps the contribution with the largest magnitude. Used for
	// look controls so simultaneous devices do not double-apply rotation.
	PolicyMax
)
