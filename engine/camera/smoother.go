package camera

import "math"

// Decay bases of the asymmetric axis filter. A channel whose target magnitude
// exceeds its previous value is speeding up and decays fast toward the target;
// a channel falling back toward rest coasts down more slowly.
const (
	accelDecayBase float32 = 0.6
	brakeDecayBase float32 = 0.8

	// smoothReferenceRate normalizes the decay exponent to a 60 Hz reference
	// frame so the filter's response is independent of the actual frame rate.
	smoothReferenceRate float32 = 60.0
)

// Smooth applies one step of the asymmetric exponential axis filter and
// returns the new channel value. The caller stores the result back as the
// channel's state for the next frame; previous and target are never retained
// separately.
//
// deltaTime of zero returns previous unchanged (input frozen, no jump); as
// deltaTime grows the result converges to target (instant snap). Negative
// deltaTime is clamped to zero; callers that can observe one should reject
// it before smoothing (see ErrInvalidFrameTime).
//
// Parameters:
//   - previous: the channel's last smoothed value
//   - target: the raw value for this frame
//   - deltaTime: the frame duration in seconds
//
// Returns:
//   - float32: the smoothed channel value
func Smooth(previous, target, deltaTime float32) float32 {
	if deltaTime < 0 {
		deltaTime = 0
	}

	base := brakeDecayBase
	if abs(previous) < abs(target) {
		base = accelDecayBase
	}
	factor := float32(math.Pow(float64(base), float64(deltaTime*smoothReferenceRate)))

	return target + factor*(previous-target)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
