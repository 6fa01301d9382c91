package engine

import (
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
)

// LoopBuilderOption is a functional option for configuring a Loop.
// Use the With* functions to create options that are applied directly to the loop instance.
type LoopBuilderOption func(*loop)

// WithProfiling enables or disables tick performance output.
//
// Parameters:
//   - enabled: if true, enables tick profiling
//
// Returns:
//   - LoopBuilderOption: option function to apply
func WithProfiling(enabled bool) LoopBuilderOption {
	return func(l *loop) {
		l.profilingEnabled = enabled
	}
}

// WithTickRate sets the tick rate in ticks per second.
// Values <= 0 will be treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - LoopBuilderOption: option function to apply
func WithTickRate(fps float64) LoopBuilderOption {
	return func(l *loop) {
		if fps <= 0 {
			fps = 60.0
		}
		l.tickRate = time.Duration(float64(time.Second) / fps)
	}
}

// WithWindow sets a pre-configured window for the loop to pump rather than
// allowing the loop to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - LoopBuilderOption: option function to apply
func WithWindow(w window.Window) LoopBuilderOption {
	return func(l *loop) {
		l.window = w
	}
}
