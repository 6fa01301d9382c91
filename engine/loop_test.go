package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestLoop_TickRateFractional verifies sub-1 Hz tick rates produce the
// correct period instead of truncating the fps to zero.
func TestLoop_TickRateFractional(t *testing.T) {
	l := NewLoop(WithTickRate(0.5)).(*loop)
	assert.Equal(t, 2*time.Second, l.tickRate)

	l.SetTickRate(0.25)
	assert.Equal(t, 4*time.Second, l.tickRate)
}

// TestLoop_TickRateDefaults verifies non-positive rates fall back to 60 Hz
// and integer rates keep their exact period.
func TestLoop_TickRateDefaults(t *testing.T) {
	l := NewLoop().(*loop)
	assert.Equal(t, time.Second/60, l.tickRate)

	l = NewLoop(WithTickRate(0)).(*loop)
	assert.Equal(t, time.Second/60, l.tickRate)

	l = NewLoop(WithTickRate(-5)).(*loop)
	assert.Equal(t, time.Second/60, l.tickRate)

	l = NewLoop(WithTickRate(120)).(*loop)
	assert.Equal(t, time.Second/120, l.tickRate)

	l.SetTickRate(-1)
	assert.Equal(t, time.Second/60, l.tickRate)
}
