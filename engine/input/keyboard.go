package input

import "sync"

// KeyboardDevice tracks held keys fed by window key callbacks. A held key
// reports a sustained float value of 1; direction and amplitude come from the
// binding scale.
type KeyboardDevice struct {
	mu   sync.Mutex
	down map[uint32]bool
}

var _ Device = &KeyboardDevice{}

// NewKeyboardDevice creates an empty keyboard device. Wire SetKey to the
// window's key down/up callbacks.
//
// Returns:
//   - *KeyboardDevice: the newly created device
func NewKeyboardDevice() *KeyboardDevice {
	return &KeyboardDevice{
		down: make(map[uint32]bool),
	}
}

// SetKey records a key press or release.
//
// Parameters:
//   - code: the virtual key code (see common key code constants)
//   - pressed: true on press, false on release
func (k *KeyboardDevice) SetKey(code uint32, pressed bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if pressed {
		k.down[code] = true
	} else {
		delete(k.down, code)
	}
}

func (k *KeyboardDevice) Float(code uint32) float32 {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.down[code] {
		return 1
	}
	return 0
}

// FloatDelta always returns zero: key states are sustained signals and
// per-frame deltas are only meaningful for pointer devices.
func (k *KeyboardDevice) FloatDelta(code uint32) float32 {
	return 0
}

func (k *KeyboardDevice) Bool(code uint32) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.down[code]
}

// EndFrame is a no-op for the keyboard; its state is purely event-driven.
func (k *KeyboardDevice) EndFrame() {}
