package input

import "sync"

// MouseDevice tracks cursor position and button state fed by window
// callbacks. Cursor movement is exposed as per-frame axis deltas latched at
// EndFrame; the sustained Float value of a relative axis is always zero, so
// mouse axes only contribute to look through the unsmoothed delta path.
type MouseDevice struct {
	mu sync.Mutex

	x, y         float64 // current cursor position in pixels
	lastX, lastY float64 // cursor position at the last EndFrame
	hasPos       bool    // guards against a delta spike on the first report

	deltaX, deltaY float32 // latched per-frame deltas

	buttons map[uint32]bool
}

var _ Device = &MouseDevice{}

// NewMouseDevice creates an empty mouse device. Wire SetCursorPos and
// SetButton to the window's mouse callbacks.
//
// Returns:
//   - *MouseDevice: the newly created device
func NewMouseDevice() *MouseDevice {
	return &MouseDevice{
		buttons: make(map[uint32]bool),
	}
}

// SetCursorPos records the current cursor position in window pixels.
//
// Parameters:
//   - x, y: cursor position
func (m *MouseDevice) SetCursorPos(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.x, m.y = x, y
	if !m.hasPos {
		m.lastX, m.lastY = x, y
		m.hasPos = true
	}
}

// SetButton records a mouse button press or release.
//
// Parameters:
//   - code: the button code (MouseButtonLeft, MouseButtonRight, ...)
//   - pressed: true on press, false on release
func (m *MouseDevice) SetButton(code uint32, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if pressed {
		m.buttons[code] = true
	} else {
		delete(m.buttons, code)
	}
}

// Float always returns zero: mouse axes are relative and have no sustained
// value for the smoothed aggregation path.
func (m *MouseDevice) Float(code uint32) float32 {
	return 0
}

func (m *MouseDevice) FloatDelta(code uint32) float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch code {
	case MouseAxisX:
		return m.deltaX
	case MouseAxisY:
		return m.deltaY
	}
	return 0
}

func (m *MouseDevice) Bool(code uint32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buttons[code]
}

// EndFrame latches the cursor movement accumulated since the previous call as
// the next frame's axis deltas.
func (m *MouseDevice) EndFrame() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deltaX = float32(m.x - m.lastX)
	m.deltaY = float32(m.y - m.lastY)
	m.lastX, m.lastY = m.x, m.y
}
