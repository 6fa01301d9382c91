package input

import "sync"

// floatBinding attaches one physical float input to a logical control.
// The scale carries both amplitude and sign (e.g. the A key binds MoveX
// with scale -1).
type floatBinding struct {
	dev   Device
	code  uint32
	scale float32
}

// boolBinding attaches one physical button input to a logical control.
type boolBinding struct {
	dev  Device
	code uint32
}

// inputMapImpl is the single implementation of InputMap.
type inputMapImpl struct {
	mu *sync.Mutex

	name     string
	floats   map[Control][]floatBinding
	bools    map[Control][]boolBinding
	policies map[Control]CombinePolicy
}

// InputMap binds physical device inputs to logical controls and aggregates
// them. Every query on an unbound control returns a neutral value.
type InputMap interface {
	// Name returns the map's descriptive name.
	//
	// Returns:
	//   - string: the name given at construction
	Name() string

	// MapFloat binds a float input on a device to a logical control.
	// A control may carry any number of bindings across any devices.
	//
	// Parameters:
	//   - ctrl: the logical control
	//   - dev: the source device
	//   - code: the physical input code on the device
	//   - scale: multiplier applied to the device value (sign selects direction)
	MapFloat(ctrl Control, dev Device, code uint32, scale float32)

	// MapBool binds a button input on a device to a logical control.
	//
	// Parameters:
	//   - ctrl: the logical control
	//   - dev: the source device
	//   - code: the physical input code on the device
	MapBool(ctrl Control, dev Device, code uint32)

	// SetPolicy sets the combine policy for a control's float bindings.
	// Controls default to PolicySum.
	//
	// Parameters:
	//   - ctrl: the logical control
	//   - policy: PolicySum or PolicyMax
	SetPolicy(ctrl Control, policy CombinePolicy)

	// GetFloat returns the combined sustained value of all float bindings on
	// a control, merged under the control's policy.
	//
	// Parameters:
	//   - ctrl: the logical control
	//
	// Returns:
	//   - float32: the combined value, 0 if the control is unbound
	GetFloat(ctrl Control) float32

	// GetFloatDelta returns the combined raw per-frame change of all float
	// bindings on a control, merged under the control's policy.
	//
	// Parameters:
	//   - ctrl: the logical control
	//
	// Returns:
	//   - float32: the combined per-frame delta, 0 if the control is unbound
	GetFloatDelta(ctrl Control) float32

	// GetBool reports whether any button binding on a control is active.
	//
	// Parameters:
	//   - ctrl: the logical control
	//
	// Returns:
	//   - bool: true if at least one bound button is held
	GetBool(ctrl Control) bool
}

var _ InputMap = &inputMapImpl{}

// NewInputMap creates an empty input map.
//
// Parameters:
//   - name: descriptive name for the map (used by callers for diagnostics)
//
// Returns:
//   - InputMap: the newly created map
func NewInputMap(name string) InputMap {
	return &inputMapImpl{
		mu:       &sync.Mutex{},
		name:     name,
		floats:   make(map[Control][]floatBinding),
		bools:    make(map[Control][]boolBinding),
		policies: make(map[Control]CombinePolicy),
	}
}

func (im *inputMapImpl) Name() string {
	return im.name
}

func (im *inputMapImpl) MapFloat(ctrl Control, dev Device, code uint32, scale float32) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.floats[ctrl] = append(im.floats[ctrl], floatBinding{dev: dev, code: code, scale: scale})
}

func (im *inputMapImpl) MapBool(ctrl Control, dev Device, code uint32) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.bools[ctrl] = append(im.bools[ctrl], boolBinding{dev: dev, code: code})
}

func (im *inputMapImpl) SetPolicy(ctrl Control, policy CombinePolicy) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.policies[ctrl] = policy
}

func (im *inputMapImpl) GetFloat(ctrl Control) float32 {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.combine(ctrl, func(b floatBinding) float32 {
		return b.dev.Float(b.code) * b.scale
	})
}

func (im *inputMapImpl) GetFloatDelta(ctrl Control) float32 {
	im.mu.Lock()
	defer im.mu.Unlock()
	return im.combine(ctrl, func(b floatBinding) float32 {
		return b.dev.FloatDelta(b.code) * b.scale
	})
}

func (im *inputMapImpl) GetBool(ctrl Control) bool {
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, b := range im.bools[ctrl] {
		if b.dev.Bool(b.code) {
			return true
		}
	}
	return false
}

// combine merges the sampled value of every float binding on a control under
// the control's policy. Caller must hold the mutex.
func (im *inputMapImpl) combine(ctrl Control, sample func(floatBinding) float32) float32 {
	var combined float32
	policy := im.policies[ctrl]
	for _, b := range im.floats[ctrl] {
		v := sample(b)
		switch policy {
		case PolicyMax:
			if abs(v) > abs(combined) {
				combined = v
			}
		default: // PolicySum
			combined += v
		}
	}
	return combined
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
