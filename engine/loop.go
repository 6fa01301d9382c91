package engine

import (
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/profiler"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
)

// loop implements the Loop interface.
// Runs the fixed-rate simulation tick in its own goroutine while the window
// message pump stays on the caller's goroutine.
type loop struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate     time.Duration
	tickCallback func(deltaTime float32)
}

// Loop is the frame event source for the fly camera: it fires the tick
// callback at a fixed rate with the measured delta time, pumps window
// messages, and owns shutdown.
type Loop interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables tick performance output to the log.
	EnableProfiler()

	// DisableProfiler disables tick performance output.
	DisableProfiler()

	// SetTickRate sets the tick rate in ticks per second.
	// If the loop is running, the change takes effect immediately.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// SetTickCallback registers the function called each simulation tick.
	// The callback receives the measured delta time in seconds, which is
	// always non-negative and finite.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate
	SetTickCallback(callback func(deltaTime float32))

	// Run starts the tick goroutine and blocks pumping window messages until
	// the window closes.
	Run()

	// Quit signals the tick goroutine to stop.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Loop = &loop{}

// NewLoop creates a new Loop with the provided options.
//
// Parameters:
//   - options: functional options for loop configuration (window, tick rate, profiling)
//
// Returns:
//   - Loop: the newly created loop
func NewLoop(options ...LoopBuilderOption) Loop {
	l := &loop{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		profiler:        profiler.NewProfiler(),
		tickRate:        time.Second / 60,
	}

	for _, opt := range options {
		opt(l)
	}

	return l
}

func (l *loop) Window() window.Window {
	return l.window
}

func (l *loop) Run() {
	l.running = true
	l.wg.Add(1)
	go l.handleTick()

	l.window.ProcessMessages()

	l.signalQuit()
	l.wg.Wait()
}

// Quit signals the tick goroutine to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (l *loop) Quit() {
	l.signalQuit()
}

// signalQuit closes the quit channel to signal the tick goroutine to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (l *loop) signalQuit() {
	l.quitOnce.Do(func() {
		l.running = false
		close(l.quitChannel)
	})
}

// handleTick runs the fixed-rate tick loop in its own goroutine.
// Fires the tick callback with the measured delta time and listens for
// dynamic rate changes via tickRateChannel. Recovers from panics to avoid
// crashing the process and signals quit on recovery.
func (l *loop) handleTick() {
	defer l.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tick goroutine recovered from panic: %v", r)
			l.signalQuit()
		}
	}()

	ticker := time.NewTicker(l.tickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-l.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if l.tickCallback != nil {
				l.tickCallback(dt)
			}

			if l.profilingEnabled && l.profiler != nil {
				l.profiler.Observe(time.Since(now))
			}
		case newRate := <-l.tickRateChannel:
			ticker.Reset(newRate)
			l.tickRate = newRate
		}
	}
}

// EnableProfiler enables tick performance output to the log.
func (l *loop) EnableProfiler() {
	l.profilingEnabled = true
}

// DisableProfiler disables tick performance output.
func (l *loop) DisableProfiler() {
	l.profilingEnabled = false
}

// SetTickRate sets the tick rate in ticks per second.
// If the loop is running, the change takes effect immediately.
func (l *loop) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	if l.running {
		// Non-blocking send - if the channel holds a pending value, replace it.
		select {
		case l.tickRateChannel <- newRate:
		default:
			select {
			case <-l.tickRateChannel:
			default:
			}
			l.tickRateChannel <- newRate
		}
	} else {
		l.tickRate = newRate
	}
}

// SetTickCallback registers the function called each simulation tick.
func (l *loop) SetTickCallback(callback func(deltaTime float32)) {
	l.tickCallback = callback
}
