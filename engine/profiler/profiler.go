package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate, tick duration, and memory statistics for the
// simulation loop. Outputs stats to the log at a configurable interval.
type Profiler struct {
	tickCount      int
	totalTick      time.Duration
	maxTick        time.Duration
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
}

// Observe records one tick's duration. Logs performance statistics when the
// update interval has elapsed: ticks per second, average and worst tick
// duration, heap usage, and GC count/pause times.
//
// Parameters:
//   - tickDuration: how long the tick callback took
//
// Returns:
//   - bool: true if stats were logged this call, false otherwise
func (p *Profiler) Observe(tickDuration time.Duration) bool {
	p.tickCount++
	p.totalTick += tickDuration
	if tickDuration > p.maxTick {
		p.maxTick = tickDuration
	}

	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()
	avgTickUs := p.totalTick.Microseconds() / int64(p.tickCount)
	maxTickUs := p.maxTick.Microseconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc: bytes of allocated heap objects (live memory).
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024

	// GC pause stats since the last report. PauseNs is a circular buffer of
	// the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	if gcCount > p.lastGCCount {
		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] Ticks/s: %.2f | Tick: avg %d µs, max %d µs | Heap: %.2f MB | GC: %d (max pause: %d µs)",
		tps, avgTickUs, maxTickUs, heapMB, gcCount, maxPauseUs)

	p.tickCount = 0
	p.totalTick = 0
	p.maxTick = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	return true
}
