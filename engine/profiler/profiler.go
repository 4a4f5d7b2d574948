package profiler

import (
	"fmt"
	"time"
)

// Profiler counts frames and reports the frame rate at a fixed interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	now            func() time.Time
	lastFPS        float64
}

// NewProfiler creates a new Profiler with a one second reporting interval.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return newProfiler(time.Now, time.Second)
}

// newProfiler builds a Profiler with an injectable clock.
func newProfiler(now func() time.Time, interval time.Duration) *Profiler {
	return &Profiler{
		lastTime:       now(),
		updateInterval: interval,
		now:            now,
	}
}

// Tick should be called once per frame.
//
// Returns:
//   - float64: frames per second over the last interval
//   - bool: true if a new measurement was taken this tick
func (p *Profiler) Tick() (float64, bool) {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return p.lastFPS, false
	}

	p.lastFPS = float64(p.frameCount) / elapsed.Seconds()
	p.frameCount = 0
	p.lastTime = currentTime
	return p.lastFPS, true
}

// FPS returns the most recent measurement, 0 before the first interval elapses.
func (p *Profiler) FPS() float64 {
	return p.lastFPS
}

// Title formats a window title with the most recent frame rate.
//
// Parameters:
//   - base: the title prefix
//
// Returns:
//   - string: "base | FPS: n"
func (p *Profiler) Title(base string) string {
	return fmt.Sprintf("%s | FPS: %.0f", base, p.lastFPS)
}
