package engine

import (
	"time"

	"github.com/lixenwraith/asteroids/parameter"
)

// SimClock is the fixed-step simulation clock
// T is derived from the tick count so it does not accumulate rounding across ticks
type SimClock struct {
	DT    float64
	ticks uint64
}

// NewSimClock creates a clock stepping dt seconds per tick
func NewSimClock(dt float64) SimClock {
	return SimClock{DT: dt}
}

// T returns elapsed simulation time in seconds
func (c *SimClock) T() float64 {
	return float64(c.ticks) * c.DT
}

// Ticks returns the number of completed ticks
func (c *SimClock) Ticks() uint64 {
	return c.ticks
}

// Advance completes one tick
func (c *SimClock) Advance() {
	c.ticks++
}

// FrameTimer measures real frame time for display, it never feeds the simulation
type FrameTimer struct {
	tp     TimeProvider
	last   time.Time
	frames uint64
	dt     float64
	avgFPS float64
}

// NewFrameTimer creates a timer reading from tp
func NewFrameTimer(tp TimeProvider) *FrameTimer {
	return &FrameTimer{
		tp:     tp,
		avgFPS: parameter.FPSInitial,
	}
}

// Frame marks the start of a frame and returns the measured dt in seconds
// The first frame has no predecessor and reports 0
func (f *FrameTimer) Frame() float64 {
	now := f.tp.Now()
	if f.frames == 0 {
		f.dt = 0
	} else {
		f.dt = now.Sub(f.last).Seconds()
		if f.dt > 0 {
			a := parameter.FPSSmoothing
			f.avgFPS = f.avgFPS*(1-a) + (1/f.dt)*a
		}
	}
	f.last = now
	f.frames++
	return f.dt
}

// FPS returns the running average frame rate
func (f *FrameTimer) FPS() float64 {
	return f.avgFPS
}

// DT returns the last measured frame time
func (f *FrameTimer) DT() float64 {
	return f.dt
}
