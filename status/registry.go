package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys published by the simulation and frontends
const (
	KeyAsteroids = "asteroids"
	KeyBullets   = "bullets"
	KeyTick      = "tick"
	KeyShipSpeed = "ship.speed"
	KeySimTime   = "sim.time"
	KeyFPS       = "fps"
)

// Registry holds debug metrics written once per tick and read by the overlay
// The simulation is single-threaded, atomics only guard frontends that draw from another goroutine
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Lines formats every metric as "key: value", ints first, each group sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, key+": "+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.1f", key, v.Get()))
	})
	return lines
}
