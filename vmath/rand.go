package vmath

import (
	"os"
	"time"
)

// --- Randomness ---

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand creates a deterministic generator, seed 0 is remapped to 1
func NewFastRand(seed uint64) *FastRand {
	r := &FastRand{}
	r.Seed(seed)
	return r
}

// NewEntropyRand seeds from wall-clock time and pid
func NewEntropyRand() *FastRand {
	seed := uint64(time.Now().UnixNano()) ^ uint64(os.Getpid())<<32
	return NewFastRand(splitMix64(seed))
}

// Seed resets the generator state
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Uniform01 returns a float64 in [0, 1) built from the top 53 bits
func (r *FastRand) Uniform01() float64 {
	return float64(r.Next()>>11) * (1.0 / (1 << 53))
}

// UniformRange returns Lerp(lo, hi, Uniform01())
func (r *FastRand) UniformRange(lo, hi float64) float64 {
	return Lerp(lo, hi, r.Uniform01())
}

// UniformInDisc samples each axis independently in [-1, 1] and scales by scale
// The result fills a rectangle, not a true disc
func (r *FastRand) UniformInDisc(scale Vec2) Vec2 {
	return Vec2{
		X: (r.Uniform01()*2 - 1) * scale.X,
		Y: (r.Uniform01()*2 - 1) * scale.Y,
	}
}

// UniformAngle returns an angle in [0, 2π)
func (r *FastRand) UniformAngle() float64 {
	return r.Uniform01() * TwoPi
}

// splitMix64 spreads low-entropy seeds across all bits
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
