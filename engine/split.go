package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/vmath"
)

// SplitAsteroid destroys asteroid i and spawns its fragments at the parent position
// SMALL leaves nothing, MEDIUM yields 3 SMALL with zero-sum deltas, BIG yields 2 MEDIUM with opposite deltas
// Fragments are appended before the parent is swap-removed, so only indices >= i are disturbed
// Returns the number of fragments spawned
func (s *Session) SplitAsteroid(i int) int {
	parent := *s.store.Asteroid(i)

	var children int
	switch parent.Size {
	case component.SizeSmall:

	case component.SizeMedium:
		a := s.splitVelocity(parameter.MediumSplitSpeedMin, parameter.MediumSplitSpeedMax)
		b := s.splitVelocity(parameter.MediumSplitSpeedMin, parameter.MediumSplitSpeedMax)
		c := vmath.V2Neg(vmath.V2Add(a, b))
		for _, dv := range [...]vmath.Vec2{a, b, c} {
			s.spawnFragment(component.SizeSmall, &parent, dv)
		}
		children = 3

	case component.SizeBig:
		d := s.splitVelocity(parameter.BigSplitSpeedMin, parameter.BigSplitSpeedMax)
		s.spawnFragment(component.SizeMedium, &parent, d)
		s.spawnFragment(component.SizeMedium, &parent, vmath.V2Neg(d))
		children = 2

	default:
		panic(fmt.Sprintf("engine: split of invalid asteroid size %d", parent.Size))
	}

	s.store.RemoveAsteroid(i)

	s.events.push(Event{Type: EventSplit, Pos: parent.Pos, Size: parent.Size, Children: children})
	s.log.Debug("asteroid split",
		zap.Stringer("size", parent.Size),
		zap.Int("children", children),
		zap.Int("remaining", s.store.AsteroidCount()))
	return children
}

// spawnFragment adds a child at the parent position moving at parent velocity plus dv
func (s *Session) spawnFragment(size component.AsteroidSize, parent *component.Asteroid, dv vmath.Vec2) {
	k := parent.Kinetic
	physics.ApplyImpulse(&k, dv)
	s.store.SpawnAsteroid(size, k.Pos, k.Vel, s.rng)
}

// splitVelocity returns a random heading scaled by a speed in [lo, hi]
func (s *Session) splitVelocity(lo, hi float64) vmath.Vec2 {
	heading := vmath.V2FromAngle(s.rng.UniformAngle())
	return vmath.V2Scale(heading, s.rng.UniformRange(lo, hi))
}
