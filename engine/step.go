package engine

import (
	"slices"

	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/vmath"
)

// collisionHit pairs a bullet with the asteroid it struck this tick
type collisionHit struct {
	bullet   int
	asteroid int
}

// Step advances the simulation by one fixed tick
// Order: session commands, ship, gun, bullet aging, collisions, asteroid drift, bullet drift
func (s *Session) Step(in input.Snapshot) {
	if in == nil {
		in = input.Idle
	}

	// Commands are honored at the tick boundary
	if in.WentDown(input.ButtonReset) {
		s.Reset()
	}
	if in.WentDown(input.ButtonSplitFirst) && s.store.AsteroidCount() > 0 {
		s.SplitAsteroid(0)
	}

	dt := s.clock.DT

	s.updateShip(in, dt)
	if in.IsDown(input.ButtonFire) {
		s.Shoot()
	}
	s.ageBullets(dt)
	s.resolveCollisions()
	s.driftAsteroids(dt)
	s.driftBullets(dt)

	s.clock.Advance()
}

// updateShip applies turning, thrust and drag, then integrates
func (s *Session) updateShip(in input.Snapshot, dt float64) {
	var dir float64
	if in.IsDown(input.ButtonTurnLeft) {
		dir += 1
	}
	if in.IsDown(input.ButtonTurnRight) {
		dir -= 1
	}
	s.Ship.Orientation = vmath.Mod(s.Ship.Orientation+dir*parameter.ShipTurnRate*dt, vmath.TwoPi)

	var accel vmath.Vec2
	if in.IsDown(input.ButtonThrust) {
		accel = vmath.V2Scale(s.Ship.Facing(), parameter.ShipThrustAccel)
	}
	accel = vmath.V2Add(accel, physics.LinearDrag(s.Ship.Vel, parameter.ShipDragFactor))

	physics.Integrate(&s.Ship.Kinetic, accel, dt)
}

// ageBullets decrements lifetimes and culls expired bullets before collision testing
func (s *Session) ageBullets(dt float64) {
	for i := 0; i < s.store.BulletCount(); {
		b := s.store.Bullet(i)
		b.TimeToLive -= dt
		if b.Expired() {
			s.events.push(Event{Type: EventBulletExpired, Pos: b.Pos})
			// Swapped-in bullet lands at i and has not been aged yet
			s.store.RemoveBullet(i)
			continue
		}
		i++
	}
}

// resolveCollisions detects hits first, then mutates the store
// Each bullet targets the first asteroid in store order containing it
// An asteroid already claimed by an earlier bullet this tick shields later bullets
// A shielded bullet survives this tick and meets the fragments on the next one
func (s *Session) resolveCollisions() {
	bullets := s.store.Bullets()
	asteroids := s.store.Asteroids()
	if len(bullets) == 0 || len(asteroids) == 0 {
		return
	}

	s.hits = s.hits[:0]
	s.claimed = slices.Grow(s.claimed[:0], len(asteroids))[:len(asteroids)]
	clear(s.claimed)

	for bi := range bullets {
		for ai := range asteroids {
			if !physics.AsteroidContains(&asteroids[ai], bullets[bi].Pos) {
				continue
			}
			if !s.claimed[ai] {
				s.claimed[ai] = true
				s.hits = append(s.hits, collisionHit{bullet: bi, asteroid: ai})
			}
			break
		}
	}
	if len(s.hits) == 0 {
		return
	}

	// Descending order keeps pending indices below every swap-remove hole
	slices.SortFunc(s.hits, func(a, b collisionHit) int { return b.bullet - a.bullet })
	for _, h := range s.hits {
		s.store.RemoveBullet(h.bullet)
	}
	slices.SortFunc(s.hits, func(a, b collisionHit) int { return b.asteroid - a.asteroid })
	for _, h := range s.hits {
		s.SplitAsteroid(h.asteroid)
	}
}

// driftAsteroids moves asteroids in straight lines, no drag or wraparound
func (s *Session) driftAsteroids(dt float64) {
	asteroids := s.store.Asteroids()
	for i := range asteroids {
		physics.Drift(&asteroids[i].Kinetic, dt)
	}
}

// driftBullets runs after collisions so a fresh bullet is tested at its muzzle position
func (s *Session) driftBullets(dt float64) {
	bullets := s.store.Bullets()
	for i := range bullets {
		physics.Drift(&bullets[i].Kinetic, dt)
	}
}
