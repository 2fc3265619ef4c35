package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/vmath"
)

// Session owns all simulation state: the ship, the entity store and the clock
// Single-threaded, Reset and Step must not run concurrently with readers
type Session struct {
	Ship component.Ship

	store  *Store
	rng    *vmath.FastRand
	clock  SimClock
	events eventQueue
	log    *zap.Logger

	// Cooldown is counted in ticks, float sim time rounds 12*DT below 0.2
	lastShotTick  uint64
	gunArmed      bool
	cooldownTicks uint64

	// Collision scratch, reused across ticks
	hits    []collisionHit
	claimed []bool
}

// Option configures a Session at construction
type Option func(*Session)

// WithRand injects the random source, tests pass a fixed seed
func WithRand(rng *vmath.FastRand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithLogger attaches a logger for lifecycle debug output
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithDT overrides the fixed step
func WithDT(dt float64) Option {
	return func(s *Session) {
		s.clock = NewSimClock(dt)
	}
}

// NewSession creates a session and performs the initial Reset
func NewSession(opts ...Option) *Session {
	s := &Session{
		store: NewStore(),
		clock: NewSimClock(parameter.FixedDT),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = vmath.NewEntropyRand()
	}
	s.cooldownTicks = uint64(math.Round(parameter.ShootCooldown / s.clock.DT))
	s.Reset()
	return s
}

// Reset clears all entities, re-centers the ship and spawns a fresh asteroid field
// The simulation clock keeps running
func (s *Session) Reset() {
	s.Ship = component.Ship{}
	s.store.Clear()
	// Re-arm the gun so the first shot after reset is immediate
	s.gunArmed = true

	s.SpawnAsteroids(parameter.AsteroidCount)

	s.events.push(Event{Type: EventReset})
	s.log.Debug("session reset",
		zap.Int("asteroids", s.store.AsteroidCount()),
		zap.Uint64("tick", s.clock.Ticks()))
}

// SpawnAsteroids adds count BIG asteroids scattered over the world on random headings
func (s *Session) SpawnAsteroids(count int) {
	for i := 0; i < count; i++ {
		pos := s.rng.UniformInDisc(parameter.WorldRadius)
		heading := vmath.V2FromAngle(s.rng.UniformAngle())
		speed := s.rng.UniformRange(parameter.AsteroidSpawnSpeedMin, parameter.AsteroidSpawnSpeedMax)
		s.store.SpawnAsteroid(component.SizeBig, pos, vmath.V2Scale(heading, speed), s.rng)
	}
}

// Shoot fires a bullet from the ship nose if ShootCooldown worth of ticks has elapsed
// Returns true when a bullet was spawned
func (s *Session) Shoot() bool {
	now := s.clock.Ticks()
	if !s.gunArmed && now-s.lastShotTick < s.cooldownTicks {
		return false
	}

	nose := s.Ship.ToWorld(vmath.V2(0, parameter.ShipNoseOffset))
	muzzle := vmath.V2Scale(s.Ship.Facing(), parameter.BulletMuzzleSpeed)
	s.store.SpawnBullet(nose, vmath.V2Add(s.Ship.Vel, muzzle), parameter.BulletTimeToLive)
	s.lastShotTick = now
	s.gunArmed = false

	s.events.push(Event{Type: EventShot, Pos: nose})
	return true
}

// Store exposes the entity store for rendering and tests
func (s *Session) Store() *Store {
	return s.store
}

// Time returns elapsed simulation time in seconds
func (s *Session) Time() float64 {
	return s.clock.T()
}

// Ticks returns the number of completed ticks
func (s *Session) Ticks() uint64 {
	return s.clock.Ticks()
}

// DT returns the fixed step
func (s *Session) DT() float64 {
	return s.clock.DT
}

// DrainEvents returns events produced since the last drain
func (s *Session) DrainEvents() []Event {
	return s.events.drain()
}
