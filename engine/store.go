package engine

import (
	"fmt"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/vmath"
)

// Store holds asteroids and bullets as dense value slices
// Removal swaps the last element into the hole, so indices are only stable until the next removal
type Store struct {
	asteroids []component.Asteroid
	bullets   []component.Bullet
}

// NewStore creates an empty store with room for a fresh session
func NewStore() *Store {
	return &Store{
		asteroids: make([]component.Asteroid, 0, 64),
		bullets:   make([]component.Bullet, 0, 64),
	}
}

// Clear drops all entities, keeping capacity
func (s *Store) Clear() {
	clear(s.asteroids)
	s.asteroids = s.asteroids[:0]
	s.bullets = s.bullets[:0]
}

// --- Asteroids ---

// SpawnAsteroid generates a mesh for size and appends the asteroid, returning its index
func (s *Store) SpawnAsteroid(size component.AsteroidSize, pos, vel vmath.Vec2, rng *vmath.FastRand) int {
	return s.AddAsteroid(physics.NewAsteroid(size, pos, vel, rng))
}

// AddAsteroid appends a prepared asteroid, returning its index
func (s *Store) AddAsteroid(a component.Asteroid) int {
	if len(a.Vertices) != a.Size.VertexCount() {
		panic(fmt.Sprintf("engine: %s asteroid with %d vertices", a.Size, len(a.Vertices)))
	}
	s.asteroids = append(s.asteroids, a)
	return len(s.asteroids) - 1
}

// RemoveAsteroid swap-removes index i, the former last asteroid now lives at i
func (s *Store) RemoveAsteroid(i int) {
	s.checkAsteroid(i)
	last := len(s.asteroids) - 1
	s.asteroids[i] = s.asteroids[last]
	s.asteroids[last] = component.Asteroid{}
	s.asteroids = s.asteroids[:last]
}

// Asteroid returns a pointer into the store, valid until the next add or remove
func (s *Store) Asteroid(i int) *component.Asteroid {
	s.checkAsteroid(i)
	return &s.asteroids[i]
}

// Asteroids exposes the live slice for iteration, callers must not retain it
func (s *Store) Asteroids() []component.Asteroid {
	return s.asteroids
}

func (s *Store) AsteroidCount() int {
	return len(s.asteroids)
}

func (s *Store) checkAsteroid(i int) {
	if i < 0 || i >= len(s.asteroids) {
		panic(fmt.Sprintf("engine: asteroid index %d out of range [0,%d)", i, len(s.asteroids)))
	}
}

// --- Bullets ---

// SpawnBullet appends a bullet, returning its index
func (s *Store) SpawnBullet(pos, vel vmath.Vec2, ttl float64) int {
	s.bullets = append(s.bullets, component.Bullet{
		Kinetic:    component.Kinetic{Pos: pos, Vel: vel},
		TimeToLive: ttl,
	})
	return len(s.bullets) - 1
}

// RemoveBullet swap-removes index i
func (s *Store) RemoveBullet(i int) {
	s.checkBullet(i)
	last := len(s.bullets) - 1
	s.bullets[i] = s.bullets[last]
	s.bullets = s.bullets[:last]
}

// Bullet returns a pointer into the store, valid until the next add or remove
func (s *Store) Bullet(i int) *component.Bullet {
	s.checkBullet(i)
	return &s.bullets[i]
}

// Bullets exposes the live slice for iteration, callers must not retain it
func (s *Store) Bullets() []component.Bullet {
	return s.bullets
}

func (s *Store) BulletCount() int {
	return len(s.bullets)
}

func (s *Store) checkBullet(i int) {
	if i < 0 || i >= len(s.bullets) {
		panic(fmt.Sprintf("engine: bullet index %d out of range [0,%d)", i, len(s.bullets)))
	}
}
