package engine

import (
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/vmath"
)

// PublishStats writes the session's debug metrics into reg
func PublishStats(reg *status.Registry, s *Session) {
	reg.Ints.Get(status.KeyAsteroids).Store(int64(s.store.AsteroidCount()))
	reg.Ints.Get(status.KeyBullets).Store(int64(s.store.BulletCount()))
	reg.Ints.Get(status.KeyTick).Store(int64(s.clock.Ticks()))
	reg.Floats.Get(status.KeyShipSpeed).Set(vmath.V2Mag(s.Ship.Vel))
	reg.Floats.Get(status.KeySimTime).Set(s.clock.T())
}
