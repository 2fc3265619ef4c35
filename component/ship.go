package component

import "github.com/lixenwraith/asteroids/vmath"

// Ship is the player's craft, exactly one per session
type Ship struct {
	Kinetic
	// Orientation in radians, kept in [0, 2π), 0 faces +Y
	Orientation float64
}

// ShipOutline is the local-space line loop drawn for the ship
var ShipOutline = [...]vmath.Vec2{
	{X: 0, Y: 0},
	{X: +1, Y: -1},
	{X: 0, Y: +2},
	{X: -1, Y: -1},
}

// Facing returns the unit vector the ship points along
func (s *Ship) Facing() vmath.Vec2 {
	return vmath.V2Rotate(vmath.V2(0, 1), s.Orientation)
}

// ToWorld rotates a ship-local point by orientation and translates by position
func (s *Ship) ToWorld(local vmath.Vec2) vmath.Vec2 {
	return vmath.V2Add(vmath.V2Rotate(local, s.Orientation), s.Pos)
}
