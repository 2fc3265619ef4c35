package component

import "github.com/lixenwraith/asteroids/vmath"

// Kinetic is the shared motion state of every simulated entity
type Kinetic struct {
	// Pos is the world-space position
	Pos vmath.Vec2
	// Vel is the velocity in world units per second
	Vel vmath.Vec2
}
