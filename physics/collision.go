package physics

import (
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/vmath"
)

// FanContains tests p against the fan of triangles (origin, ring[i], ring[i+1])
// Valid for rings that are star-shaped around the origin, boundary counts as inside
func FanContains(ring []vmath.Vec2, p vmath.Vec2) bool {
	n := len(ring)
	for i := 0; i < n; i++ {
		a := ring[i]
		b := ring[(i+1)%n]
		if triangleFromOriginContains(a, b, p) {
			return true
		}
	}
	return false
}

// triangleFromOriginContains runs the three half-plane tests of triangle (0, a, b)
func triangleFromOriginContains(a, b, p vmath.Vec2) bool {
	// Edge c->a
	s := vmath.V2Dot(p, vmath.V2PerpLeft(a))
	// Edge b->c
	t := vmath.V2Dot(p, vmath.V2PerpRight(b))
	// Edge a->b
	u := vmath.V2Dot(vmath.V2Sub(p, a), vmath.V2PerpLeft(vmath.V2Sub(b, a)))
	return s >= 0 && t >= 0 && u >= 0
}

// AsteroidContains reports whether a world-space point lies inside the asteroid
func AsteroidContains(a *component.Asteroid, world vmath.Vec2) bool {
	return FanContains(a.Vertices, vmath.V2Sub(world, a.Pos))
}
