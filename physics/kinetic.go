package physics

import (
	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/vmath"
)

// Integrate performs semi-implicit Euler: v = v + a*dt; p = p + v*dt
func Integrate(k *component.Kinetic, accel vmath.Vec2, dt float64) {
	k.Vel = vmath.V2Add(k.Vel, vmath.V2Scale(accel, dt))
	k.Pos = vmath.V2Add(k.Pos, vmath.V2Scale(k.Vel, dt))
}

// Drift advances position by velocity with no acceleration
func Drift(k *component.Kinetic, dt float64) {
	k.Pos = vmath.V2Add(k.Pos, vmath.V2Scale(k.Vel, dt))
}

// ApplyImpulse adds velocity delta (momentum transfer)
func ApplyImpulse(k *component.Kinetic, dv vmath.Vec2) {
	k.Vel = vmath.V2Add(k.Vel, dv)
}

// LinearDrag returns deceleration opposing vel with magnitude factor*|vel|
// Zero velocity yields zero drag without normalizing
func LinearDrag(vel vmath.Vec2, factor float64) vmath.Vec2 {
	mag := vmath.V2Mag(vel)
	if mag == 0 {
		return vmath.Vec2{}
	}
	return vmath.V2Scale(vmath.V2Normalize(vmath.V2Neg(vel)), factor*mag)
}
