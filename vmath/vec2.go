package vmath

import "math"

// Vec2 is a float64 2D vector used for positions, velocities and mesh vertices
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns a vector with both components set to s
func Splat(s float64) Vec2 {
	return Vec2{X: s, Y: s}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Neg(v Vec2) Vec2 {
	return Vec2{-v.X, -v.Y}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Rotate rotates v counter-clockwise by angle radians
func V2Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// V2PerpLeft returns v rotated 90° counter-clockwise (-y, x)
func V2PerpLeft(v Vec2) Vec2 {
	return Vec2{-v.Y, v.X}
}

// V2PerpRight returns v rotated 90° clockwise (y, -x)
func V2PerpRight(v Vec2) Vec2 {
	return Vec2{v.Y, -v.X}
}

// V2Lerp interpolates component-wise
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// V2Finite reports whether both components are finite
func V2Finite(v Vec2) bool {
	return Finite(v.X) && Finite(v.Y)
}

// V2FromAngle returns the unit vector (1,0) rotated by angle
func V2FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}
