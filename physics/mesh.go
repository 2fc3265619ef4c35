package physics

import (
	"math"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/vmath"
)

// GenerateMesh builds an irregular rock ring for the size class
// One sector gets a deep notch, its neighbors lean away from it in angle so the dent reads as a gap
func GenerateMesh(size component.AsteroidSize, rng *vmath.FastRand) []vmath.Vec2 {
	return AppendMesh(make([]vmath.Vec2, 0, size.VertexCount()), size, rng)
}

// AppendMesh appends the generated ring onto dst
func AppendMesh(dst []vmath.Vec2, size component.AsteroidSize, rng *vmath.FastRand) []vmath.Vec2 {
	n := size.VertexCount()
	r := size.Radius()

	deepV := int(math.Round(rng.Uniform01() * float64(n-1)))
	if deepV < 0 || deepV >= n {
		panic("physics: notch index out of range")
	}

	cStep := 1.0 / float64(n)

	for i := 0; i < n; i++ {
		var offs float64
		switch {
		case i+1 == deepV:
			offs = rng.UniformRange(0, +cStep/2)
		case i-1 == deepV:
			offs = rng.UniformRange(-cStep/2, 0)
		default:
			offs = rng.UniformRange(-cStep/2, +cStep/2)
		}
		t := float64(i)*cStep + offs

		// Squared sample biases toward the first lerp endpoint
		y := rng.Uniform01()
		y *= y
		var radius float64
		if i != deepV {
			radius = r * vmath.Lerp(parameter.MeshRadiusOuter, parameter.MeshRadiusInner, y)
		} else {
			radius = r * vmath.Lerp(parameter.MeshNotchOuter, parameter.MeshNotchInner, y)
		}

		dst = append(dst, vmath.V2Rotate(vmath.V2(0, radius), t*vmath.TwoPi))
	}
	return dst
}

// NewAsteroid creates an asteroid with a freshly generated mesh
func NewAsteroid(size component.AsteroidSize, pos, vel vmath.Vec2, rng *vmath.FastRand) component.Asteroid {
	return component.Asteroid{
		Kinetic:  component.Kinetic{Pos: pos, Vel: vel},
		Size:     size,
		Vertices: GenerateMesh(size, rng),
	}
}
