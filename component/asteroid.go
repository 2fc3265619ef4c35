package component

import (
	"fmt"

	"github.com/lixenwraith/asteroids/vmath"
)

// AsteroidSize is the closed set of asteroid size classes
type AsteroidSize uint8

const (
	SizeSmall AsteroidSize = iota
	SizeMedium
	SizeBig
)

// MaxVertexCount is the largest VertexCount of any size
const MaxVertexCount = 12

// VertexCount returns the mesh vertex count for the size class
func (s AsteroidSize) VertexCount() int {
	switch s {
	case SizeSmall:
		return 5
	case SizeMedium:
		return 9
	case SizeBig:
		return 12
	}
	panic(fmt.Sprintf("component: invalid asteroid size %d", s))
}

// Radius returns the base mesh radius for the size class
func (s AsteroidSize) Radius() float64 {
	switch s {
	case SizeSmall:
		return 1
	case SizeMedium:
		return 3
	case SizeBig:
		return 5
	}
	panic(fmt.Sprintf("component: invalid asteroid size %d", s))
}

func (s AsteroidSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeBig:
		return "big"
	}
	return fmt.Sprintf("AsteroidSize(%d)", s)
}

// Asteroid is a drifting rock with a local-space polygon ring
// Invariant: len(Vertices) == Size.VertexCount()
type Asteroid struct {
	Kinetic
	Size AsteroidSize
	// Vertices is the closed ring in angular order around the local origin
	Vertices []vmath.Vec2
}

// WorldVertices appends the ring translated to world space onto dst
func (a *Asteroid) WorldVertices(dst []vmath.Vec2) []vmath.Vec2 {
	for _, v := range a.Vertices {
		dst = append(dst, vmath.V2Add(v, a.Pos))
	}
	return dst
}
