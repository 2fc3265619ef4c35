package render

import (
	"image/color"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/physics"
	"github.com/lixenwraith/asteroids/vmath"
)

// Polyline is a stroked run of world points
type Polyline struct {
	Points []vmath.Vec2
	Closed bool
	Color  color.RGBA
}

// FrameOptions selects optional debug layers
type FrameOptions struct {
	// CollisionProbes samples a grid around every asteroid, red inside and green outside
	CollisionProbes bool
}

// Frame is a world-space snapshot of everything visible, decoupled from session state
type Frame struct {
	WorldMin, WorldMax vmath.Vec2

	Lines   []Polyline
	Bullets []vmath.Vec2

	ProbesInside  []vmath.Vec2
	ProbesOutside []vmath.Vec2

	// Backing store for polyline points, reused across builds
	verts []vmath.Vec2
}

// BuildFrame snapshots a session into a new frame
func BuildFrame(s *engine.Session, opts FrameOptions) *Frame {
	f := &Frame{}
	f.Build(s, opts)
	return f
}

// Build refills the frame from s, reusing buffers
func (f *Frame) Build(s *engine.Session, opts FrameOptions) {
	f.Lines = f.Lines[:0]
	f.Bullets = f.Bullets[:0]
	f.ProbesInside = f.ProbesInside[:0]
	f.ProbesOutside = f.ProbesOutside[:0]
	f.verts = f.verts[:0]

	f.WorldMax = parameter.WorldRadius
	f.WorldMin = vmath.V2Neg(parameter.WorldRadius)

	f.addLoop(ColorBounds,
		vmath.V2(f.WorldMax.X, f.WorldMin.Y),
		f.WorldMax,
		vmath.V2(f.WorldMin.X, f.WorldMax.Y),
		f.WorldMin,
	)

	ship := &s.Ship
	var outline [len(component.ShipOutline)]vmath.Vec2
	for i, p := range component.ShipOutline {
		outline[i] = ship.ToWorld(p)
	}
	f.addLoop(ColorShip, outline[:]...)

	asteroids := s.Store().Asteroids()
	for i := range asteroids {
		start := len(f.verts)
		f.verts = asteroids[i].WorldVertices(f.verts)
		f.Lines = append(f.Lines, Polyline{Points: f.verts[start:len(f.verts):len(f.verts)], Closed: true, Color: ColorAsteroid})
	}

	for _, b := range s.Store().Bullets() {
		f.Bullets = append(f.Bullets, b.Pos)
	}

	if opts.CollisionProbes {
		for i := range asteroids {
			f.addProbes(&asteroids[i])
		}
	}
}

func (f *Frame) addLoop(c color.RGBA, points ...vmath.Vec2) {
	start := len(f.verts)
	f.verts = append(f.verts, points...)
	f.Lines = append(f.Lines, Polyline{Points: f.verts[start:len(f.verts):len(f.verts)], Closed: true, Color: c})
}

// addProbes samples an evenly spaced grid spanning ±ProbeGridExtent around the asteroid center
func (f *Frame) addProbes(a *component.Asteroid) {
	const n = parameter.ProbeGridSize
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			u := vmath.V2(float64(i)/(n-1)*2-1, float64(j)/(n-1)*2-1)
			p := vmath.V2Add(a.Pos, vmath.V2Scale(u, parameter.ProbeGridExtent))
			if physics.AsteroidContains(a, p) {
				f.ProbesInside = append(f.ProbesInside, p)
			} else {
				f.ProbesOutside = append(f.ProbesOutside, p)
			}
		}
	}
}

// Draw replays the frame, world background first when the renderer can fill
func (f *Frame) Draw(r Renderer) {
	if q, ok := r.(QuadFiller); ok {
		q.FillQuad(f.WorldMin, f.WorldMax, ColorWorld)
	}
	for _, l := range f.Lines {
		r.DrawLines(l.Points, l.Closed, l.Color)
	}
	if len(f.Bullets) > 0 {
		r.DrawPoints(f.Bullets, ColorBullet)
	}
	if len(f.ProbesInside) > 0 {
		r.DrawPoints(f.ProbesInside, ColorProbeInside)
	}
	if len(f.ProbesOutside) > 0 {
		r.DrawPoints(f.ProbesOutside, ColorProbeOutside)
	}
}
