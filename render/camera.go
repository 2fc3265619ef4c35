package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/vmath"
)

// Camera maps world space onto a viewport
// Radius is fitted to the smaller viewport axis, the larger axis shows more world
type Camera struct {
	PosWorld vmath.Vec2
	Radius   float64

	width, height int
}

// NewCamera returns a camera centered on the world with the default zoom
func NewCamera() *Camera {
	return &Camera{
		Radius: parameter.CameraRadius,
		width:  1,
		height: 1,
	}
}

// SetViewport updates the target size in pixels, degenerate sizes clamp to 1
func (c *Camera) SetViewport(width, height int) {
	c.width = max(width, 1)
	c.height = max(height, 1)
}

// Viewport returns the target size in pixels
func (c *Camera) Viewport() (width, height int) {
	return c.width, c.height
}

// WorldToClip scales world units into [-1, 1] clip space around PosWorld
func (c *Camera) WorldToClip() mgl32.Mat4 {
	rs := 1 / c.Radius
	sx, sy := rs, rs
	w, h := float64(c.width), float64(c.height)
	if w > h {
		sx = h / w * rs
	} else {
		sy = w / h * rs
	}
	return mgl32.Scale3D(float32(sx), float32(sy), 1).
		Mul4(mgl32.Translate3D(float32(-c.PosWorld.X), float32(-c.PosWorld.Y), 0))
}

// ClipToScreen maps clip space to pixels, origin top-left with Y down
func (c *Camera) ClipToScreen() mgl32.Mat4 {
	hw, hh := float32(c.width)/2, float32(c.height)/2
	return mgl32.Translate3D(hw, hh, 0).Mul4(mgl32.Scale3D(hw, -hh, 1))
}

// Projection returns the combined world to screen transform for the current state
func (c *Camera) Projection() Projection {
	return Projection{m: c.ClipToScreen().Mul4(c.WorldToClip())}
}

// ScreenToWorld unprojects a pixel position
func (c *Camera) ScreenToWorld(x, y float64) vmath.Vec2 {
	inv := c.Projection().m.Inv()
	v := inv.Mul4x1(mgl32.Vec4{float32(x), float32(y), 0, 1})
	return vmath.V2(float64(v.X()), float64(v.Y()))
}

// Zoom changes the radius exponentially, positive notches zoom in
func (c *Camera) Zoom(notches float64) {
	l := math.Log2(c.Radius) - notches*parameter.CameraZoomStep
	c.Radius = math.Min(math.Max(math.Exp2(l), parameter.CameraRadiusMin), parameter.CameraRadiusMax)
}

// Anchor pans so that world stays under the screen point (x, y), used for grab dragging
func (c *Camera) Anchor(world vmath.Vec2, x, y float64) {
	under := c.ScreenToWorld(x, y)
	c.PosWorld = vmath.V2Add(c.PosWorld, vmath.V2Sub(world, under))
}

// Projection is a frozen world to screen transform
type Projection struct {
	m mgl32.Mat4
}

// Project maps a world point to pixel coordinates
func (p Projection) Project(w vmath.Vec2) (x, y float32) {
	v := p.m.Mul4x1(mgl32.Vec4{float32(w.X), float32(w.Y), 0, 1})
	return v.X(), v.Y()
}

// Matrix exposes the transform for GPU frontends
func (p Projection) Matrix() mgl32.Mat4 {
	return p.m
}
