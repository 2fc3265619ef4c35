package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/vmath"
)

// screenRenderer strokes frame primitives onto an ebiten image through the camera projection
type screenRenderer struct {
	dst  *ebiten.Image
	proj render.Projection
}

func (r *screenRenderer) DrawLines(points []vmath.Vec2, closed bool, c color.RGBA) {
	n := len(points)
	if n < 2 {
		r.DrawPoints(points, c)
		return
	}
	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		x0, y0 := r.proj.Project(points[i])
		x1, y1 := r.proj.Project(points[(i+1)%n])
		vector.StrokeLine(r.dst, x0, y0, x1, y1, parameter.LineWidth, c, true)
	}
}

func (r *screenRenderer) DrawPoints(points []vmath.Vec2, c color.RGBA) {
	const half = parameter.PointSize / 2.0
	for _, p := range points {
		x, y := r.proj.Project(p)
		vector.DrawFilledRect(r.dst, x-half, y-half, parameter.PointSize, parameter.PointSize, c, false)
	}
}

func (r *screenRenderer) FillQuad(lo, hi vmath.Vec2, c color.RGBA) {
	ax, ay := r.proj.Project(lo)
	bx, by := r.proj.Project(hi)
	x, y := min(ax, bx), min(ay, by)
	vector.DrawFilledRect(r.dst, x, y, max(ax, bx)-x, max(ay, by)-y, c, false)
}
