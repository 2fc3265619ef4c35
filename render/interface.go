package render

import (
	"image/color"

	"github.com/lixenwraith/asteroids/vmath"
)

// Renderer draws world-space primitives, implementations own the world to screen mapping
type Renderer interface {
	// DrawLines strokes consecutive points, closing the loop back to the first when closed
	DrawLines(points []vmath.Vec2, closed bool, c color.RGBA)
	// DrawPoints plots each point as a small dot
	DrawPoints(points []vmath.Vec2, c color.RGBA)
}

// QuadFiller is optionally implemented by renderers that can fill axis-aligned world rectangles
type QuadFiller interface {
	FillQuad(lo, hi vmath.Vec2, c color.RGBA)
}
