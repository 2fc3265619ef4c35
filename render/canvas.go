package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/asteroids/vmath"
)

// Canvas is a software raster target with touch tracking, used by the terminal frontend
// Lines are walked with supercover DDA so thin diagonals never leave gaps between cells
type Canvas struct {
	pixels  []color.RGBA
	touched []bool
	width   int
	height  int
	bg      color.RGBA
	proj    Projection
}

// NewCanvas creates a canvas cleared to bg with an identity projection
func NewCanvas(width, height int, bg color.RGBA) *Canvas {
	c := &Canvas{
		bg:   bg,
		proj: Projection{m: mgl32.Ident4()},
	}
	c.Resize(width, height)
	return c
}

// Resize adjusts dimensions, reallocates only if capacity insufficient
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.pixels) < size {
		c.pixels = make([]color.RGBA, size)
		c.touched = make([]bool, size)
	} else {
		c.pixels = c.pixels[:size]
		c.touched = c.touched[:size]
	}
	c.width = width
	c.height = height
	c.Clear()
}

// Clear resets all pixels to the background using exponential copy
func (c *Canvas) Clear() {
	if len(c.pixels) == 0 {
		return
	}
	c.pixels[0] = c.bg
	c.touched[0] = false
	for filled := 1; filled < len(c.pixels); filled *= 2 {
		copy(c.pixels[filled:], c.pixels[:filled])
	}
	for filled := 1; filled < len(c.touched); filled *= 2 {
		copy(c.touched[filled:], c.touched[:filled])
	}
}

// SetProjection sets the world to pixel transform used by the Renderer methods
func (c *Canvas) SetProjection(p Projection) {
	c.proj = p
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// At returns the pixel color and whether anything was drawn there since Clear
func (c *Canvas) At(x, y int) (color.RGBA, bool) {
	if !c.inBounds(x, y) {
		return color.RGBA{}, false
	}
	i := y*c.width + x
	return c.pixels[i], c.touched[i]
}

// Set plots a pixel, out of bounds is ignored
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if !c.inBounds(x, y) {
		return
	}
	i := y*c.width + x
	c.pixels[i] = col
	c.touched[i] = true
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// DrawLines implements Renderer
func (c *Canvas) DrawLines(points []vmath.Vec2, closed bool, col color.RGBA) {
	n := len(points)
	if n == 0 {
		return
	}
	if n == 1 {
		c.DrawPoints(points, col)
		return
	}
	segments := n - 1
	if closed {
		segments = n
	}
	for i := 0; i < segments; i++ {
		x0, y0 := c.proj.Project(points[i])
		x1, y1 := c.proj.Project(points[(i+1)%n])
		c.strokeSegment(float64(x0), float64(y0), float64(x1), float64(y1), col)
	}
}

// DrawPoints implements Renderer, one pixel per point
func (c *Canvas) DrawPoints(points []vmath.Vec2, col color.RGBA) {
	for _, p := range points {
		x, y := c.proj.Project(p)
		c.Set(int(math.Floor(float64(x))), int(math.Floor(float64(y))), col)
	}
}

// FillQuad implements QuadFiller, background fill does not mark pixels touched
func (c *Canvas) FillQuad(lo, hi vmath.Vec2, col color.RGBA) {
	ax, ay := c.proj.Project(lo)
	bx, by := c.proj.Project(hi)
	x0 := clampInt(int(math.Floor(float64(min(ax, bx)))), 0, c.width)
	x1 := clampInt(int(math.Ceil(float64(max(ax, bx)))), 0, c.width)
	y0 := clampInt(int(math.Floor(float64(min(ay, by)))), 0, c.height)
	y1 := clampInt(int(math.Ceil(float64(max(ay, by)))), 0, c.height)
	for y := y0; y < y1; y++ {
		row := c.pixels[y*c.width+x0 : y*c.width+x1]
		for i := range row {
			row[i] = col
		}
	}
}

// strokeSegment clips to the canvas then walks covered pixels
func (c *Canvas) strokeSegment(x0, y0, x1, y1 float64, col color.RGBA) {
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, float64(c.width), float64(c.height))
	if !ok {
		return
	}
	vmath.TraverseFloat(x0, y0, x1, y1, func(x, y int) bool {
		c.Set(x, y, col)
		return true
	})
}

// clipSegment is Liang-Barsky against [0, w) x [0, h)
func clipSegment(x0, y0, x1, y1, w, h float64) (float64, float64, float64, float64, bool) {
	if !vmath.Finite(x0) || !vmath.Finite(y0) || !vmath.Finite(x1) || !vmath.Finite(y1) {
		return 0, 0, 0, 0, false
	}
	// Keep endpoints strictly inside so floor never lands on w or h
	const eps = 1e-6
	w -= eps
	h -= eps
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, false
	}

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, w - x0},
		{-dy, y0},
		{dy, h - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
