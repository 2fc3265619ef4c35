package render

import (
	"image/color"
	"testing"

	"github.com/lixenwraith/asteroids/vmath"
)

var (
	testBg = color.RGBA{A: 255}
	testFg = color.RGBA{R: 255, A: 255}
)

func touchedCount(c *Canvas) int {
	n := 0
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if _, ok := c.At(x, y); ok {
				n++
			}
		}
	}
	return n
}

func TestCanvasHorizontalLine(t *testing.T) {
	c := NewCanvas(10, 10, testBg)
	c.DrawLines([]vmath.Vec2{vmath.V2(0.5, 0.5), vmath.V2(8.5, 0.5)}, false, testFg)

	for x := 0; x <= 8; x++ {
		col, ok := c.At(x, 0)
		if !ok || col != testFg {
			t.Errorf("Expected pixel (%d,0) drawn", x)
		}
	}
	if _, ok := c.At(9, 0); ok {
		t.Error("Line overshot its endpoint")
	}
	if got := touchedCount(c); got != 9 {
		t.Errorf("Expected 9 pixels touched, got %d", got)
	}
}

func TestCanvasDiagonalHasNoGaps(t *testing.T) {
	c := NewCanvas(10, 10, testBg)
	c.DrawLines([]vmath.Vec2{vmath.V2(0.5, 0.5), vmath.V2(5.5, 5.5)}, false, testFg)

	for i := 0; i <= 5; i++ {
		if _, ok := c.At(i, i); !ok {
			t.Errorf("Expected diagonal pixel (%d,%d) drawn", i, i)
		}
	}
}

func TestCanvasClosedLoop(t *testing.T) {
	c := NewCanvas(10, 10, testBg)
	square := []vmath.Vec2{vmath.V2(1.5, 1.5), vmath.V2(6.5, 1.5), vmath.V2(6.5, 6.5), vmath.V2(1.5, 6.5)}

	c.DrawLines(square, false, testFg)
	if _, ok := c.At(1, 4); ok {
		t.Error("Open polyline should not draw the closing edge")
	}

	c.Clear()
	c.DrawLines(square, true, testFg)
	if _, ok := c.At(1, 4); !ok {
		t.Error("Closed polyline should draw the closing edge")
	}
	if got := touchedCount(c); got != 20 {
		t.Errorf("Expected 20 border pixels, got %d", got)
	}
}

func TestCanvasClipsOffscreenSegments(t *testing.T) {
	c := NewCanvas(10, 10, testBg)
	c.DrawLines([]vmath.Vec2{vmath.V2(-1000, 5.5), vmath.V2(1000, 5.5)}, false, testFg)
	for x := 0; x < 10; x++ {
		if _, ok := c.At(x, 5); !ok {
			t.Errorf("Expected clipped line to cover (%d,5)", x)
		}
	}

	c.Clear()
	c.DrawLines([]vmath.Vec2{vmath.V2(-5, -5), vmath.V2(-1, 20)}, false, testFg)
	if got := touchedCount(c); got != 0 {
		t.Errorf("Segment outside canvas drew %d pixels", got)
	}
}

func TestCanvasPointsAndBounds(t *testing.T) {
	c := NewCanvas(4, 4, testBg)
	c.DrawPoints([]vmath.Vec2{vmath.V2(2.2, 3.9), vmath.V2(-1, 0), vmath.V2(4, 4)}, testFg)

	if _, ok := c.At(2, 3); !ok {
		t.Error("Expected point at (2,3)")
	}
	if got := touchedCount(c); got != 1 {
		t.Errorf("Out of bounds points must be dropped, touched %d", got)
	}
	if _, ok := c.At(-1, 0); ok {
		t.Error("At out of bounds must report untouched")
	}
}

func TestCanvasFillQuadKeepsTouchState(t *testing.T) {
	c := NewCanvas(8, 8, testBg)
	fill := color.RGBA{G: 50, A: 255}
	c.FillQuad(vmath.V2(2, 2), vmath.V2(4, 4), fill)

	col, ok := c.At(3, 3)
	if col != fill {
		t.Errorf("Expected fill color inside quad, got %+v", col)
	}
	if ok {
		t.Error("Background fill must not mark pixels touched")
	}
	if col, _ := c.At(5, 5); col != testBg {
		t.Errorf("Fill leaked outside quad: %+v", col)
	}

	// Quad larger than the canvas clamps
	c.FillQuad(vmath.V2(-100, -100), vmath.V2(100, 100), fill)
	if col, _ := c.At(7, 7); col != fill {
		t.Error("Expected oversized fill to cover the canvas")
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(4, 4, testBg)
	c.Set(1, 1, testFg)
	c.Resize(6, 3)

	if c.Width() != 6 || c.Height() != 3 {
		t.Fatalf("Expected 6x3, got %dx%d", c.Width(), c.Height())
	}
	if got := touchedCount(c); got != 0 {
		t.Errorf("Resize should clear, %d pixels still touched", got)
	}
	c.Set(5, 2, testFg)
	if _, ok := c.At(5, 2); !ok {
		t.Error("Expected corner pixel writable after resize")
	}
}

func TestCanvasWithCamera(t *testing.T) {
	c := NewCanvas(100, 100, testBg)
	cam := NewCamera()
	cam.Radius = 50
	cam.SetViewport(c.Width(), c.Height())
	c.SetProjection(cam.Projection())

	c.DrawPoints([]vmath.Vec2{vmath.V2(0.1, 0.1)}, testFg)
	if _, ok := c.At(50, 49); !ok {
		t.Error("World origin should land near the canvas center")
	}
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		wantOK         bool
	}{
		{"inside", 1, 1, 5, 5, true},
		{"crossing", -5, 5, 15, 5, true},
		{"left of canvas", -5, 0, -1, 9, false},
		{"below canvas", 0, 12, 9, 11, false},
		{"parallel outside", 0, -1, 9, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := clipSegment(tt.x0, tt.y0, tt.x1, tt.y1, 10, 10)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			for _, v := range []float64{x0, y0, x1, y1} {
				if v < 0 || v >= 10 {
					t.Errorf("Clipped coordinate %v outside [0,10)", v)
				}
			}
		})
	}
}
