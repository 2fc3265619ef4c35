package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestMod(t *testing.T) {
	tests := []struct {
		name string
		x, m float64
		want float64
	}{
		{"inside", 1.0, TwoPi, 1.0},
		{"wrap positive", TwoPi + 0.5, TwoPi, 0.5},
		{"wrap negative", -0.5, TwoPi, TwoPi - 0.5},
		{"exact period", TwoPi, TwoPi, 0},
		{"zero", 0, TwoPi, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mod(tt.x, tt.m)
			if !near(got, tt.want) {
				t.Errorf("Mod(%v, %v) = %v, want %v", tt.x, tt.m, got, tt.want)
			}
			if got < 0 || got >= tt.m {
				t.Errorf("Mod(%v, %v) = %v out of [0, m)", tt.x, tt.m, got)
			}
		})
	}

	// Tiny negatives must not round up to m
	if got := Mod(-1e-18, TwoPi); got < 0 || got >= TwoPi {
		t.Errorf("Mod(-1e-18) = %v out of range", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(1.2, 0.75, 0); got != 1.2 {
		t.Errorf("Lerp at 0 = %v, want 1.2", got)
	}
	if got := Lerp(1.2, 0.75, 1); !near(got, 0.75) {
		t.Errorf("Lerp at 1 = %v, want 0.75", got)
	}
	if got := Lerp(2, 6, 0.5); got != 4 {
		t.Errorf("Lerp midpoint = %v, want 4", got)
	}
}

func TestV2Rotate(t *testing.T) {
	// Quarter turn maps facing (0,1) to (-1,0)
	r := V2Rotate(V2(0, 1), math.Pi/2)
	if !near(r.X, -1) || !near(r.Y, 0) {
		t.Errorf("Rotate((0,1), π/2) = %+v, want (-1,0)", r)
	}

	// Rotation preserves length
	v := V2(3, -4)
	for _, a := range []float64{0.1, 1, 2.5, 5} {
		if got := V2Mag(V2Rotate(v, a)); !near(got, 5) {
			t.Errorf("|Rotate(v, %v)| = %v, want 5", a, got)
		}
	}
}

func TestV2NormalizeZero(t *testing.T) {
	if got := V2Normalize(Vec2{}); got != (Vec2{}) {
		t.Errorf("Normalize(0) = %+v, want zero vector", got)
	}
	n := V2Normalize(V2(0, -7))
	if !near(n.Y, -1) || n.X != 0 {
		t.Errorf("Normalize((0,-7)) = %+v", n)
	}
}

func TestV2Perp(t *testing.T) {
	v := V2(2, 3)
	if got := V2PerpLeft(v); got != V2(-3, 2) {
		t.Errorf("PerpLeft = %+v, want (-3,2)", got)
	}
	if got := V2PerpRight(v); got != V2(3, -2) {
		t.Errorf("PerpRight = %+v, want (3,-2)", got)
	}
	if d := V2Dot(v, V2PerpLeft(v)); d != 0 {
		t.Errorf("v·perp(v) = %v, want 0", d)
	}
}

func TestV2Finite(t *testing.T) {
	if !V2Finite(V2(1, 2)) {
		t.Error("Expected (1,2) to be finite")
	}
	if V2Finite(V2(math.NaN(), 0)) || V2Finite(V2(0, math.Inf(1))) {
		t.Error("Expected NaN/Inf components to be non-finite")
	}
}
