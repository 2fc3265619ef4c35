package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/asteroids/parameter"
)

func TestSimClock(t *testing.T) {
	c := NewSimClock(0.25)
	if c.T() != 0 || c.Ticks() != 0 {
		t.Fatalf("Expected fresh clock at zero, got T=%v ticks=%d", c.T(), c.Ticks())
	}
	for i := 0; i < 10; i++ {
		c.Advance()
	}
	if c.Ticks() != 10 {
		t.Errorf("Expected 10 ticks, got %d", c.Ticks())
	}
	if c.T() != 2.5 {
		t.Errorf("Expected T=2.5, got %v", c.T())
	}
}

func TestSimClockNoDrift(t *testing.T) {
	c := NewSimClock(parameter.FixedDT)
	var summed float64
	for i := 0; i < 3600; i++ {
		c.Advance()
		summed += parameter.FixedDT
	}
	// Derived time stays within one rounding of the exact product
	if math.Abs(c.T()-60) > 1e-12 {
		t.Errorf("Expected T=60, got %v (summed %v)", c.T(), summed)
	}
}

func TestFrameTimerFirstFrame(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	ft := NewFrameTimer(mock)

	if dt := ft.Frame(); dt != 0 {
		t.Errorf("Expected first frame dt=0, got %v", dt)
	}
	if ft.FPS() != parameter.FPSInitial {
		t.Errorf("Expected initial FPS %v, got %v", parameter.FPSInitial, ft.FPS())
	}
}

func TestFrameTimerSmoothing(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	ft := NewFrameTimer(mock)
	ft.Frame()

	mock.Advance(20 * time.Millisecond)
	dt := ft.Frame()
	if math.Abs(dt-0.02) > 1e-9 {
		t.Errorf("Expected dt=0.02, got %v", dt)
	}
	if ft.DT() != dt {
		t.Errorf("DT() = %v, want %v", ft.DT(), dt)
	}

	a := parameter.FPSSmoothing
	want := parameter.FPSInitial*(1-a) + 50*a
	if math.Abs(ft.FPS()-want) > 1e-9 {
		t.Errorf("Expected FPS %v, got %v", want, ft.FPS())
	}

	// Steady frames converge on the true rate
	for i := 0; i < 1000; i++ {
		mock.Advance(20 * time.Millisecond)
		ft.Frame()
	}
	if math.Abs(ft.FPS()-50) > 0.01 {
		t.Errorf("Expected FPS to converge on 50, got %v", ft.FPS())
	}
}

func TestFrameTimerZeroInterval(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	ft := NewFrameTimer(mock)
	ft.Frame()
	ft.Frame()
	if math.IsInf(ft.FPS(), 0) || math.IsNaN(ft.FPS()) {
		t.Errorf("Zero interval must not poison FPS, got %v", ft.FPS())
	}
}
