package game

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/status"
)

func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Game.Seed = 99
	cfg.Audio.Enabled = false
	return cfg
}

func newTestHost(t *testing.T, cfg *config.Config) *Host {
	t.Helper()
	h, err := NewHost(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	t.Cleanup(h.Close)
	return h
}

func TestNewHostStartsFreshSession(t *testing.T) {
	h := newTestHost(t, testConfig())
	if got := h.Session.Store().AsteroidCount(); got != parameter.AsteroidCount {
		t.Errorf("Expected %d asteroids, got %d", parameter.AsteroidCount, got)
	}
	if h.Keymap[input.ButtonFire][0] != "Space" {
		t.Errorf("Expected default fire binding, got %v", h.Keymap[input.ButtonFire])
	}
}

func TestNewHostRejectsBadKeymap(t *testing.T) {
	cfg := testConfig()
	cfg.Keys = map[string][]string{"hyperspace": {"H"}}
	if _, err := NewHost(cfg, zap.NewNop()); err == nil {
		t.Error("Expected error for unknown action in keymap")
	}
}

func TestSeededHostsMatch(t *testing.T) {
	a := newTestHost(t, testConfig())
	b := newTestHost(t, testConfig())
	for i := range a.Session.Store().Asteroids() {
		if a.Session.Store().Asteroid(i).Pos != b.Session.Store().Asteroid(i).Pos {
			t.Fatalf("asteroid %d differs between hosts with the same seed", i)
		}
	}
}

func TestTickPublishesStatsAndEvents(t *testing.T) {
	h := newTestHost(t, testConfig())

	var in input.State
	in.Press(input.ButtonFire)
	h.Tick(&in)
	in.Advance()

	shots := 0
	for _, e := range h.Events() {
		if e.Type == engine.EventShot {
			shots++
		}
	}
	if shots != 1 {
		t.Errorf("Expected one shot event, got %d", shots)
	}

	if got := h.Stats.Ints.Get(status.KeyTick).Load(); got != 1 {
		t.Errorf("Expected tick stat 1, got %d", got)
	}
	if got := h.Stats.Ints.Get(status.KeyAsteroids).Load(); got != int64(h.Session.Store().AsteroidCount()) {
		t.Errorf("Asteroid stat %d out of sync", got)
	}
	if got := h.Stats.Floats.Get(status.KeyFPS).Get(); got != parameter.FPSInitial {
		t.Errorf("Expected initial FPS on first tick, got %v", got)
	}

	// Events are per tick
	in.Release(input.ButtonFire)
	h.Tick(&in)
	for _, e := range h.Events() {
		if e.Type == engine.EventShot {
			t.Error("Stale shot event carried into next tick")
		}
	}
}

func TestToggleProbesButton(t *testing.T) {
	h := newTestHost(t, testConfig())

	f := h.BuildFrame()
	if len(f.ProbesInside)+len(f.ProbesOutside) != 0 {
		t.Fatal("Probes should start disabled")
	}

	var in input.State
	in.Press(input.ButtonToggleProbes)
	h.Tick(&in)
	in.Advance()
	// Held does not toggle back
	h.Tick(&in)

	f = h.BuildFrame()
	if len(f.ProbesInside)+len(f.ProbesOutside) == 0 {
		t.Error("Expected probes after toggle")
	}
}

func TestFirstTickDoesNotReportReset(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h, err := NewHost(testConfig(), zap.New(core))
	if err != nil {
		t.Fatalf("NewHost: %v", err)
	}
	t.Cleanup(h.Close)

	h.Tick(input.Idle)
	for _, e := range h.Events() {
		if e.Type == engine.EventReset {
			t.Error("Construction reset leaked into the first tick")
		}
	}
	if n := logs.FilterMessage("session reset").Len(); n != 0 {
		t.Errorf("Expected no reset log on first tick, got %d", n)
	}

	// A real reset is still reported
	var in input.State
	in.Press(input.ButtonReset)
	h.Tick(&in)
	if n := logs.FilterMessage("session reset").Len(); n != 1 {
		t.Errorf("Expected one reset log after pressing reset, got %d", n)
	}
}
