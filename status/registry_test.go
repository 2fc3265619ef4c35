package status

import "testing"

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyBullets).Store(3)
	r.Ints.Get(KeyAsteroids).Store(10)
	r.Floats.Get(KeyFPS).Set(59.94)

	lines := r.Lines()
	want := []string{"asteroids: 10", "bullets: 3", "fps: 59.9"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %v", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestMetricMapCachesPointer(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	a := m.Get("x")
	a.Set(1.5)
	if b := m.Get("x"); b != a || b.Get() != 1.5 {
		t.Error("Expected Get to return the cached metric")
	}
	if m.Count() != 1 {
		t.Errorf("Count = %d, want 1", m.Count())
	}
}
