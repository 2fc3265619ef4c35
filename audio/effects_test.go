package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/parameter"
)

// drain streams s to completion and returns the total sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer, limit int) (total int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("Stream did not end within %d samples", limit)
	return total, peak
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d not mono: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorDuration verifies the stream ends after the requested duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	tests := []struct {
		name string
		wave WaveType
		dur  time.Duration
	}{
		{"sine", WaveSine, 10 * time.Millisecond},
		{"square", WaveSquare, 25 * time.Millisecond},
		{"short sine", WaveSine, 5 * time.Millisecond},
		{"noise", WaveNoise, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, peak := drain(t, NewOscillator(300, tt.dur, tt.wave, rate), rate.N(time.Second))
			if total != rate.N(tt.dur) {
				t.Errorf("Expected %d samples, got %d", rate.N(tt.dur), total)
			}
			if peak > 1 {
				t.Errorf("Peak %f exceeds unity", peak)
			}
		})
	}
}

// TestSweepPhaseStaysNormalized verifies the glide keeps producing bounded output
func TestSweepPhaseStaysNormalized(t *testing.T) {
	rate := beep.SampleRate(48000)
	sweep := NewSweep(2000, 20, 40*time.Millisecond, WaveSquare, rate).(*oscillator)

	buf := make([][2]float64, 256)
	for {
		n, ok := sweep.Stream(buf)
		if sweep.phase < 0 || sweep.phase >= 1 {
			t.Fatalf("Phase %f left [0,1)", sweep.phase)
		}
		if !ok || n == 0 {
			break
		}
	}
}

// TestEnvelopeShape verifies silence at the edges and full level in the sustain
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // Constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("Expected envelope to cap at 100 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("Expected full level in sustain, got %f", buf[50][0])
	}
	if buf[99][0] > 0.11 {
		t.Errorf("Expected release near zero at the end, got %f", buf[99][0])
	}
}

// TestLowPassSmooths verifies the filter tames a square wave
func TestLowPassSmooths(t *testing.T) {
	rate := beep.SampleRate(48000)
	raw := NewOscillator(4000, 20*time.Millisecond, WaveSquare, rate)
	filtered := NewLowPass(raw, 0.05)

	_, peak := drain(t, filtered, rate.N(time.Second))
	if peak >= 0.9 {
		t.Errorf("Expected low-pass to reduce peak, got %f", peak)
	}
}

// TestExplosionScalesWithSize verifies bigger asteroids make longer bursts
func TestExplosionScalesWithSize(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	prev := 0
	for _, size := range []component.AsteroidSize{component.SizeSmall, component.SizeMedium, component.SizeBig} {
		total, _ := drain(t, CreateExplosionSound(cfg, size), rate.N(2*time.Second))
		if total != rate.N(ExplosionDuration(size)) {
			t.Errorf("%s: expected %d samples, got %d", size, rate.N(ExplosionDuration(size)), total)
		}
		if total <= prev {
			t.Errorf("%s: burst not longer than previous size", size)
		}
		prev = total
	}

	if explosionCutoff(component.SizeBig) >= explosionCutoff(component.SizeSmall) {
		t.Error("Expected bigger asteroids to use a darker filter")
	}
}

// TestShotSound verifies the zap length and that zero volume is silent
func TestShotSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	total, peak := drain(t, CreateShotSound(cfg), rate.N(time.Second))
	if total != rate.N(parameter.ShotDuration) {
		t.Errorf("Expected %d samples, got %d", rate.N(parameter.ShotDuration), total)
	}
	if peak == 0 {
		t.Error("Expected audible shot")
	}

	cfg.MasterVolume = 0
	_, peak = drain(t, CreateShotSound(cfg), rate.N(time.Second))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

// TestThrustGeneratorEndless verifies the rumble never drains
func TestThrustGeneratorEndless(t *testing.T) {
	g := NewThrustGenerator(beep.SampleRate(48000))
	buf := make([][2]float64, 1024)
	for i := 0; i < 100; i++ {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Thrust stream ended at chunk %d", i)
		}
	}
	if g.Err() != nil {
		t.Errorf("Expected no error, got %v", g.Err())
	}
}
