package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves, frequency glides linearly from start to end
type oscillator struct {
	freqStart float64
	freqEnd   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freqStart to freqEnd over duration
func NewSweep(freqStart, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqStart: freqStart,
		freqEnd:   freqEnd,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freqStart + (o.freqEnd-o.freqStart)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope capped at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// lowPass is a one-pole filter, alpha in (0, 1], lower is darker
type lowPass struct {
	streamer beep.Streamer
	alpha    float64
	state    [2]float64
}

// NewLowPass wraps s with a one-pole low-pass filter
func NewLowPass(s beep.Streamer, alpha float64) beep.Streamer {
	return &lowPass{streamer: s, alpha: min(max(alpha, 0.001), 1)}
}

func (f *lowPass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			f.state[ch] += f.alpha * (samples[i][ch] - f.state[ch])
			samples[i][ch] = f.state[ch]
		}
	}
	return n, ok
}

func (f *lowPass) Err() error { return f.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateShotSound generates a short falling zap
func CreateShotSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.ShotToneFreqStart, parameter.ShotToneFreqEnd, parameter.ShotDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ShotDuration, parameter.ShotAttack, parameter.ShotRelease, rate)

	return newVolume(shaped, cfg.effectVolume(SoundShot))
}

// ExplosionDuration is the length of the burst for a destroyed asteroid of size
func ExplosionDuration(size component.AsteroidSize) time.Duration {
	return parameter.ExplosionBaseDuration + time.Duration(size)*parameter.ExplosionSizeDuration
}

// explosionCutoff darkens the noise for larger asteroids
func explosionCutoff(size component.AsteroidSize) float64 {
	return parameter.ExplosionBaseCutoff - float64(size)*parameter.ExplosionSizeCutoff
}

// CreateExplosionSound generates filtered noise over a low rumble, bigger rocks are longer and deeper
func CreateExplosionSound(cfg *AudioConfig, size component.AsteroidSize) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	dur := ExplosionDuration(size)

	noise := NewLowPass(NewOscillator(0, dur, WaveNoise, rate), explosionCutoff(size))
	rumble := NewOscillator(parameter.ExplosionRumbleFreq, dur, WaveSine, rate)
	mixed := beep.Mix(
		newVolume(noise, 0.8),
		newVolume(rumble, 0.3),
	)
	shaped := NewEnvelope(mixed, dur, parameter.ExplosionAttack, dur-parameter.ExplosionAttack, rate)

	return newVolume(shaped, cfg.effectVolume(SoundExplosion))
}

// ThrustGenerator is an endless engine rumble
type ThrustGenerator struct {
	sr    beep.SampleRate
	pos   int
	noise float64
}

// NewThrustGenerator creates a thrust rumble generator
func NewThrustGenerator(sr beep.SampleRate) *ThrustGenerator {
	return &ThrustGenerator{sr: sr}
}

func (g *ThrustGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Smoothed noise gives the hiss, the sine gives body
		g.noise += parameter.ThrustNoiseCutoff * ((rand.Float64()*2 - 1) - g.noise)
		sample := parameter.ThrustVolume * (math.Sin(2*math.Pi*parameter.ThrustRumbleFreq*t) + 2*g.noise)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThrustGenerator) Err() error {
	return nil
}

// CreateThrustSound returns the rumble at configured volume
func CreateThrustSound(cfg *AudioConfig) beep.Streamer {
	return newVolume(NewThrustGenerator(beep.SampleRate(cfg.SampleRate)), cfg.effectVolume(SoundThrust))
}
