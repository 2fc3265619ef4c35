package parameter

import "time"

// Mixer
const (
	AudioSampleRate = 48000
	AudioBufferSize = 100 * time.Millisecond
)

// Sound effect shapes
const (
	ShotToneFreqStart = 1400.0
	ShotToneFreqEnd   = 500.0
	ShotDuration      = 80 * time.Millisecond
	ShotAttack        = 2 * time.Millisecond
	ShotRelease       = 60 * time.Millisecond

	// Explosions lengthen and deepen with asteroid size
	ExplosionBaseDuration = 120 * time.Millisecond
	ExplosionSizeDuration = 90 * time.Millisecond
	ExplosionBaseCutoff   = 0.35
	ExplosionSizeCutoff   = 0.1
	ExplosionAttack       = 3 * time.Millisecond
	ExplosionRumbleFreq   = 70.0

	ThrustRumbleFreq  = 55.0
	ThrustNoiseCutoff = 0.05
	ThrustVolume      = 0.08
)
