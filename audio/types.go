package audio

import (
	"errors"

	"github.com/lixenwraith/asteroids/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Bullet fired
	SoundExplosion                  // Asteroid destroyed, shaped by size
	SoundThrust                     // Engine rumble while thrusting
	soundTypeCount
)

// AudioConfig holds mixing settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundShot:      0.6,
			SoundExplosion: 1.0,
			SoundThrust:    1.0,
		},
	}
}

// Sentinel errors
var (
	ErrInvalidSampleRate = errors.New("audio: sample rate must be positive")
)

// Validate clamps volumes into [0, 1] and rejects unusable sample rates
func (c *AudioConfig) Validate() error {
	if c.SampleRate <= 0 {
		return ErrInvalidSampleRate
	}
	c.MasterVolume = clamp01(c.MasterVolume)
	for k, v := range c.EffectVolumes {
		c.EffectVolumes[k] = clamp01(v)
	}
	return nil
}

// effectVolume is the final gain for a sound type
func (c *AudioConfig) effectVolume(t SoundType) float64 {
	v, ok := c.EffectVolumes[t]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
