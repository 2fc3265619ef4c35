package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/component"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/parameter"
)

// SoundManager manages all game audio
// Safe for use from the game loop while beep's speaker goroutine pulls from the mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	log         *zap.Logger
	mixer       *beep.Mixer
	thrust      *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig, log *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		cfg:   cfg,
		log:   log,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio device, a disabled config leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		sm.log.Info("audio disabled")
		return nil
	}
	if err := sm.cfg.Validate(); err != nil {
		return err
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferSize)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	sm.thrust = &beep.Ctrl{Streamer: CreateThrustSound(sm.cfg), Paused: true}
	sm.mixer.Add(sm.thrust)
	speaker.Play(sm.mixer)

	sm.initialized = true
	sm.log.Info("audio initialized",
		zap.Int("sample_rate", sm.cfg.SampleRate),
		zap.Float64("volume", sm.cfg.MasterVolume))
	return nil
}

// Initialized reports whether the device is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.thrust.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.thrust = nil
	sm.initialized = false
}

// PlayShot plays the gun zap
func (sm *SoundManager) PlayShot() {
	sm.play(func() beep.Streamer { return CreateShotSound(sm.cfg) })
}

// PlayExplosion plays the burst for a destroyed asteroid
func (sm *SoundManager) PlayExplosion(size component.AsteroidSize) {
	sm.play(func() beep.Streamer { return CreateExplosionSound(sm.cfg, size) })
}

// SetThrust starts or stops the engine rumble, repeated calls are no-ops
func (sm *SoundManager) SetThrust(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.thrust.Paused == !on {
		return
	}
	speaker.Lock()
	sm.thrust.Paused = !on
	speaker.Unlock()
}

// HandleEvents maps session events to sound effects
func (sm *SoundManager) HandleEvents(events []engine.Event) {
	for _, e := range events {
		switch e.Type {
		case engine.EventShot:
			sm.PlayShot()
		case engine.EventSplit:
			sm.PlayExplosion(e.Size)
		}
	}
}

// play adds a one-shot streamer built lazily so silent managers allocate nothing
func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
