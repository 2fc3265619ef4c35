package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/audio"
	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/engine"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/status"
	"github.com/lixenwraith/asteroids/vmath"
)

// Host wires a session to the ambient services every frontend shares: sound, stats, logging
// Frontends own the window, input polling and drawing, and call Tick once per fixed step
type Host struct {
	Session *engine.Session
	Stats   *status.Registry
	Keymap  input.Keymap
	Frame   *render.Frame

	sound  *audio.SoundManager
	timer  *engine.FrameTimer
	log    *zap.Logger
	opts   render.FrameOptions
	events []engine.Event
}

// NewHost builds a session and its services from cfg
// Audio failure is logged and the game continues silent
func NewHost(cfg *config.Config, log *zap.Logger) (*Host, error) {
	km, err := input.LoadKeymap(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}

	sessionOpts := []engine.Option{engine.WithLogger(log)}
	if cfg.Game.Seed != 0 {
		sessionOpts = append(sessionOpts, engine.WithRand(vmath.NewFastRand(cfg.Game.Seed)))
	}

	h := &Host{
		Session: engine.NewSession(sessionOpts...),
		Stats:   status.NewRegistry(),
		Keymap:  km,
		Frame:   &render.Frame{},
		timer:   engine.NewFrameTimer(engine.NewMonotonicTimeProvider()),
		log:     log,
		opts:    render.FrameOptions{CollisionProbes: cfg.Render.CollisionProbes},
	}

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio.Enabled
	audioCfg.MasterVolume = cfg.Audio.Volume
	// The construction Reset is not a player reset
	h.Session.DrainEvents()

	h.sound = audio.NewSoundManager(audioCfg, log)
	if err := h.sound.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}

	log.Info("session started",
		zap.Uint64("seed", cfg.Game.Seed),
		zap.Int("asteroids", h.Session.Store().AsteroidCount()),
		zap.Bool("collision_probes", h.opts.CollisionProbes))
	return h, nil
}

// Tick advances one fixed step and routes its side effects
func (h *Host) Tick(in input.Snapshot) {
	h.timer.Frame()
	if in.WentDown(input.ButtonToggleProbes) {
		h.ToggleProbes()
	}
	h.Session.Step(in)

	h.sound.SetThrust(in.IsDown(input.ButtonThrust))
	h.events = h.Session.DrainEvents()
	h.sound.HandleEvents(h.events)
	for _, e := range h.events {
		if e.Type == engine.EventReset {
			h.log.Info("session reset", zap.Uint64("tick", h.Session.Ticks()))
		}
	}

	engine.PublishStats(h.Stats, h.Session)
	h.Stats.Floats.Get(status.KeyFPS).Set(h.timer.FPS())

	if h.Session.Ticks()%statsLogTicks == 0 {
		h.log.Debug("stats",
			zap.Float64("ship_speed", vmath.V2Mag(h.Session.Ship.Vel)),
			zap.Int("bullets", h.Session.Store().BulletCount()),
			zap.Int("asteroids", h.Session.Store().AsteroidCount()),
			zap.Float64("fps", h.timer.FPS()))
	}
}

// statsLogTicks is StatsLogInterval in ticks
const statsLogTicks = uint64(parameter.StatsLogInterval / parameter.TickInterval)

// Events returns the events produced by the last Tick
func (h *Host) Events() []engine.Event {
	return h.events
}

// ToggleProbes flips the collision probe overlay
func (h *Host) ToggleProbes() {
	h.opts.CollisionProbes = !h.opts.CollisionProbes
}

// BuildFrame refreshes Frame from the session
func (h *Host) BuildFrame() *render.Frame {
	h.Frame.Build(h.Session, h.opts)
	return h.Frame
}

// Close releases audio
func (h *Host) Close() {
	h.sound.Cleanup()
}
