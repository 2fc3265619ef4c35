package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/game"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/parameter"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/vmath"
)

// defaultLogFile keeps log output off the screen the game draws on
const defaultLogFile = "logs/asteroids-term.log"

var (
	configPath = flag.String("config", "", "Path to a TOML or YAML config file")
	seedFlag   = flag.Uint64("seed", 0, "Override the random seed, 0 keeps the config value")
	probesFlag = flag.Bool("probes", false, "Start with the collision probe grid visible")
)

// Game drives a host from a tcell screen
type Game struct {
	screen tcell.Screen
	host   *game.Host
	keys   keyIndex
	hold   *input.HoldTracker
	camera *render.Camera
	canvas *render.Canvas
	log    *zap.Logger

	showStats bool
	grabbing  bool
	grab      vmath.Vec2
}

// oneShotButtons fire once per physical press, auto-repeat is ignored
var oneShotButtons = []input.Button{
	input.ButtonReset,
	input.ButtonSplitFirst,
	input.ButtonToggleProbes,
	input.ButtonToggleFullscreen,
	input.ButtonQuit,
}

func newHoldTracker(window time.Duration) *input.HoldTracker {
	h := input.NewHoldTracker(window)
	h.SetOneShot(parameter.TermRepeatGuard, oneShotButtons...)
	return h
}

func NewGame(screen tcell.Screen, host *game.Host, cfg *config.Config, log *zap.Logger) *Game {
	g := &Game{
		screen:    screen,
		host:      host,
		keys:      newKeyIndex(host.Keymap),
		hold:      newHoldTracker(cfg.Terminal.HoldWindow),
		camera:    render.NewCamera(),
		canvas:    render.NewCanvas(1, 1, render.ColorOutOfWorld),
		log:       log,
		showStats: cfg.Render.ShowStats,
	}
	g.handleResize()
	return g
}

func (g *Game) handleResize() {
	cols, rows := g.screen.Size()
	w, h := max(cols, 1), max(rows, 1)*parameter.TermCellAspect
	if w == g.canvas.Width() && h == g.canvas.Height() {
		return
	}
	g.canvas.Resize(w, h)
	g.camera.SetViewport(w, h)
	g.screen.Sync()
	g.log.Debug("resize", zap.Int("cols", cols), zap.Int("rows", rows))
}

// handleInput returns false when the game should stop
func (g *Game) handleInput(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		for _, b := range g.keys.buttons(ev) {
			g.hold.Touch(b, now)
		}

	case *tcell.EventMouse:
		g.handleMouse(ev)

	case *tcell.EventResize:
		g.handleResize()
	}
	return true
}

// handleMouse zooms on wheel and pans on right drag, cell positions map to the top pixel of the cell
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := float64(cx)+0.5, float64(cy*parameter.TermCellAspect)+0.5
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		g.zoomAt(1, x, y)
	case btn&tcell.WheelDown != 0:
		g.zoomAt(-1, x, y)
	}

	switch {
	case btn&tcell.Button2 != 0 && !g.grabbing:
		g.grabbing = true
		g.grab = g.camera.ScreenToWorld(x, y)
	case btn&tcell.Button2 != 0:
		g.camera.Anchor(g.grab, x, y)
	default:
		g.grabbing = false
	}
}

func (g *Game) zoomAt(notches float64, x, y float64) {
	under := g.camera.ScreenToWorld(x, y)
	g.camera.Zoom(notches)
	g.camera.Anchor(under, x, y)
}

// tick returns false when the game should stop
func (g *Game) tick(now time.Time) bool {
	in := g.hold.Update(now)
	if in.WentDown(input.ButtonQuit) {
		return false
	}
	g.host.Tick(in)

	// One-shot buttons must not fire again from a lingering hold
	for _, b := range oneShotButtons {
		g.hold.Release(b)
	}
	g.hold.Advance()
	return true
}

func (g *Game) draw() {
	g.canvas.Clear()
	g.canvas.SetProjection(g.camera.Projection())
	g.host.BuildFrame().Draw(g.canvas)
	present(g.screen, g.canvas)
	if g.showStats {
		drawText(g.screen, g.host.Stats.Lines(), render.ColorText)
	}
	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !g.handleInput(ev, time.Now()) {
				return
			}

		case now := <-ticker.C:
			if !g.tick(now) {
				return
			}
			g.draw()
		}
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *probesFlag {
		cfg.Render.CollisionProbes = true
	}
	if cfg.Logging.File == "" {
		cfg.Logging.File = defaultLogFile
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	host, err := game.NewHost(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer host.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error("panic", zap.Any("value", r))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mASTEROIDS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	NewGame(screen, host, cfg, log).run()
	screen.Fini()
	log.Info("shutdown", zap.Uint64("ticks", host.Session.Ticks()))
}
