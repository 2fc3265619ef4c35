package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/game"
	"github.com/lixenwraith/asteroids/parameter"
)

var (
	configPath  = flag.String("config", "", "Path to a TOML or YAML config file")
	seedFlag    = flag.Uint64("seed", 0, "Override the random seed, 0 keeps the config value")
	probesFlag  = flag.Bool("probes", false, "Start with the collision probe grid visible")
	writeConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mASTEROIDS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *probesFlag {
		cfg.Render.CollisionProbes = true
	}
	if *writeConfig != "" {
		return config.Write(*writeConfig, cfg)
	}

	log, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	host, err := game.NewHost(cfg, log)
	if err != nil {
		return err
	}
	defer host.Close()

	g, err := newGame(host, cfg, log)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(parameter.TickRate)

	log.Info("window opened",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("shutdown", zap.Uint64("ticks", host.Session.Ticks()))
	return nil
}
