package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/asteroids/config"
	"github.com/lixenwraith/asteroids/game"
	"github.com/lixenwraith/asteroids/input"
	"github.com/lixenwraith/asteroids/render"
	"github.com/lixenwraith/asteroids/vmath"
)

// windowGame adapts a game.Host to ebiten's Update/Draw/Layout loop
type windowGame struct {
	host   *game.Host
	keys   bindings
	in     input.State
	camera *render.Camera
	screen screenRenderer
	log    *zap.Logger

	showStats bool
	face      text.Face

	grabbing bool
	grab     vmath.Vec2
}

func newGame(host *game.Host, cfg *config.Config, log *zap.Logger) (*windowGame, error) {
	keys, err := resolveKeys(host.Keymap)
	if err != nil {
		return nil, err
	}
	g := &windowGame{
		host:      host,
		keys:      keys,
		camera:    render.NewCamera(),
		log:       log,
		showStats: cfg.Render.ShowStats,
	}
	if cfg.Render.FontPath != "" {
		face, err := loadFace(cfg.Render.FontPath, cfg.Render.FontSize)
		if err != nil {
			log.Warn("font unavailable, using debug text", zap.String("path", cfg.Render.FontPath), zap.Error(err))
		} else {
			g.face = face
		}
	}
	return g, nil
}

func loadFace(path string, size float64) (text.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

func (g *windowGame) Update() error {
	g.keys.poll(&g.in)

	if g.in.WentDown(input.ButtonQuit) {
		return ebiten.Termination
	}
	if g.in.WentDown(input.ButtonToggleFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	g.updateCamera()

	g.host.Tick(&g.in)
	g.in.Advance()
	return nil
}

// updateCamera zooms around the cursor on wheel and pans while the right button is held
func (g *windowGame) updateCamera() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	if _, dy := ebiten.Wheel(); dy != 0 {
		under := g.camera.ScreenToWorld(x, y)
		g.camera.Zoom(dy)
		g.camera.Anchor(under, x, y)
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.grabbing = true
		g.grab = g.camera.ScreenToWorld(x, y)
	case g.grabbing && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.grabbing = false
	case g.grabbing:
		g.camera.Anchor(g.grab, x, y)
	}
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	screen.Fill(render.ColorOutOfWorld)

	g.screen.dst = screen
	g.screen.proj = g.camera.Projection()
	g.host.BuildFrame().Draw(&g.screen)

	if g.showStats {
		g.drawStats(screen)
	}
}

func (g *windowGame) drawStats(screen *ebiten.Image) {
	msg := strings.Join(g.host.Stats.Lines(), "\n")
	if g.face == nil {
		ebitenutil.DebugPrintAt(screen, msg, 4, 4)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(4, 4)
	op.ColorScale.ScaleWithColor(render.ColorText)
	m := g.face.Metrics()
	op.LineSpacing = m.HAscent + m.HDescent + m.HLineGap
	text.Draw(screen, msg, g.face, op)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
