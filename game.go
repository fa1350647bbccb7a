package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/stephencox/swarm-playground/swarm"
)

const (
	defaultConfigFile = "swarm.toml"
	maxCount          = 200
	countStep         = 10
)

var overlayBackground = color.RGBA{0, 0, 0, 160}

// Game drives a swarm from Ebitengine. Key bindings edit a pending copy of
// the config which is applied by resetting the swarm, like the control panel's
// restart button.
type Game struct {
	swarm      *swarm.Swarm
	cfg        swarm.Config
	configPath string
	paused     bool
	overlay    bool
	log        logrus.FieldLogger
}

// NewGame wraps s. configPath is where S and L save and load the config.
func NewGame(s *swarm.Swarm, configPath string, log logrus.FieldLogger) *Game {
	if configPath == "" {
		configPath = defaultConfigFile
	}
	return &Game{
		swarm:      s,
		cfg:        s.Config(),
		configPath: configPath,
		overlay:    true,
		log:        log,
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.handleInput()
	g.trackPointer()

	if g.paused {
		return nil
	}
	g.swarm.Advance()
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(dst *ebiten.Image) {
	g.swarm.Draw(screen{img: dst})

	if !g.overlay {
		return
	}
	st := g.swarm.Stats()
	msg := fmt.Sprintf("TPS %0.1f  tick %d\nparticles %d  contacts %d\nmean speed %0.2f\nalgo %s  mouse %v  leader %v\n[space] pause  [r] reset  [a] algo  [m] mouse  [p] leader\n[d] direction  [c] colour  [+/-] count  [s/l] save/load  [h] hide",
		ebiten.ActualTPS(), st.Tick, st.Count, st.Contacts, st.MeanSpeed,
		g.cfg.Algo, g.cfg.FollowMouse, g.cfg.Leader)
	vector.DrawFilledRect(dst, 0, 0, 360, 100, overlayBackground, false)
	ebitenutil.DebugPrint(dst, msg)
}

// Layout follows the window size and resizes the world to match.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.swarm.Size()
	if int(w) != outsideWidth || int(h) != outsideHeight {
		g.swarm.Resize(float64(outsideWidth), float64(outsideHeight))
		g.cfg.Width, g.cfg.Height = float64(outsideWidth), float64(outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// trackPointer forwards the cursor to the swarm while it is over the window.
func (g *Game) trackPointer() {
	mx, my := ebiten.CursorPosition()
	w, h := g.swarm.Size()
	if !ebiten.IsFocused() || mx < 0 || my < 0 || float64(mx) >= w || float64(my) >= h {
		g.swarm.ClearPointer()
		return
	}
	g.swarm.SetPointer(float64(mx), float64(my))
}

// handleInput processes keyboard input
func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.overlay = !g.overlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.load()
	}

	reset := inpututil.IsKeyJustPressed(ebiten.KeyR)
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.cfg.Algo = g.cfg.Algo.Next()
		reset = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.cfg.FollowMouse = !g.cfg.FollowMouse
		reset = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.cfg.Leader = !g.cfg.Leader
		reset = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.cfg.ShowDirection = !g.cfg.ShowDirection
		reset = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.cfg.ColourByHeading = !g.cfg.ColourByHeading
		reset = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.cfg.Count = min(g.cfg.Count+countStep, maxCount)
		reset = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.cfg.Count = max(g.cfg.Count-countStep, 1)
		reset = true
	}
	if reset {
		g.reset()
	}
}

func (g *Game) reset() {
	if err := g.swarm.Reset(g.cfg); err != nil {
		g.log.WithError(err).Error("reset swarm")
		g.cfg = g.swarm.Config()
	}
}

func (g *Game) save() {
	if err := swarm.SaveConfig(g.configPath, g.cfg); err != nil {
		g.log.WithError(err).Error("save config")
		return
	}
	g.log.WithField("path", g.configPath).Info("config saved")
}

func (g *Game) load() {
	cfg, err := swarm.LoadConfig(g.configPath)
	if err != nil {
		g.log.WithError(err).Error("load config")
		return
	}
	// The window keeps its size.
	cfg.Width, cfg.Height = g.cfg.Width, g.cfg.Height
	g.cfg = cfg
	g.reset()
	g.log.WithField("path", g.configPath).Info("config loaded")
}
