package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 1200
	screenHeight = 800
)

const configFile = "config.json"

// Game wires the particle system to the Ebitengine loop: it measures frame
// time, feeds input events to the system, and dispatches drawing.
type Game struct {
	cfg    Config
	system *ParticleSystem
	rng    *rand.Rand
	last   time.Time
	paused bool
}

// NewGame creates a game with an initial particle seeding.
func NewGame(cfg Config) *Game {
	g := &Game{
		cfg: cfg,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	g.reset()
	g.last = time.Now()
	return g
}

// reset replaces the system with a freshly seeded one, keeping the RNG.
func (g *Game) reset() {
	g.system = NewParticleSystem(&g.cfg, screenWidth, screenHeight, g.rng)
	g.system.Seed()
}

// Update is called each tick by Ebitengine. The step size is the wall-clock
// delta since the previous tick, trusted as-is.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.last).Seconds()
	g.last = now

	g.handleInput()

	if g.paused {
		return nil
	}

	g.system.Update(dt)
	return nil
}

// handleInput processes mouse and keyboard input.
func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.system.SpawnBurst(float64(mx), float64(my), g.cfg.BurstSize)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.system.WindEnabled = !g.system.WindEnabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.cfg.Save(configFile); err != nil {
			log.Printf("save config: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		cfg, err := LoadConfig(configFile)
		if err != nil {
			log.Printf("load config: %v", err)
			return
		}
		g.cfg = cfg
	}
}

// Draw is called each frame by Ebitengine.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 20, A: 255})
	g.system.Draw(screen)

	msg := fmt.Sprintf("FPS: %.0f  particles: %d", ebiten.ActualFPS(), g.system.Len())
	if g.system.WindEnabled {
		msg += "  [wind]"
	}
	if g.paused {
		msg += "  [paused]"
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
