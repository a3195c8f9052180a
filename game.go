package main

import (
	"time"

	"github.com/bggd/HaniwaSlayer/config"
	"github.com/bggd/HaniwaSlayer/leveldata"
	"github.com/bggd/HaniwaSlayer/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

type Game struct {
	cfg     *config.Config
	level   *leveldata.Level
	scene   *scenes.Platformer
	camera  Camera
	watcher *config.Watcher
	log     *zap.Logger
	last    time.Time
	reset   bool
}

func NewGame(cfg *config.Config, lvl *leveldata.Level, watcher *config.Watcher, log *zap.Logger) *Game {
	g := &Game{
		cfg:     cfg,
		level:   lvl,
		watcher: watcher,
		log:     log,
	}
	g.restart()
	return g
}

func (g *Game) restart() {
	g.scene = scenes.NewPlatformer(g.cfg, g.level, g.log)
	g.camera = Camera{Position: g.scene.Player().Position, Zoom: g.cfg.Window.Zoom}
	g.last = time.Now()
}

func (g *Game) Update() error {
	g.applyReloads()

	// restart on the press edge only
	reset := isActionPressed(ActionReset)
	if reset && !g.reset {
		g.restart()
	}
	g.reset = reset

	now := time.Now()
	snap := pollInput()
	snap.Elapsed = now.Sub(g.last)
	g.last = now

	g.scene.Update(snap)
	g.camera.Follow(g.scene.Player().Position)
	return nil
}

// applyReloads drains configs published by the watcher between ticks so the
// scene is never touched from another goroutine.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-g.watcher.Updates():
			if !ok {
				g.watcher = nil
				return
			}
			// level and logging settings only apply at startup
			c.Level = g.cfg.Level
			c.Log = g.cfg.Log
			g.cfg = c
			g.camera.Zoom = c.Window.Zoom
			ebiten.SetTPS(c.Window.TPS)
			g.scene.ApplyTuning(c)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	player := g.scene.Player()
	drawLevel(screen, &g.camera, g.scene.WallAreas())
	drawPlayer(screen, &g.camera, player)
	drawDebug(screen, player, g.scene.Ticks())
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
