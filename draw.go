package main

import (
	"fmt"
	"image/color"

	"github.com/bggd/HaniwaSlayer/gamemath"
	"github.com/bggd/HaniwaSlayer/geom"
	"github.com/bggd/HaniwaSlayer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// cameraSpeed is how far the camera may travel toward the player per tick.
const cameraSpeed = 6

// Camera follows a world point. World Y is up, screen Y is down.
type Camera struct {
	Position geom.Vec
	Zoom     float64
}

func (c *Camera) Follow(target geom.Vec) {
	c.Position.X = gamemath.Approach(c.Position.X, target.X, cameraSpeed)
	c.Position.Y = gamemath.Approach(c.Position.Y, target.Y, cameraSpeed)
}

// toScreen returns the screen rectangle of a world rectangle.
func (c *Camera) toScreen(r geom.Rect, screenW, screenH int) (x, y, w, h float32) {
	x = float32(float64(screenW)/2 + (r.X-c.Position.X)*c.Zoom)
	y = float32(float64(screenH)/2 - (r.Top()-c.Position.Y)*c.Zoom)
	return x, y, float32(r.W * c.Zoom), float32(r.H * c.Zoom)
}

func (c *Camera) strokeRect(screen *ebiten.Image, r geom.Rect, clr color.Color) {
	b := screen.Bounds()
	x, y, w, h := c.toScreen(r, b.Dx(), b.Dy())
	if x+w < 0 || y+h < 0 || x > float32(b.Dx()) || y > float32(b.Dy()) {
		return
	}
	vector.FillRect(screen, x, y, w, 1, clr, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, clr, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, clr, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, clr, false) // Right
}

func drawLevel(screen *ebiten.Image, cam *Camera, walls []geom.Rect) {
	for _, r := range walls {
		cam.strokeRect(screen, r, colornames.Slategray)
	}
}

func drawPlayer(screen *ebiten.Image, cam *Camera, v systems.PlayerView) {
	clr := colornames.Dodgerblue
	if !v.OnGround {
		clr = colornames.Orange
	}
	cam.strokeRect(screen, v.HitArea, clr)

	// facing marker
	c := v.HitArea.Center()
	marker := geom.Rect{X: c.X + v.Facing*v.HitArea.W/4 - 1, Y: c.Y - 1, W: 2, H: 2}
	cam.strokeRect(screen, marker, colornames.White)
}

func drawDebug(screen *ebiten.Image, v systems.PlayerView, tick uint64) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS %0.1f  tick %d\nstate %s frame %d src %v\npos %.2f, %.2f\nhsp %.2f vsp %.2f ground %t",
		ebiten.ActualTPS(), tick,
		v.State, v.Frame, v.Source,
		v.Position.X, v.Position.Y,
		v.SpeedX, v.SpeedY, v.OnGround,
	))
}
