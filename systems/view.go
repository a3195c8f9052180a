package systems

import (
	"image"

	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/config"
	"github.com/bggd/HaniwaSlayer/geom"
	"github.com/yohamta/donburi"
)

// PlayerView is a read-only copy of what a renderer needs from a player.
type PlayerView struct {
	Position geom.Vec
	Hitbox   geom.Rect
	HitArea  geom.Rect
	State    config.StateID
	Frame    int
	Source   image.Rectangle // Frame on the sprite sheet
	Facing   float64
	SpeedX   float64
	SpeedY   float64
	OnGround bool
}

func ViewPlayer(entry *donburi.Entry) PlayerView {
	body := components.Body.Get(entry)
	player := components.Player.Get(entry)
	anim := components.Animation.Get(entry)
	return PlayerView{
		Position: body.Position,
		Hitbox:   body.Hitbox,
		HitArea:  body.HitArea(),
		State:    components.State.Get(entry).CurrentState,
		Frame:    anim.Frame(),
		Source:   anim.SourceRect(),
		Facing:   player.Direction,
		SpeedX:   player.SpeedX,
		SpeedY:   player.SpeedY,
		OnGround: player.OnGround,
	}
}
