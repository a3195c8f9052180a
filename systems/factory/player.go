package factory

import (
	"github.com/bggd/HaniwaSlayer/archetypes"
	"github.com/bggd/HaniwaSlayer/assets/animations"
	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/config"
	"github.com/bggd/HaniwaSlayer/geom"
	"github.com/bggd/HaniwaSlayer/world"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// CreatePlayer spawns and registers the player at pos, idle and facing right.
func CreatePlayer(w *world.World, cfg *config.Config, pos geom.Vec) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Body.SetValue(player, components.BodyData{
		ID:       w.GenerateID(),
		Position: pos,
		Hitbox:   cfg.Player.Hitbox,
	})
	components.Player.SetValue(player, components.PlayerData{
		Gravity:     cfg.Physics.Gravity,
		MaxSpeed:    cfg.Player.MaxWalkSpeed,
		JumpImpulse: cfg.Player.JumpImpulse,
		Direction:   1,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  config.Idle,
		PreviousState: config.Idle,
	})

	a := cfg.Animation
	animData := components.AnimationData{
		Animations: animations.Set(a.Defs()),
		Sheet:      animations.NewSheet(a.SheetWidth, a.SheetHeight, a.FrameWidth, a.FrameHeight),
	}
	animData.SetAnimation(config.Idle)
	components.Animation.SetValue(player, animData)

	w.Add(player)
	w.Logger().Info("player created",
		zap.Uint64("id", uint64(components.Body.Get(player).ID)),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
	)
	return player
}
