package systems

import (
	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/config"
	"github.com/bggd/HaniwaSlayer/gamemath"
	"github.com/bggd/HaniwaSlayer/tags"
	"github.com/bggd/HaniwaSlayer/world"
	"github.com/yohamta/donburi"
)

// UpdatePlayers steps every player once.
func UpdatePlayers(w *world.World, cfg *config.Config) {
	tags.Player.Each(w.Arena(), func(entry *donburi.Entry) {
		UpdatePlayer(w, entry, cfg)
	})
}

// UpdatePlayer runs one tick of player motion using the input already
// resolved for this tick. X is fully resolved before Y.
func UpdatePlayer(w *world.World, entry *donburi.Entry, cfg *config.Config) {
	input := components.Input.Get(entry)
	player := components.Player.Get(entry)
	step := cfg.Physics.MoveStep
	facing := player.Direction

	// Horizontal
	player.SpeedX = input.X * player.MaxSpeed
	if input.X != 0 {
		player.Direction = gamemath.Sign(input.X)
	}
	w.MoveX(entry, player.SpeedX, step, world.ResponderFunc(func(self, other *donburi.Entry, axis world.Axis, dir float64) world.Result {
		player.SpeedX = 0
		w.Flush(self, other, axis, dir)
		return world.Stop
	}))

	// Gravity is added before the jump check so an impulse replaces it
	player.SpeedY += player.Gravity
	if cfg.Physics.MaxFall > 0 {
		player.SpeedY = gamemath.ClampSpeed(player.SpeedY, cfg.Physics.MaxFall)
	}

	player.OnGround = onGround(w, entry, cfg)
	if player.OnGround {
		player.CoyoteTimer = cfg.Player.CoyoteFrames
	} else if player.CoyoteTimer > 0 {
		player.CoyoteTimer--
	}

	if player.CoyoteTimer > 0 && (input.Jump.JustPressed || input.JumpBuffer > 0) {
		input.JumpBuffer = 0
		player.CoyoteTimer = 0
		player.SpeedY = player.JumpImpulse
	}

	// Vertical
	w.MoveY(entry, player.SpeedY, step, world.ResponderFunc(func(self, other *donburi.Entry, axis world.Axis, dir float64) world.Result {
		player.SpeedY = 0
		w.Flush(self, other, axis, dir)
		return world.Stop
	}))

	player.OnGround = onGround(w, entry, cfg)
	updatePlayerState(entry, nextState(input, player), facing != player.Direction)
}

func onGround(w *world.World, entry *donburi.Entry, cfg *config.Config) bool {
	return w.Probe(entry, 0, -cfg.Physics.GroundProbe) != nil
}

func nextState(input *components.InputData, player *components.PlayerData) config.StateID {
	switch {
	case player.SpeedY != 0 || !player.OnGround:
		return config.Jump
	case input.X != 0:
		return config.Run
	default:
		return config.Idle
	}
}

// updatePlayerState records next and advances its animation. Leaving a state
// restarts that state's animation; running after a turn restarts the run
// cycle, which then shows its first frame for the turn tick.
func updatePlayerState(entry *donburi.Entry, next config.StateID, turned bool) {
	state := components.State.Get(entry)
	anim := components.Animation.Get(entry)

	restarted := false
	if next == config.Run && turned {
		if run, ok := anim.Animations[config.Run]; ok {
			run.Restart()
			restarted = true
		}
	}
	state.Set(next)
	anim.SetAnimation(next)
	if anim.CurrentAnimation != nil && !restarted {
		anim.CurrentAnimation.Update()
	}
}

// ApplyTuning copies the per-player movement constants from cfg. Hitbox and
// animation strips keep the values the player was created with.
func ApplyTuning(w donburi.World, cfg *config.Config) {
	tags.Player.Each(w, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		player.Gravity = cfg.Physics.Gravity
		player.MaxSpeed = cfg.Player.MaxWalkSpeed
		player.JumpImpulse = cfg.Player.JumpImpulse
	})
}
