package systems

import (
	"github.com/bggd/HaniwaSlayer/components"
	"github.com/bggd/HaniwaSlayer/config"
	"github.com/bggd/HaniwaSlayer/tags"
	"github.com/yohamta/donburi"
)

// UpdateInput interprets the snapshot stored on every player's input.
func UpdateInput(w donburi.World, cfg *config.Config) {
	tags.Player.Each(w, func(entry *donburi.Entry) {
		input := components.Input.Get(entry)
		*input = ResolveInput(input.Snapshot, *input, cfg.Player.JumpBufferFrames)
	})
}

// ResolveInput derives this tick's intent from snap and the previous state.
//
// Holding both directions reverses the previous direction once and then keeps
// it, so pressing the opposite key while one is held turns the player around.
// A jump press edge fills the jump buffer; every other tick drains it by one.
func ResolveInput(snap components.InputSnapshot, in components.InputData, jumpBufferFrames int) components.InputData {
	out := in
	out.Snapshot = snap

	switch {
	case snap.Left && snap.Right:
		if in.Turned {
			out.X = in.PrevX
		} else {
			out.X = reverse(in.PrevX)
			out.Turned = true
		}
	case snap.Left:
		out.X = -1
		out.Turned = false
	case snap.Right:
		out.X = 1
		out.Turned = false
	default:
		out.X = 0
		out.Turned = false
	}
	out.PrevX = out.X

	out.Jump = components.ActionState{
		Pressed:      snap.Jump,
		JustPressed:  snap.Jump && !in.Jump.Pressed,
		JustReleased: !snap.Jump && in.Jump.Pressed,
	}
	if out.Jump.JustPressed {
		out.JumpBuffer = jumpBufferFrames
	} else if out.JumpBuffer > 0 {
		out.JumpBuffer--
	}
	return out
}

func reverse(x float64) float64 {
	if x == 0 {
		return 0
	}
	return -x
}
