package main

import (
	"github.com/bggd/HaniwaSlayer/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionJump
	ActionReset
	ActionCount // Must be last - used for array sizing
)

// Bindings maps each action to the keys that trigger it.
var Bindings = [ActionCount][]ebiten.Key{
	ActionMoveLeft:  {ebiten.KeyLeft, ebiten.KeyA},
	ActionMoveRight: {ebiten.KeyRight, ebiten.KeyD},
	ActionJump:      {ebiten.KeyZ, ebiten.KeyX, ebiten.KeySpace},
	ActionReset:     {ebiten.KeyR},
}

func isActionPressed(id ActionID) bool {
	for _, k := range Bindings[id] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func pollInput() components.InputSnapshot {
	return components.InputSnapshot{
		Left:  isActionPressed(ActionMoveLeft),
		Right: isActionPressed(ActionMoveRight),
		Jump:  isActionPressed(ActionJump),
	}
}
