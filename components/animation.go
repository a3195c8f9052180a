package components

import (
	"image"

	"github.com/bggd/HaniwaSlayer/assets/animations"
	"github.com/bggd/HaniwaSlayer/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
	Sheet            animations.Sheet
}

// SetAnimation switches the current animation to the one for state. The
// animation being left is restarted so it plays from its first frame the next
// time it is entered.
func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return
	}
	if a.CurrentAnimation != nil {
		a.CurrentAnimation.Restart()
	}

	anim, ok := a.Animations[state]
	if ok {
		a.CurrentAnimation = anim
	} else {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
	}
	a.CurrentSheet = state
}

// Frame returns the current frame index, or -1 when no animation is playing.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return -1
	}
	return a.CurrentAnimation.Frame()
}

// SourceRect returns where the current frame sits on the sprite sheet, or the
// empty rectangle when no animation is playing.
func (a *AnimationData) SourceRect() image.Rectangle {
	frame := a.Frame()
	if frame < 0 {
		return image.Rectangle{}
	}
	return a.Sheet.SourceRect(frame)
}

var Animation = donburi.NewComponentType[AnimationData]()
