package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// InputSnapshot is the raw key state for one tick, as polled by the app loop.
type InputSnapshot struct {
	Left    bool
	Right   bool
	Jump    bool
	Elapsed time.Duration // informational only
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData is the interpreted intent derived from successive snapshots.
type InputData struct {
	Snapshot   InputSnapshot // latest raw snapshot, written by the scene
	X          float64       // -1, 0 or +1
	PrevX      float64
	Turned     bool // both directions held and the reversal already happened
	Jump       ActionState
	JumpBuffer int // frames left in which a jump press is still honoured
}

var Input = donburi.NewComponentType[InputData]()
