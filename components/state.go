package components

import (
	"github.com/bggd/HaniwaSlayer/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Set moves to next, remembering the old state and resetting the timer when
// the state changes.
func (s *StateData) Set(next config.StateID) {
	if s.CurrentState == next {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
