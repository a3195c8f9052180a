package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpeedX      float64 // hsp
	SpeedY      float64 // vsp, positive is up
	Gravity     float64
	MaxSpeed    float64
	JumpImpulse float64
	Direction   float64 // facing, -1 or +1
	CoyoteTimer int
	OnGround    bool
}

var Player = donburi.NewComponentType[PlayerData]()
