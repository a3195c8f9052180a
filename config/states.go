package config

// StateID identifies a player motion state for logic and animation.
type StateID int

const (
	Idle StateID = iota
	Run
	Jump
)

// StateToName maps StateID to the name used in logs and sprite file names.
var StateToName = map[StateID]string{
	Idle: "idle",
	Run:  "run",
	Jump: "jump",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}
