// Package config holds the tuning values for the movement core and the
// settings of the application shell around it.
//
// All speeds, accelerations and timers are per-tick quantities. Porting to a
// variable timestep requires rescaling every one of them.
package config

import "github.com/bggd/HaniwaSlayer/geom"

// PhysicsConfig contains values shared by every moving body
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // added to SpeedY each tick, negative pulls down
	MaxFall     float64 `yaml:"max_fall"`     // |SpeedY| cap, 0 disables
	GroundProbe float64 `yaml:"ground_probe"` // distance below the hit area checked for ground
	MoveStep    float64 `yaml:"move_step"`    // sweep increment used by the mover
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MaxWalkSpeed float64 `yaml:"max_walk_speed"`
	JumpImpulse  float64 `yaml:"jump_impulse"`

	// Timers (frames)
	JumpBufferFrames int `yaml:"jump_buffer_frames"`
	CoyoteFrames     int `yaml:"coyote_frames"`

	// Dimensions
	Hitbox geom.Rect `yaml:"hitbox"` // relative to the player position
	Spawn  geom.Vec  `yaml:"spawn"`
}

// AnimationDef describes one looping strip on a sprite sheet.
type AnimationDef struct {
	First int     `yaml:"first"`
	Last  int     `yaml:"last"`
	Step  int     `yaml:"step"`
	Speed float32 `yaml:"speed"` // ticks held on each frame, minus one
}

// AnimationConfig contains the player animation strips and the sheet layout
type AnimationConfig struct {
	SheetWidth  int          `yaml:"sheet_width"`
	SheetHeight int          `yaml:"sheet_height"`
	FrameWidth  int          `yaml:"frame_width"`
	FrameHeight int          `yaml:"frame_height"`
	Idle        AnimationDef `yaml:"idle"`
	Run         AnimationDef `yaml:"run"`
	Jump        AnimationDef `yaml:"jump"`
}

// Defs returns the strips keyed by state.
func (a AnimationConfig) Defs() map[StateID]AnimationDef {
	return map[StateID]AnimationDef{
		Idle: a.Idle,
		Run:  a.Run,
		Jump: a.Jump,
	}
}

// WindowConfig contains application window settings
type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Title  string  `yaml:"title"`
	TPS    int     `yaml:"tps"`
	Zoom   float64 `yaml:"zoom"` // world units to screen pixels
}

// LevelConfig points at the tile map to load
type LevelConfig struct {
	Path  string `yaml:"path"`  // .tmx or .json
	Layer string `yaml:"layer"` // TMX layer name, empty for the first layer
}

// LogConfig contains logger settings
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // empty disables the rolling file
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Config is the root document read from YAML.
type Config struct {
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Animation AnimationConfig `yaml:"animation"`
	Window    WindowConfig    `yaml:"window"`
	Level     LevelConfig     `yaml:"level"`
	Log       LogConfig       `yaml:"log"`
}

// Default returns the reference tuning.
func Default() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity:     -0.25,
			MaxFall:     8,
			GroundProbe: 0.1,
			MoveStep:    1,
		},
		Player: PlayerConfig{
			MaxWalkSpeed:     2,
			JumpImpulse:      4,
			JumpBufferFrames: 8,
			CoyoteFrames:     8,
			Hitbox:           geom.Rect{X: -8, Y: -16, W: 16, H: 32},
			Spawn:            geom.Vec{X: 0, Y: 64},
		},
		Animation: AnimationConfig{
			SheetWidth:  256,
			SheetHeight: 32,
			FrameWidth:  32,
			FrameHeight: 32,
			Idle:        AnimationDef{First: 0, Last: 0, Step: 1, Speed: 10},
			Run:         AnimationDef{First: 0, Last: 7, Step: 1, Speed: 3},
			Jump:        AnimationDef{First: 0, Last: 0, Step: 1, Speed: 10},
		},
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "Haniwa Slayer",
			TPS:    60,
			Zoom:   1,
		},
		Level: LevelConfig{
			Path: "assets/levels/level1.tmx",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}
