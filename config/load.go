package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes YAML from r over the defaults, so a document only needs the
// keys it overrides. An empty document yields the defaults.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads path with Load.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate rejects values the core treats as programming errors.
func (c *Config) Validate() error {
	var errs []error
	if c.Physics.MoveStep <= 0 {
		errs = append(errs, fmt.Errorf("physics.move_step must be positive, got %v", c.Physics.MoveStep))
	}
	if c.Physics.GroundProbe <= 0 {
		errs = append(errs, fmt.Errorf("physics.ground_probe must be positive, got %v", c.Physics.GroundProbe))
	}
	if c.Physics.MaxFall < 0 {
		errs = append(errs, fmt.Errorf("physics.max_fall must not be negative, got %v", c.Physics.MaxFall))
	}
	if c.Player.MaxWalkSpeed < 0 {
		errs = append(errs, fmt.Errorf("player.max_walk_speed must not be negative, got %v", c.Player.MaxWalkSpeed))
	}
	if c.Player.JumpBufferFrames < 0 || c.Player.CoyoteFrames < 0 {
		errs = append(errs, errors.New("player frame windows must not be negative"))
	}
	if c.Player.Hitbox.W <= 0 || c.Player.Hitbox.H <= 0 {
		errs = append(errs, fmt.Errorf("player.hitbox must have a positive size, got %vx%v", c.Player.Hitbox.W, c.Player.Hitbox.H))
	}
	a := c.Animation
	frames := 0
	if a.FrameWidth <= 0 || a.FrameHeight <= 0 || a.SheetWidth < a.FrameWidth || a.SheetHeight < a.FrameHeight {
		errs = append(errs, fmt.Errorf("animation: frame size %dx%d does not fit sheet %dx%d",
			a.FrameWidth, a.FrameHeight, a.SheetWidth, a.SheetHeight))
	} else {
		frames = ((a.SheetWidth + a.FrameWidth - 1) / a.FrameWidth) * ((a.SheetHeight + a.FrameHeight - 1) / a.FrameHeight)
	}
	for state, def := range a.Defs() {
		if def.First < 0 || def.Last < def.First || def.Step <= 0 || def.Speed < 0 {
			errs = append(errs, fmt.Errorf("animation.%s: invalid strip %+v", state, def))
		} else if frames > 0 && def.Last >= frames {
			errs = append(errs, fmt.Errorf("animation.%s: last frame %d is past the %d frames on the sheet", state, def.Last, frames))
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}
	if c.Window.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("window.zoom must be positive, got %v", c.Window.Zoom))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
