// Package sim replays scripted input against a scene without a window.
package sim

import (
	"errors"
	"fmt"
	"io"

	"github.com/bggd/HaniwaSlayer/components"
	"gopkg.in/yaml.v3"
)

// Step holds one input state for a number of ticks.
type Step struct {
	Ticks int  `yaml:"ticks"`
	Left  bool `yaml:"left"`
	Right bool `yaml:"right"`
	Jump  bool `yaml:"jump"`
}

// Script is a sequence of steps played back to back.
type Script []Step

// LoadScript decodes a YAML list of steps.
func LoadScript(r io.Reader) (Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	for i, step := range s {
		if step.Ticks <= 0 {
			return nil, fmt.Errorf("step %d: ticks must be positive, got %d", i, step.Ticks)
		}
	}
	return s, nil
}

// Len returns the total number of ticks in the script.
func (s Script) Len() int {
	n := 0
	for _, step := range s {
		n += step.Ticks
	}
	return n
}

// At returns the input for tick, counting from 0. The second result is false
// once the script has ended.
func (s Script) At(tick int) (components.InputSnapshot, bool) {
	if tick < 0 {
		return components.InputSnapshot{}, false
	}
	for _, step := range s {
		if tick < step.Ticks {
			return components.InputSnapshot{Left: step.Left, Right: step.Right, Jump: step.Jump}, true
		}
		tick -= step.Ticks
	}
	return components.InputSnapshot{}, false
}
