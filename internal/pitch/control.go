// Package pitch holds the shared pitch factor and its preset values.
package pitch

import (
	"errors"
	"fmt"
	"sync"
)

// Default preset factors. A factor above 1.0 raises the perceived pitch,
// below 1.0 lowers it.
const (
	DefaultLowFactor    float32 = 0.7
	DefaultNormalFactor float32 = 1.0
	DefaultHighFactor   float32 = 1.3
)

// ErrInvalidFactor is returned when a caller tries to set a factor that is
// zero or negative, which would make the resampling index computation
// meaningless.
var ErrInvalidFactor = errors.New("pitch: factor must be positive")

// Preset identifies one of the fixed pitch settings.
type Preset int

const (
	// Low lowers the perceived pitch.
	Low Preset = iota
	// Normal is the identity setting.
	Normal
	// High raises the perceived pitch.
	High
)

// String returns the string representation of the preset.
func (p Preset) String() string {
	switch p {
	case Low:
		return "low"
	case Normal:
		return "normal"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// Control is the shared pitch factor, written by the control surface and
// read by the playback callback. Last write wins; no history is retained.
type Control struct {
	mu     sync.Mutex
	factor float32

	low    float32
	normal float32
	high   float32
}

// NewControl returns a control starting at the normal factor with the
// default preset values.
func NewControl() *Control {
	c, _ := NewControlWithPresets(DefaultLowFactor, DefaultNormalFactor, DefaultHighFactor)
	return c
}

// NewControlWithPresets returns a control with custom preset factors. All
// three must be positive.
func NewControlWithPresets(low, normal, high float32) (*Control, error) {
	for _, f := range []float32{low, normal, high} {
		if f <= 0 {
			return nil, fmt.Errorf("preset factor %v: %w", f, ErrInvalidFactor)
		}
	}
	return &Control{factor: normal, low: low, normal: normal, high: high}, nil
}

// Set overwrites the current factor. Non-positive factors are rejected and
// leave the current value unchanged.
func (c *Control) Set(factor float32) error {
	if factor <= 0 {
		return ErrInvalidFactor
	}
	c.mu.Lock()
	c.factor = factor
	c.mu.Unlock()
	return nil
}

// SetPreset overwrites the current factor with the preset's value. Any
// preset is reachable from any other at any time.
func (c *Control) SetPreset(p Preset) error {
	switch p {
	case Low:
		return c.Set(c.low)
	case Normal:
		return c.Set(c.normal)
	case High:
		return c.Set(c.high)
	default:
		return fmt.Errorf("pitch: unknown preset %d", p)
	}
}

// Factor returns the current factor. A Set that completed before this call
// began is always observed.
func (c *Control) Factor() float32 {
	c.mu.Lock()
	f := c.factor
	c.mu.Unlock()
	return f
}
