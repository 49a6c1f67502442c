// Package lights defines the domain types and the controller interface for
// the GZ302's RGB endpoints: the keyboard backlight and the rear-window
// lightbar.
package lights

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Target identifies one of the two RGB endpoints. Each target animates
// independently of the other.
type Target string

const (
	Keyboard Target = "keyboard"
	Lightbar Target = "lightbar"
)

// Targets lists every known endpoint.
var Targets = []Target{Keyboard, Lightbar}

// ParseTarget maps a user-supplied name to a Target.
func ParseTarget(s string) (Target, error) {
	switch Target(strings.ToLower(s)) {
	case Keyboard:
		return Keyboard, nil
	case Lightbar:
		return Lightbar, nil
	}
	return "", fmt.Errorf("%w: unknown target %q (want keyboard or lightbar)", ErrInvalidInput, s)
}

// Color is an 8-bit-per-channel RGB triple. Channel values are always in
// [0,255] by construction.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

func (c Color) String() string {
	return fmt.Sprintf("%02X%02X%02X", c.Red, c.Green, c.Blue)
}

// presets accepted anywhere a hex color is.
var presets = map[string]Color{
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"white":   {255, 255, 255},
	"black":   {0, 0, 0},
}

// ParseColor accepts a 6-digit hex string ("FF0000", with or without a
// leading '#') or a preset color name.
func ParseColor(s string) (Color, error) {
	if c, ok := presets[strings.ToLower(s)]; ok {
		return c, nil
	}
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: color must be 6 hex digits, got %q", ErrInvalidInput, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: invalid hex color %q", ErrInvalidInput, s)
	}
	return Color{
		Red:   uint8(v >> 16),
		Green: uint8(v >> 8),
		Blue:  uint8(v),
	}, nil
}

// Level is a brightness step. 0 is fully off, 3 is full intensity.
type Level int

const (
	LevelOff Level = iota
	LevelLow
	LevelMedium
	LevelHigh
)

// Valid reports whether the level is within the hardware range.
func (l Level) Valid() bool {
	return l >= LevelOff && l <= LevelHigh
}

// Intensity returns the channel magnitude the level maps to.
func (l Level) Intensity() uint8 {
	ramp := [4]uint8{0, 85, 170, 255}
	return ramp[l]
}

// Speed selects animation timing.
type Speed string

const (
	Slow   Speed = "slow"
	Normal Speed = "normal"
	Fast   Speed = "fast"
)

// ParseSpeed accepts a speed name or the legacy 1-3 numeric form.
func ParseSpeed(s string) (Speed, error) {
	switch strings.ToLower(s) {
	case "slow", "1":
		return Slow, nil
	case "normal", "2", "":
		return Normal, nil
	case "fast", "3":
		return Fast, nil
	}
	return "", fmt.Errorf("%w: unknown speed %q (want slow, normal or fast)", ErrInvalidInput, s)
}

// Mode names an animation pattern.
type Mode string

const (
	Breathing  Mode = "breathing"
	ColorCycle Mode = "colorcycle"
	Rainbow    Mode = "rainbow"
	Ambient    Mode = "ambient"
)

// Spec describes one animation. From/To are only meaningful for Breathing.
type Spec struct {
	Mode  Mode
	From  Color
	To    Color
	Speed Speed
}

// Validate rejects malformed specs before any device interaction.
func (s Spec) Validate() error {
	switch s.Mode {
	case Breathing, ColorCycle, Rainbow, Ambient:
	default:
		return fmt.Errorf("%w: unknown animation mode %q", ErrInvalidInput, s.Mode)
	}
	switch s.Speed {
	case Slow, Normal, Fast:
	default:
		return fmt.Errorf("%w: unknown speed %q", ErrInvalidInput, s.Speed)
	}
	return nil
}

func (s Spec) String() string {
	if s.Mode == Breathing {
		return fmt.Sprintf("%s %s %s %s", s.Mode, s.From, s.To, s.Speed)
	}
	return fmt.Sprintf("%s %s", s.Mode, s.Speed)
}

// Controller is the public control surface. Static commands are applied
// synchronously; StartAnimation returns once the previous task for the
// target has been handed off and the new one is running.
type Controller interface {
	SetColor(ctx context.Context, target Target, c Color) error
	SetBrightness(ctx context.Context, target Target, level Level) error
	StartAnimation(ctx context.Context, target Target, spec Spec) error
	StopAnimation(target Target) error
	Close() error
}
