package anim

import (
	"time"

	"github.com/gz302-tools/gz302ctl/lights"
)

// breathingSteps is the number of discrete samples per half-cycle.
const breathingSteps = 24

// rainbowTick is fixed; perceived rainbow speed is governed by the hue step.
const rainbowTick = 80 * time.Millisecond

func breathingHalfCycle(s lights.Speed) time.Duration {
	switch s {
	case lights.Slow:
		return 3 * time.Second
	case lights.Fast:
		return time.Second
	default:
		return 2 * time.Second
	}
}

func cycleInterval(s lights.Speed) time.Duration {
	switch s {
	case lights.Slow:
		return 800 * time.Millisecond
	case lights.Fast:
		return 200 * time.Millisecond
	default:
		return 400 * time.Millisecond
	}
}

func rainbowStep(s lights.Speed) float64 {
	switch s {
	case lights.Slow:
		return 0.015
	case lights.Fast:
		return 0.06
	default:
		return 0.03
	}
}

// cyclePalette is the fixed color-cycle sequence: red, orange, yellow,
// green, cyan, azure, blue, violet, magenta.
var cyclePalette = []lights.Color{
	{Red: 255, Green: 0, Blue: 0},
	{Red: 255, Green: 128, Blue: 0},
	{Red: 255, Green: 255, Blue: 0},
	{Red: 0, Green: 255, Blue: 0},
	{Red: 0, Green: 255, Blue: 255},
	{Red: 0, Green: 128, Blue: 255},
	{Red: 0, Green: 0, Blue: 255},
	{Red: 128, Green: 0, Blue: 255},
	{Red: 255, Green: 0, Blue: 255},
}

// lerp returns the breathing sample at step (0-based) of a half-cycle with
// the given step count. Step 0 is exactly from; the last step is exactly to.
func lerp(from, to lights.Color, step, steps int) lights.Color {
	t := float64(step) / float64(steps-1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return lights.Color{
		Red:   mix(from.Red, to.Red),
		Green: mix(from.Green, to.Green),
		Blue:  mix(from.Blue, to.Blue),
	}
}

// hsvColor converts a hue in [0,1) at full saturation and value to RGB.
func hsvColor(h float64) lights.Color {
	h -= float64(int(h)) // wrap to [0,1)
	if h < 0 {
		h++
	}
	i := int(h * 6)
	f := h*6 - float64(i)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = 1, f, 0
	case 1:
		r, g, b = 1-f, 1, 0
	case 2:
		r, g, b = 0, 1, f
	case 3:
		r, g, b = 0, 1-f, 1
	case 4:
		r, g, b = f, 0, 1
	case 5:
		r, g, b = 1, 0, 1-f
	}
	return lights.Color{
		Red:   uint8(r * 255),
		Green: uint8(g * 255),
		Blue:  uint8(b * 255),
	}
}
