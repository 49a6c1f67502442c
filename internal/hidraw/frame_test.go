package hidraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gz302-tools/gz302ctl/lights"
)

func TestFramesAreExactly64Bytes(t *testing.T) {
	colors := []lights.Color{
		{},
		{Red: 255, Green: 255, Blue: 255},
		{Red: 1, Green: 128, Blue: 254},
	}
	var frames []Frame
	frames = append(frames, LightbarPower(true), LightbarPower(false), KeyboardCommit())
	for _, c := range colors {
		frames = append(frames, LightbarColor(c), KeyboardColor(c))
	}
	for _, f := range frames {
		assert.Len(t, f[:], FrameSize)
	}
}

func TestLightbarPowerBytes(t *testing.T) {
	on := LightbarPower(true)
	assert.Equal(t, []byte{0x5d, 0xbd, 0x01, 0xae, 0x05, 0x22, 0xff, 0xff}, on[:8])

	off := LightbarPower(false)
	assert.Equal(t, []byte{0x5d, 0xbd, 0x01, 0xaa, 0x00, 0x00, 0xff, 0xff}, off[:8])

	for i := 8; i < FrameSize; i++ {
		require.Zero(t, on[i], "byte %d of power-on frame must be zero padding", i)
		require.Zero(t, off[i], "byte %d of power-off frame must be zero padding", i)
	}
}

func TestLightbarColorBytes(t *testing.T) {
	f := LightbarColor(lights.Color{Red: 0x12, Green: 0x34, Blue: 0x56})
	want := []byte{
		0x5d, 0xb3, 0x00, 0x00,
		0x12, 0x34, 0x56,
		0xeb, 0x00, 0x00,
		0xff, 0xff, 0xff,
	}
	assert.Equal(t, want, f[:13])
	for i := 13; i < FrameSize; i++ {
		require.Zero(t, f[i], "byte %d must be zero padding", i)
	}
}

func TestKeyboardFrames(t *testing.T) {
	color := KeyboardColor(lights.Color{Red: 0xab, Green: 0xcd, Blue: 0xef})
	assert.Equal(t, []byte{0x5d, 0xb3, 0x00, 0x00, 0xab, 0xcd, 0xef}, color[:7])
	for i := 7; i < FrameSize; i++ {
		require.Zero(t, color[i])
	}

	commit := KeyboardCommit()
	assert.Equal(t, []byte{0x5d, 0xb5, 0x00, 0x00}, commit[:4])
	for i := 4; i < FrameSize; i++ {
		require.Zero(t, commit[i])
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	c := lights.Color{Red: 200, Green: 10, Blue: 99}
	assert.Equal(t, LightbarColor(c), LightbarColor(c))
	assert.Equal(t, KeyboardColor(c), KeyboardColor(c))
	assert.Equal(t, LightbarPower(true), LightbarPower(true))
}
