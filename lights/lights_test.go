package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget(t *testing.T) {
	for input, want := range map[string]Target{
		"keyboard": Keyboard,
		"Keyboard": Keyboard,
		"LIGHTBAR": Lightbar,
		"lightbar": Lightbar,
	} {
		got, err := ParseTarget(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "mouse", "keyboard ", "bar"} {
		_, err := ParseTarget(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}

func TestParseColorHex(t *testing.T) {
	for input, want := range map[string]Color{
		"FF0000":  {Red: 255},
		"#00ff00": {Green: 255},
		"0000Ff":  {Blue: 255},
		"123456":  {Red: 0x12, Green: 0x34, Blue: 0x56},
		"000000":  {},
	} {
		got, err := ParseColor(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseColorPresets(t *testing.T) {
	for input, want := range map[string]Color{
		"red":     {255, 0, 0},
		"RED":     {255, 0, 0},
		"White":   {255, 255, 255},
		"black":   {0, 0, 0},
		"magenta": {255, 0, 255},
	} {
		got, err := ParseColor(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseColorRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "FFF", "FF00000", "GGGGGG", "#FFF", "ff 000", "-12345"} {
		_, err := ParseColor(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}

func TestColorStringRoundTrips(t *testing.T) {
	c := Color{Red: 0xab, Green: 0x00, Blue: 0x3c}
	assert.Equal(t, "AB003C", c.String())

	parsed, err := ParseColor(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}

func TestLevelValidity(t *testing.T) {
	for _, l := range []Level{LevelOff, LevelLow, LevelMedium, LevelHigh} {
		assert.True(t, l.Valid(), "level %d", l)
	}
	for _, l := range []Level{-1, 4, 100} {
		assert.False(t, l.Valid(), "level %d", l)
	}
}

func TestLevelIntensityRamp(t *testing.T) {
	assert.Equal(t, uint8(0), LevelOff.Intensity())
	assert.Equal(t, uint8(85), LevelLow.Intensity())
	assert.Equal(t, uint8(170), LevelMedium.Intensity())
	assert.Equal(t, uint8(255), LevelHigh.Intensity())
}

func TestParseSpeed(t *testing.T) {
	for input, want := range map[string]Speed{
		"slow":   Slow,
		"1":      Slow,
		"normal": Normal,
		"2":      Normal,
		"":       Normal,
		"fast":   Fast,
		"3":      Fast,
		"FAST":   Fast,
	} {
		got, err := ParseSpeed(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	for _, input := range []string{"0", "4", "fastest", "medium"} {
		_, err := ParseSpeed(input)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", input)
	}
}

func TestSpecValidate(t *testing.T) {
	valid := []Spec{
		{Mode: Breathing, From: Color{Red: 255}, To: Color{}, Speed: Slow},
		{Mode: ColorCycle, Speed: Normal},
		{Mode: Rainbow, Speed: Fast},
		{Mode: Ambient, Speed: Normal},
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	invalid := []Spec{
		{Mode: "strobe", Speed: Normal},
		{Mode: Rainbow, Speed: "warp"},
		{},
	}
	for _, s := range invalid {
		assert.ErrorIs(t, s.Validate(), ErrInvalidInput)
	}
}
