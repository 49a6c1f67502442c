package power

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gz302-tools/gz302ctl/lights"
)

func TestParseStatus(t *testing.T) {
	out := `=== GZ302 Power Status ===
Current profile: gaming
SPL: 70W
sPPT: 80W
fPPT: 95W
`
	st := ParseStatus(out)
	assert.Equal(t, "gaming", st.Profile)
	assert.Equal(t, 70, st.SustainedWatts)
	assert.Equal(t, 80, st.SlowWatts)
	assert.Equal(t, 95, st.FastWatts)
}

func TestParseStatusProseVariant(t *testing.T) {
	out := `Active Profile: Balanced
Sustained power limit: 45 W
Slow boost limit: 54 W
Fast boost limit: 65 W
`
	st := ParseStatus(out)
	assert.Equal(t, "balanced", st.Profile)
	assert.Equal(t, 45, st.SustainedWatts)
	assert.Equal(t, 54, st.SlowWatts)
	assert.Equal(t, 65, st.FastWatts)
}

func TestParseStatusSkipsUnrecognizedLines(t *testing.T) {
	st := ParseStatus("pwrcfg v1.2\nnothing to report\n")
	assert.Equal(t, Status{}, st)
}

func TestSetProfileRejectsUnknownProfile(t *testing.T) {
	c := NewClient("/nonexistent/pwrcfg")

	for _, p := range []string{"", "turbo", "GAMING"} {
		err := c.SetProfile(context.Background(), p)
		assert.ErrorIs(t, err, lights.ErrInvalidInput, "profile %q", p)
	}
}

func TestProfileOrderingIsLowToHigh(t *testing.T) {
	assert.Equal(t, "emergency", Profiles[0])
	assert.Equal(t, "maximum", Profiles[len(Profiles)-1])
	assert.Len(t, Profiles, 7)
}
