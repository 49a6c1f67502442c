package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gz302-tools/gz302ctl/lights"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "gz302", "rgb.toml"))
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s := tempStore(t)

	records, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	keyboard := Record{Kind: KindColor, Color: "FF0000"}
	lightbar := Record{
		Kind:      KindAnimation,
		Animation: "breathing",
		Color:     "FF0000",
		Color2:    "0000FF",
		Speed:     "fast",
	}
	require.NoError(t, s.Save(lights.Keyboard, keyboard))
	require.NoError(t, s.Save(lights.Lightbar, lightbar))

	records, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, keyboard, records[lights.Keyboard])
	assert.Equal(t, lightbar, records[lights.Lightbar])
}

func TestSaveOverwritesOnlyItsTarget(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Save(lights.Keyboard, Record{Kind: KindColor, Color: "00FF00"}))
	require.NoError(t, s.Save(lights.Lightbar, Record{Kind: KindBrightness, Level: 2}))
	require.NoError(t, s.Save(lights.Keyboard, Record{Kind: KindBrightness, Level: 3}))

	records, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, Record{Kind: KindBrightness, Level: 3}, records[lights.Keyboard])
	assert.Equal(t, Record{Kind: KindBrightness, Level: 2}, records[lights.Lightbar])
}

func TestLoadSkipsUnknownTargets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rgb.toml")
	data := `version = 1

[targets.keyboard]
kind = "color"
color = "FFFFFF"
level = 0

[targets.mousepad]
kind = "color"
color = "000000"
level = 0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	records, err := NewStore(path).Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "FFFFFF", records[lights.Keyboard].Color)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rgb.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "rgb.toml")
	s := NewStore(path)

	require.NoError(t, s.Save(lights.Keyboard, Record{Kind: KindColor, Color: "123456"}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
