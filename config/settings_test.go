package config

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	m, err := gdata.Open(gdata.Config{AppName: "ebiten_tanks_test"})
	if err != nil {
		t.Skipf("gdata not available: %v", err)
	}
	return m
}

func TestSettingsWithoutStore(t *testing.T) {
	sm := NewSettingsManager(nil)
	assert.Equal(t, DefaultSettings(), sm.Settings())

	sm.SetSoundVolume(3)
	assert.Equal(t, 1.0, sm.Settings().SoundVolume)
	assert.NoError(t, sm.Save(), "saving without a store is a no-op")
}

func TestSettingsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	sm := NewSettingsManager(store)
	sm.SetSoundEnabled(false)
	sm.SetSoundVolume(0.25)
	sm.SetDebugOverlay(true)
	sm.RecordRound(42, 1)
	sm.RecordRound(43, -1)
	require.NoError(t, sm.Save())

	reloaded := NewSettingsManager(store)
	got := reloaded.Settings()
	assert.False(t, got.SoundEnabled)
	assert.Equal(t, 0.25, got.SoundVolume)
	assert.True(t, got.DebugOverlay)
	assert.Equal(t, int64(43), got.LastSeed)
	assert.Equal(t, [2]int{0, 1}, got.Wins)
}

func TestSettingsCorruptDataFallsBack(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")))

	sm := NewSettingsManager(store)
	assert.Equal(t, DefaultSettings(), sm.Settings())
	assert.Error(t, sm.Load())
}
