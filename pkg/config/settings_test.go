package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettings(t *testing.T) (*Settings, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return NewSettings(store), path
}

func TestSeedDefaults(t *testing.T) {
	s, _ := newTestSettings(t)
	require.NoError(t, s.SeedDefaults())

	assert.True(t, s.Enabled())
	assert.True(t, s.Minimal())
	assert.False(t, s.GodMode())
	assert.False(t, s.CitationsEnabled())
	assert.True(t, s.ConfirmToolCalls())
	assert.Equal(t, 5, s.MaxToolCalls())
	assert.Equal(t, "gemini", s.Provider())
	assert.Equal(t, "top-right", s.Position())
	assert.Equal(t, "gemini-2.0-flash", s.Model("gemini"))
	assert.Equal(t, "mistral-medium-latest", s.Model("mistral"))
	assert.Equal(t, "", s.APIKey("gemini"))
}

func TestSeedDefaultsKeepsExistingValues(t *testing.T) {
	s, path := newTestSettings(t)
	require.NoError(t, s.SetGodMode(true))
	require.NoError(t, s.SetModel("gemini", "gemini-2.5-pro"))
	require.NoError(t, s.SeedDefaults())

	assert.True(t, s.GodMode())
	assert.Equal(t, "gemini-2.5-pro", s.Model("gemini"))

	// Reload from disk and verify persistence
	store, err := NewFileStore(path)
	require.NoError(t, err)
	reloaded := NewSettings(store)
	assert.True(t, reloaded.GodMode())
	assert.Equal(t, "gemini-2.5-pro", reloaded.Model("gemini"))
}

func TestMaxToolCallsSurvivesJSONRoundTrip(t *testing.T) {
	s, path := newTestSettings(t)
	require.NoError(t, s.SetMaxToolCalls(3))
	require.NoError(t, s.Save())

	store, err := NewFileStore(path)
	require.NoError(t, err)
	reloaded := NewSettings(store)

	// JSON decodes the stored int back as float64
	assert.Equal(t, 3, reloaded.MaxToolCalls())
}

func TestMaxToolCallsIgnoresNonPositive(t *testing.T) {
	s, _ := newTestSettings(t)
	require.NoError(t, s.SetMaxToolCalls(0))
	assert.Equal(t, 5, s.MaxToolCalls())
}

func TestProviderCredentials(t *testing.T) {
	s, _ := newTestSettings(t)
	require.NoError(t, s.SetAPIKey("mistral", "sk-test"))
	require.NoError(t, s.SetModel("mistral", "mistral-small-latest"))

	assert.Equal(t, "sk-test", s.APIKey("mistral"))
	assert.Equal(t, "mistral-small-latest", s.Model("mistral"))
	assert.Equal(t, "", s.APIKey("gemini"))
}
