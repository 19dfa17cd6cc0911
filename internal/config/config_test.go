package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 4, cfg.PlayerCount)
	assert.True(t, cfg.AceHigh)
	assert.True(t, cfg.TwoHigh)
	assert.Equal(t, 8, cfg.TerminateRank)
	assert.True(t, cfg.RevolutionsEnabled)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Default()

	cfg.PlayerCount = 1
	assert.Error(t, cfg.Validate())
	cfg.PlayerCount = 8
	assert.Error(t, cfg.Validate())
	cfg.PlayerCount = 7
	assert.NoError(t, cfg.Validate())

	cfg.TerminateRank = 0
	assert.Error(t, cfg.Validate())
	cfg.TerminateRank = 16
	assert.Error(t, cfg.Validate())
	cfg.TerminateRank = 15
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"player_count = 3\ntwo_high = false\nsort_descending = true\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.PlayerCount)
	assert.False(t, cfg.TwoHigh)
	assert.True(t, cfg.SortDescending)
	// Omitted fields keep their defaults.
	assert.True(t, cfg.AceHigh)
	assert.Equal(t, 8, cfg.TerminateRank)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	require.NoError(t, os.WriteFile(path, []byte("player_count = {"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
