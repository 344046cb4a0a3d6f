package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenariogen/pkg/finalstate"
)

func writeProfileFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDifficultyOverridesEmptyFilename(t *testing.T) {
	overrides, err := LoadDifficultyOverrides("")
	require.NoError(t, err)
	assert.Nil(t, overrides)
}

func TestLoadDifficultyOverridesPartialPatch(t *testing.T) {
	path := writeProfileFile(t, `
medium:
  rulesPerPlayer: 6
  pertWeights:
    remove: 2.0
`)

	overrides, err := LoadDifficultyOverrides(path)
	require.NoError(t, err)
	require.Contains(t, overrides, finalstate.Medium)

	got := overrides[finalstate.Medium]
	base := finalstate.ParamsFor(finalstate.Medium)

	assert.Equal(t, 6, got.RulesPerPlayer)
	assert.Equal(t, 2.0, got.PertWeights.Remove)
	// Fields the patch didn't touch keep the table default.
	assert.Equal(t, base.NumColors, got.NumColors)
	assert.Equal(t, base.PertWeights.Paint, got.PertWeights.Paint)
}

func TestLoadDifficultyOverridesUnknownDifficulty(t *testing.T) {
	path := writeProfileFile(t, "extreme:\n  rulesPerPlayer: 10\n")
	_, err := LoadDifficultyOverrides(path)
	assert.Error(t, err)
}

func TestLoadDifficultyOverridesMissingFile(t *testing.T) {
	_, err := LoadDifficultyOverrides(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}
