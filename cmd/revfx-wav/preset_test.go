package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-revfx/unit"
)

func writeTempPreset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writeTempPreset(t, "time = 512\ndepth = 800\nmix = -250\n")

	p, err := loadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, Preset{Time: 512, Depth: 800, Mix: -250}, p)
}

func TestLoadPresetPartialKeepsDefaults(t *testing.T) {
	path := writeTempPreset(t, "depth = 1023\n")

	p, err := loadPreset(path)
	require.NoError(t, err)
	assert.Equal(t, Preset{Time: 0, Depth: 1023, Mix: 500}, p)
}

func TestLoadPresetRejectsUnknownKey(t *testing.T) {
	path := writeTempPreset(t, "depth = 10\nfeedback = 3\n")

	_, err := loadPreset(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feedback")
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := loadPreset(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestPresetApplyClampsThroughUnit(t *testing.T) {
	u := unit.NewRevFX()

	Preset{Time: 5000, Depth: -4, Mix: 2000}.apply(u)

	assert.Equal(t, 1023, u.Param(unit.ParamTime))
	assert.Equal(t, 0, u.Param(unit.ParamDepth))
	assert.Equal(t, 1000, u.Param(unit.ParamMix))
}
