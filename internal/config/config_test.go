package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefault(t *testing.T) {
	limits, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), limits)
}

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".loxrc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"maxLoopIterations": 1000, "maxEnvironmentDepth": 50}`), 0o644))

	limits, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1000, limits.MaxLoopIterations)
	assert.Equal(t, 50, limits.MaxEnvironmentDepth)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".loxrc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"notAField": true}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MinVersionTooNewIsRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".loxrc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"minVersion": "v99.0.0"}`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MinVersionSatisfiedIsAccepted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".loxrc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"minVersion": "v0.1.0"}`), 0o644))

	limits, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "v0.1.0", limits.MinVersion)
}

func TestLoadForScript_LooksNextToScript(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".loxrc.json"), []byte(`{"maxLoopIterations": 5}`), 0o644))

	limits, err := LoadForScript(filepath.Join(dir, "script.lox"))
	require.NoError(t, err)
	assert.Equal(t, 5, limits.MaxLoopIterations)
}
