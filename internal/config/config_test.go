package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "mimicry.yaml", `preset: stealth
substitution_probability: 0.5
stealth_marker_enabled: true
stealth_marker_probability: 0.25
stealth_marker_character: U+2060
seed: 42
homoglyph_classes:
  - AАΑ
  - oоο
`)
	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.NotNil(t, cfg.Preset)
	assert.Equal(t, "stealth", *cfg.Preset)
	require.NotNil(t, cfg.SubstitutionProbability)
	assert.Equal(t, 0.5, *cfg.SubstitutionProbability)
	require.NotNil(t, cfg.StealthEnabled)
	assert.True(t, *cfg.StealthEnabled)
	require.NotNil(t, cfg.StealthMarker)
	assert.Equal(t, "U+2060", *cfg.StealthMarker)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
	assert.Equal(t, []string{"AАΑ", "oоο"}, cfg.Classes)
}

func TestLoadFile_Empty(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "mimicry.yml", "")
	cfg, err := LoadFile(p)
	require.NoError(t, err)
	assert.Nil(t, cfg.Preset)
}

func TestLoadFile_UnknownKey(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "mimicry.yml", "substitution_probabilty: 0.5\n")
	_, err := LoadFile(p)
	var fe *FileError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, p, fe.Path)
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "mimicry.yaml", "seed: 1\n")
	writeTemp(t, dir, ".mimicry.yaml", "seed: 7\n")
	cfg, path, err := LoadLocal(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".mimicry.yaml"), path)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(7), *cfg.Seed)
}

func TestLoadLocal_NoConfig(t *testing.T) {
	_, _, err := LoadLocal(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "mimicry")
	require.NoError(t, os.MkdirAll(cfgDir, 0o755))
	writeTemp(t, cfgDir, "config.yml", "seed: 9\n")
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, path, err := LoadGlobal()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cfgDir, "config.yml"), path)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(9), *cfg.Seed)
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	// Simulate no HOME as well by clearing HOME; LoadGlobal should error
	t.Setenv("HOME", "")
	_, _, err := LoadGlobal()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarshal_RoundTripKeys(t *testing.T) {
	p := 0.9
	b, err := Marshal(FileConfig{SubstitutionProbability: &p})
	require.NoError(t, err)
	assert.Equal(t, "substitution_probability: 0.9\n", string(b))
}
