package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/survive-core/internal/domain/entities"
)

func writeConfig(t *testing.T, basePath, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ConfigDir(basePath), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(basePath), []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultTitle, cfg.Game.Title)
	assert.Equal(t, 10, cfg.Game.MaxTurns)
	assert.Zero(t, cfg.Game.Seed)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "journal.db", cfg.Journal.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.Content.Locations)
}

func TestConfigDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/game", ".survive"), ConfigDir("/tmp/game"))
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, filepath.Join("/tmp/game", ".survive", "config.yaml"), ConfigFilePath("/tmp/game"))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
game:
  seed: 42
  max_turns: 3
  effects:
    fail: {health: -35}
content:
  locations:
    - path: content/farm.json
    - name: barn
      path: /abs/barn.csv
      format: csv
journal:
  enabled: false
characters:
  - {name: Ann, strength: 5, health: 50, agility: 5, intelligence: 5}
weapons:
  - {name: Rake, damage: 3}
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, 3, cfg.Game.MaxTurns)
	assert.Equal(t, DefaultTitle, cfg.Game.Title)
	assert.Equal(t, map[string]int{"health": -35}, cfg.Game.Effects.Fail)
	assert.Nil(t, cfg.Game.Effects.Pass)
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, "journal.db", cfg.Journal.Path)

	require.Len(t, cfg.Content.Locations, 2)
	sources := cfg.Content.Sources(dir)
	assert.Equal(t, filepath.Join(dir, ".survive", "content", "farm.json"), sources[0].Path)
	assert.Equal(t, "/abs/barn.csv", sources[1].Path)
	assert.Equal(t, "content/farm.json", cfg.Content.Locations[0].Path)

	assert.Equal(t, []entities.CharacterConfig{{Name: "Ann", Strength: 5, Health: 50, Agility: 5, Intelligence: 5}}, cfg.Presets())
	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, []entities.Weapon{{Name: "Rake", Damage: 3}}, catalog.Weapons())
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "game: [not, a, map")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"negative turns", "game:\n  max_turns: -1\n", "max_turns"},
		{"bad log level", "log:\n  level: loud\n", "unknown log level"},
		{"source without path", "content:\n  locations:\n    - name: barn\n", "path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "game:\n  seed: 1\n  max_turns: 3\n")

	t.Setenv("SURVIVE_SEED", "99")
	t.Setenv("SURVIVE_MAX_TURNS", "7")
	t.Setenv("SURVIVE_JOURNAL_PATH", "/var/lib/survive.db")
	t.Setenv("SURVIVE_JOURNAL_ENABLED", "false")
	t.Setenv("SURVIVE_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, int64(99), cfg.Game.Seed)
	assert.Equal(t, 7, cfg.Game.MaxTurns)
	assert.Equal(t, "/var/lib/survive.db", cfg.Journal.Path)
	assert.Equal(t, "/var/lib/survive.db", cfg.JournalPath(dir))
	assert.False(t, cfg.Journal.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverrideInvalid(t *testing.T) {
	t.Setenv("SURVIVE_MAX_TURNS", "many")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SURVIVE_MAX_TURNS=4\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("SURVIVE_MAX_TURNS") })

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.MaxTurns)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestConfig_DefaultsForPartyAndCatalog(t *testing.T) {
	cfg := Default()

	assert.Equal(t, entities.DefaultPresets, cfg.Presets())
	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultWeapons, catalog.Weapons())

	cfg.Weapons = []entities.Weapon{{Name: "", Damage: 1}}
	_, err = cfg.Catalog()
	assert.ErrorIs(t, err, entities.ErrMissingField)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))
	assert.FileExists(t, filepath.Join(dir, ".survive", "content", "location_1.json"))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, cfg.Game.Title)
	assert.Equal(t, 10, cfg.Game.MaxTurns)
	require.Len(t, cfg.Content.Locations, 1)
	assert.Equal(t, "location_1", cfg.Content.Locations[0].LocationName())

	err = WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Game.Seed = 5

	require.NoError(t, Write(dir, cfg))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(5), loaded.Game.Seed)
}
