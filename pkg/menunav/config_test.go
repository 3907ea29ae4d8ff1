package menunav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/menunav/pkg/menunav/constants"
	"github.com/BrandonKowalski/menunav/pkg/menunav/router"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menunav.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, router.ScreenMainMenu, cfg.StartScreen)
	assert.Equal(t, router.DefaultHistoryCapacity, cfg.HistoryCapacity)

	cue, ok := cfg.EnterCue(router.ScreenMainMenu)
	require.True(t, ok)
	assert.Equal(t, Cue("audio/music/Sad_Italian_Song.mp3"), cue)

	_, ok = cfg.EnterCue(router.ScreenInGame)
	assert.False(t, ok)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
start_screen = "in_game"
fallback_screen = "pause_menu"
history_capacity = 3
log_level = "debug"
click_cue = "sfx/tick.wav"

[enter_cues]
pause_menu = "music/pause.ogg"

[window]
title = "Roma"
width = 640
height = 480
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, router.ScreenInGame, cfg.StartScreen)
	assert.Equal(t, router.ScreenPauseMenu, cfg.FallbackScreen)
	assert.Equal(t, router.ScreenInGame, cfg.GameplayScreen, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.HistoryCapacity)
	assert.Equal(t, Cue("sfx/tick.wav"), cfg.ClickCue)
	assert.Equal(t, "Roma", cfg.Window.Title)
	assert.Equal(t, int32(640), cfg.Window.Width)

	cue, ok := cfg.EnterCue(router.ScreenPauseMenu)
	require.True(t, ok)
	assert.Equal(t, Cue("music/pause.ogg"), cue)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown key", `volume = 3`},
		{"unknown screen", `start_screen = "credits"`},
		{"zero capacity", `history_capacity = 0`},
		{"bad level", `log_level = "loud"`},
		{"bad cue screen", "[enter_cues]\ncredits = \"x.ogg\""},
		{"syntax", `start_screen = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err))
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, IsConfigurationError(err))
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := writeConfig(t, `history_capacity = 2`)
	t.Setenv(constants.ConfigPathEnvVar, path)
	t.Setenv(constants.LogLevelEnvVar, "warn")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.HistoryCapacity)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigFromEnvWithoutFile(t *testing.T) {
	t.Setenv(constants.ConfigPathEnvVar, "")
	t.Setenv(constants.LogLevelEnvVar, "")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().LogLevel, cfg.LogLevel)
}
