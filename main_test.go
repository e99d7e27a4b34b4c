package main

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/adivina/internal/config"
	"github.com/robalobadob/adivina/internal/game"
	"github.com/robalobadob/adivina/internal/tui"
)

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := config.Config{LogLevel: "info"}
	cmd := newRootCmd(&cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--log-level", "debug", "--daily", "--words", "w.txt", "--highlight-misses"}))

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Daily)
	assert.Equal(t, "w.txt", cfg.WordsFile)
	assert.True(t, cfg.HighlightMisses)
}

func TestBuildModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("perro\n"), 0o644))

	for _, dailyMode := range []bool{false, true} {
		m, err := buildModel(&config.Config{WordsFile: path, Daily: dailyMode})
		require.NoError(t, err)
		require.Equal(t, game.StatusNotStarted, m.Round().Status)
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
		assert.Equal(t, "PERRO", next.(tui.Model).Round().Target)
	}

	_, err := buildModel(&config.Config{WordsFile: filepath.Join(t.TempDir(), "missing.txt")})
	assert.Error(t, err)
}

func TestSetupLoggingToFile(t *testing.T) {
	saved := log.Logger
	t.Cleanup(func() { log.Logger = saved })

	path := filepath.Join(t.TempDir(), "adivina.log")
	closeLog, err := setupLogging(&config.Config{LogLevel: "info", LogFile: path})
	require.NoError(t, err)
	log.Info().Msg("hola")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hola"`)

	closeLog, err = setupLogging(&config.Config{LogLevel: "info"})
	require.NoError(t, err)
	closeLog()
}
