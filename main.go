package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/adivina/internal/config"
	"github.com/robalobadob/adivina/internal/daily"
	"github.com/robalobadob/adivina/internal/game"
	"github.com/robalobadob/adivina/internal/store"
	"github.com/robalobadob/adivina/internal/tui"
	"github.com/robalobadob/adivina/internal/words"
)

func main() {
	cfg := config.Load()
	if err := newRootCmd(&cfg).Execute(); err != nil {
		// The board has released the terminal by now.
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		log.Fatal().Err(err).Msg("adivina exited")
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "adivina",
		Short:         "Adivina la palabra de cinco letras en cinco intentos",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			closeLog, err := setupLogging(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			m, err := buildModel(cfg)
			if err != nil {
				return err
			}
			log.Info().Bool("daily", cfg.Daily).Msg("starting adivina")
			return tui.Run(m)
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	f.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of discarding them")
	f.StringVar(&cfg.WordsFile, "words", cfg.WordsFile, "word list file, one five-letter word per line")
	f.BoolVar(&cfg.Daily, "daily", cfg.Daily, "play the word of the day instead of a random word")
	f.BoolVar(&cfg.HighlightMisses, "highlight-misses", cfg.HighlightMisses, "colour letters that are not in the word")
	return cmd
}

// buildModel wires vocabulary, picker, engine and session store into the board.
func buildModel(cfg *config.Config) (tui.Model, error) {
	list, err := words.Load(cfg.WordsFile)
	if err != nil {
		return tui.Model{}, err
	}
	var picker game.Picker = list
	if cfg.Daily {
		picker = daily.NewPicker(list, cfg.DailySalt)
	}
	return tui.New(game.New(picker), store.NewMemoryStore(), tui.DefaultStyles(cfg.HighlightMisses)), nil
}

// setupLogging points the global logger away from the terminal, which the
// board owns while it runs.
func setupLogging(cfg *config.Config) (func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFile == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}
