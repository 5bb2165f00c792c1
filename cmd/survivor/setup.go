package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/games/survivor"
	"github.com/vovakirdan/tui-survivor/internal/logging"
	"github.com/vovakirdan/tui-survivor/internal/registry"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openLogger honors --log-file and --log-level.
func openLogger() (*log.Logger, io.Closer, error) {
	return logging.OpenFile(flagLogFile, flagLogLevel, "survivor")
}

// openStore opens the run history. Failure is not fatal: the game runs
// without recording.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		logger.Warn("could not open run database", "error", err)
		return nil
	}
	return store
}

// newGame loads the configuration, applies the preset and builds a game
// drawn with the registered sprites.
func newGame(configPath string, preset config.DifficultyPreset, logger *log.Logger) (*survivor.Game, error) {
	cfg, err := config.LoadSurvivor(configPath)
	if err != nil {
		return nil, err
	}
	config.ApplySurvivorPreset(&cfg, preset)
	return survivor.New(cfg, registry.Table{}, logger)
}
