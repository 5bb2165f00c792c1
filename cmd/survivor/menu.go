package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty and browse run history",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play and Tab to see the
run history. After a run ends, quit the game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Run history
  Q            - Quit

Examples:
  survivor menu
  survivor menu --fps 30
  survivor menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := newGame(flagConfig, menuResult.Difficulty, logger)
		if err != nil {
			return fmt.Errorf("cannot create game: %w", err)
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		opts := tui.ModelOptions{
			Sprites:    registry.Table{},
			Logger:     logger,
			Difficulty: string(menuResult.Difficulty),
			Player:     currentUser(),
		}
		if store != nil {
			opts.Recorder = store
		}
		if err := tui.Run(game, cfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
