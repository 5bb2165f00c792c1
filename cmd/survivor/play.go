package main

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run right away.

Controls:
  WASD/Arrows  - Move
  Space        - Shoot the nearest enemy
  Mouse        - Hold the left button to shoot where you point
  1/2/3        - Pick an upgrade on level-up
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More health, slower waves
  normal - The intended experience
  hard   - Less health, faster waves, tougher enemies

Examples:
  survivor play
  survivor play --difficulty hard
  survivor play --config ./my-survivor.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, serveCmd, listCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	}
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	game, err := newGame(flagConfig, preset, logger)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	opts := tui.ModelOptions{
		Sprites:    registry.Table{},
		Logger:     logger,
		Difficulty: string(preset),
		Player:     currentUser(),
	}
	if store != nil {
		defer store.Close()
		opts.Recorder = store
	}

	logger.Info("starting run", "difficulty", preset, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// currentUser names local runs in the history.
func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
