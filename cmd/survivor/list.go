package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-survivor/internal/config"
	"github.com/vovakirdan/tui-survivor/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in sprites and upgrades",
	Long:  `Shows the registered sprites and the upgrade catalog of the active configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	sprites := registry.List()

	fmt.Println("Sprites:")
	fmt.Println()
	maxIDLen := 2
	for _, s := range sprites {
		maxIDLen = max(maxIDLen, len(s.ID))
	}
	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "ID", "Kind", "Frames", "Title")
	fmt.Printf("  %-*s  %-10s  %-6s  %s\n", maxIDLen, "--", "----", "------", "-----")
	for _, s := range sprites {
		fmt.Printf("  %-*s  %-10s  %-6d  %s\n", maxIDLen, s.ID, s.Kind, s.Frames, s.Title)
	}

	cfg, err := config.LoadSurvivor(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Upgrades:")
	fmt.Println()
	fmt.Printf("  %-10s  %-6s  %-9s  %s\n", "Name", "Weight", "Min level", "Effect")
	fmt.Printf("  %-10s  %-6s  %-9s  %s\n", "----", "------", "---------", "------")
	for _, u := range cfg.Upgrades {
		once := ""
		if u.OneShot {
			once = " (once)"
		}
		fmt.Printf("  %-10s  %-6.0f  %-9d  %s%s\n", u.Name, u.Weight, u.MinLevel, u.Description, once)
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	for _, p := range config.Presets() {
		fmt.Printf("  %-7s %s\n", p, p.Description())
	}
	fmt.Println()
	fmt.Println("Run 'survivor play' to start a run.")
	return nil
}
