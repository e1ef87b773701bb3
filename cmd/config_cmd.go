package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"hucha/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:       %s\n", cfg.General.Currency)
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data directory: %s (from config)\n", cfg.General.DataDir)
	} else {
		fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", config.Theme(cfg))
	fmt.Println()

	fmt.Println("  [Dial]")
	fmt.Printf("    Drag cells per step: %d\n", cfg.Dial.DragCellsPerStep)
	fmt.Println()

	fmt.Println("  Paths")
	fmt.Printf("    Database: %s\n", config.DBPath(cfg))
	fmt.Printf("    Log file: %s\n", config.LogPath(cfg))
	fmt.Println()

	fmt.Println("  Run `hucha setup` to reconfigure.")
	return nil
}
