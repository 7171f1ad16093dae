package cmd

import (
	"fmt"

	"github.com/theirongolddev/billdue/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved configuration and file locations",
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

	status := "(not created yet, using defaults)"
	if config.Exists() {
		status = ""
	}

	fmt.Println()
	fmt.Printf("  Config file:      %s %s\n", config.ConfigPath(), status)
	fmt.Printf("  Data directory:   %s\n", cfg.DataDir())
	fmt.Printf("  Storage backend:  %s\n", cfg.Storage.Backend)
	fmt.Printf("  Due-soon window:  %d days\n", cfg.General.DueSoonDays)
	fmt.Printf("  Currency symbol:  %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("  Theme:            %s\n", cfg.Appearance.Theme)
	fmt.Println()

	return nil
}
