package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/theirongolddev/billdue/internal/config"
	"github.com/theirongolddev/billdue/internal/store"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to billdue!")
	fmt.Println()

	// 1. Storage backend
	fmt.Println("  1. Storage backend")
	fmt.Println("     (1) JSON file [default]")
	fmt.Println("     (2) SQLite")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.Storage.Backend = store.BackendSQLite
	default:
		cfg.Storage.Backend = store.BackendFile
	}
	fmt.Println()

	// 2. Due-soon window
	fmt.Println("  2. How many days before the billing date counts as \"due soon\"?")
	fmt.Printf("     [default %d]\n", cfg.General.DueSoonDays)
	fmt.Print("     > ")
	daysIn, _ := reader.ReadString('\n')
	if v, err := strconv.Atoi(strings.TrimSpace(daysIn)); err == nil && v >= 0 {
		cfg.General.DueSoonDays = v
	}
	fmt.Println()

	// 3. Theme
	fmt.Println("  3. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Tokyo Night")
	fmt.Println("     (4) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "tokyo-night"
	case "4":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `billdue setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
