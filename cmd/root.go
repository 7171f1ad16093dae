package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/billdue/internal/config"
	"github.com/theirongolddev/billdue/internal/logging"
	"github.com/theirongolddev/billdue/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "billdue",
	Short: "Credit Card Bill Reminder",
	Long:  "Track credit-card payment deadlines for multiple people: who owes what, and when.",
	RunE:  runList,
}

// Execute is the main entry point called from main.go.
func Execute() {
	logging.Setup()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// openStore is the shared store-opening path used by all commands.
// The returned closer releases the persistence slot.
func openStore() (*store.Store, func(), config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, cfg, err
	}

	dataDir := cfg.DataDir()
	if flagDataDir != "" {
		dataDir = flagDataDir
	}

	slot, err := store.OpenSlot(cfg.Storage.Backend, dataDir)
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("opening storage: %w", err)
	}

	s := store.New(slot)
	return s, func() { _ = slot.Close() }, cfg, nil
}
