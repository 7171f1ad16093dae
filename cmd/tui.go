package cmd

import (
	"fmt"

	"github.com/theirongolddev/billdue/internal/tui"
	"github.com/theirongolddev/billdue/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, closeSlot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer closeSlot()

	theme.SetActive(cfg.Appearance.Theme)

	app := tui.NewApp(s, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
