package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/billdue/internal/store"

	"github.com/spf13/cobra"
)

var payCmd = &cobra.Command{
	Use:   "pay <id|name>",
	Short: "Toggle a person's paid flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runPay,
}

func init() {
	rootCmd.AddCommand(payCmd)
}

func runPay(_ *cobra.Command, args []string) error {
	s, closeSlot, _, err := openStore()
	if err != nil {
		return err
	}
	defer closeSlot()

	id, err := s.Resolve(args[0])
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			if !flagQuiet {
				fmt.Printf("\n  No person matching %q; nothing to toggle.\n\n", args[0])
			}
			return nil
		}
		return err
	}

	if err := s.TogglePaid(id); err != nil {
		return err
	}

	p, _ := s.Get(id)
	if !flagQuiet {
		if p.IsPaid {
			fmt.Printf("\n  %s marked as paid\n\n", p.Name)
		} else {
			fmt.Printf("\n  %s marked as unpaid\n\n", p.Name)
		}
	}
	return nil
}
