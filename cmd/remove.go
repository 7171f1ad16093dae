package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/billdue/internal/store"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "rm <id|name>",
	Aliases: []string{"remove", "delete"},
	Short:   "Stop tracking a person",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	s, closeSlot, _, err := openStore()
	if err != nil {
		return err
	}
	defer closeSlot()

	id, err := s.Resolve(args[0])
	if err != nil {
		// Removing someone who isn't tracked is a no-op, not a failure.
		if errors.Is(err, store.ErrNotFound) {
			if !flagQuiet {
				fmt.Printf("\n  No person matching %q; nothing removed.\n\n", args[0])
			}
			return nil
		}
		return err
	}

	p, _ := s.Get(id)
	if err := s.Remove(id); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("\n  Removed %s\n\n", p.Name)
	}
	return nil
}
