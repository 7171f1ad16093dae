package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/billdue/internal/cli"
	"github.com/theirongolddev/billdue/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagAddName   string
	flagAddCard   string
	flagAddDay    int
	flagAddAmount float64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a person to track",
	Long:  "Add a person with flags, or run without flags for an interactive form.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddName, "name", "", "Person's name")
	addCmd.Flags().StringVar(&flagAddCard, "card", "", "Card last 4 digits")
	addCmd.Flags().IntVar(&flagAddDay, "day", 0, "Billing day of month (1-31)")
	addCmd.Flags().Float64Var(&flagAddAmount, "amount", 0, "Amount due")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	s, closeSlot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer closeSlot()

	var draft model.Draft
	if cmd.Flags().Changed("name") || cmd.Flags().Changed("card") ||
		cmd.Flags().Changed("day") || cmd.Flags().Changed("amount") {
		draft, err = draftFromFlags()
	} else {
		draft, err = draftFromForm()
	}
	if err != nil {
		return err
	}

	p, err := s.Add(draft)
	if err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("\n  Added %s (%s, due day %d, %s)\n  id: %s\n\n",
			p.Name,
			cli.MaskCard(p.CardLastFour),
			p.BillingDate,
			cli.FormatAmount(p.Amount, cfg.General.CurrencySymbol),
			p.ID,
		)
	}
	return nil
}

func draftFromFlags() (model.Draft, error) {
	draft := model.Draft{
		Name:         strings.TrimSpace(flagAddName),
		CardLastFour: cli.TruncateCardInput(flagAddCard),
		BillingDate:  flagAddDay,
		Amount:       flagAddAmount,
	}
	return draft, validateDraft(draft)
}

// draftFromForm collects the four fields interactively, mirroring the
// original entry form: free-text name, card suffix capped at 4 characters,
// billing day picked from an enumerated 1-31 list, decimal amount.
func draftFromForm() (model.Draft, error) {
	var (
		name      string
		card      string
		day       int
		amountStr string
	)

	dayOptions := make([]huh.Option[int], 0, 31)
	for d := 1; d <= 31; d++ {
		dayOptions = append(dayOptions, huh.NewOption(strconv.Itoa(d), d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("John Doe").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Card last 4 digits").
				Placeholder("1234").
				CharLimit(4).
				Value(&card).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("card digits are required")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Billing date (day of month)").
				Options(dayOptions...).
				Value(&day),
			huh.NewInput().
				Title("Amount due").
				Placeholder("0.00").
				Value(&amountStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil {
						return errors.New("amount must be a number")
					}
					if v < 0 {
						return errors.New("amount can't be negative")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return model.Draft{}, err
	}

	amount, _ := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
	draft := model.Draft{
		Name:         strings.TrimSpace(name),
		CardLastFour: cli.TruncateCardInput(card),
		BillingDate:  day,
		Amount:       amount,
	}
	return draft, validateDraft(draft)
}

// validateDraft enforces the add preconditions: all fields present, billing
// day in range, amount non-negative. The store is never called with an
// invalid draft.
func validateDraft(d model.Draft) error {
	if d.Name == "" {
		return errors.New("please fill all fields: name is required")
	}
	if d.CardLastFour == "" {
		return errors.New("please fill all fields: card last 4 digits are required")
	}
	if d.BillingDate < 1 || d.BillingDate > 31 {
		return errors.New("billing day must be between 1 and 31")
	}
	if d.Amount < 0 {
		return errors.New("amount can't be negative")
	}
	return nil
}
