package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/billdue/internal/cli"
	"github.com/theirongolddev/billdue/internal/due"
	"github.com/theirongolddev/billdue/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var flagJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show everyone's bill status",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}

// listEntry is the JSON shape for one person plus the computed status.
type listEntry struct {
	model.Person
	DaysUntilDue int          `json:"daysUntilDue"`
	Status       model.Status `json:"status"`
}

func runList(_ *cobra.Command, _ []string) error {
	s, closeSlot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer closeSlot()

	people := s.People()
	now := time.Now()
	soon := cfg.General.DueSoonDays

	if flagJSON {
		entries := make([]listEntry, 0, len(people))
		for _, p := range people {
			entries = append(entries, listEntry{
				Person:       p,
				DaysUntilDue: due.DaysUntilDue(p.BillingDate, now),
				Status:       due.Classify(p, now, soon),
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(people) == 0 {
		fmt.Println("\n  No people added yet.")
		fmt.Println("  Run `billdue add` to start tracking someone's credit card payments.")
		fmt.Println()
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("💳 CREDIT CARD BILL REMINDER"))
	fmt.Println()

	statuses := make([]model.Status, len(people))
	rows := make([][]string, 0, len(people))
	for i, p := range people {
		st := due.Classify(p, now, soon)
		statuses[i] = st

		next := ""
		if !p.IsPaid {
			next = cli.DaysSentence(due.DaysUntilDue(p.BillingDate, now))
		}

		rows = append(rows, []string{
			p.Name,
			cli.MaskCard(p.CardLastFour),
			fmt.Sprintf("Day %d", p.BillingDate),
			cli.FormatAmount(p.Amount, cfg.General.CurrencySymbol),
			st.Label(),
			next,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Card", "Due", "Amount", "Status", ""},
		Rows:    rows,
		CellStyle: func(row, col int) (lipgloss.Style, bool) {
			if col == 4 || col == 5 {
				return cli.StatusStyle(statuses[row]), true
			}
			return lipgloss.Style{}, false
		},
	}))
	fmt.Println()

	return nil
}
