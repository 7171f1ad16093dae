// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strings"
)

// FormatAmount formats a bill amount to two decimal places with the
// configured currency symbol.
func FormatAmount(amount float64, symbol string) string {
	if symbol == "" {
		symbol = "$"
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// MaskCard renders the masked card number from its last four characters.
// e.g., "4242" -> "•••• 4242"
func MaskCard(lastFour string) string {
	return "•••• " + lastFour
}

// DueDayLabel describes the billing day of month.
// e.g., 15 -> "Day 15 of month"
func DueDayLabel(day int) string {
	return fmt.Sprintf("Day %d of month", day)
}

// DaysSentence renders the days-until-due count as the reminder sentence
// shown for unpaid people.
func DaysSentence(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue!", -days)
	case days == 0:
		return "Due today!"
	case days == 1:
		return "1 day remaining"
	default:
		return fmt.Sprintf("%d days remaining", days)
	}
}

// TruncateCardInput trims free-text card input to at most four characters,
// the way the entry form caps the field.
func TruncateCardInput(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > 4 {
		return string(runes[:4])
	}
	return s
}
