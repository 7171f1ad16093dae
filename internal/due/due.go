// Package due computes days-until-due and payment status from a billing day.
package due

import (
	"time"

	"github.com/theirongolddev/billdue/internal/model"
)

// DefaultSoonDays is the default due-soon window in days.
const DefaultSoonDays = 5

// DaysUntilDue returns the signed day count from today to the next occurrence
// of billingDay. Positive means the due date is ahead, zero means due today.
//
// The due date is day billingDay of the current month, or of the next month
// once today's day-of-month has passed it. time.Date normalizes out-of-range
// days, so billingDay=31 in a 30-day month overflows into the following month
// rather than clamping; stored lists from older versions relied on that.
// Only the calendar dates are compared, in UTC, so the count is a whole
// number of days regardless of the wall clock or any DST transition inside
// the span.
func DaysUntilDue(billingDay int, today time.Time) int {
	year, month, day := today.Date()

	dueMonth := month
	if day > billingDay {
		dueMonth++
	}
	dueDate := time.Date(year, dueMonth, billingDay, 0, 0, 0, 0, time.UTC)
	todayDate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return int(dueDate.Sub(todayDate).Hours() / 24)
}

// Classify maps a person to a payment status for the given instant.
// Paid wins outright; otherwise the days-until-due count decides, with
// soonDays (usually DefaultSoonDays) as the inclusive due-soon window.
func Classify(p model.Person, today time.Time, soonDays int) model.Status {
	if p.IsPaid {
		return model.StatusPaid
	}
	days := DaysUntilDue(p.BillingDate, today)
	switch {
	case days < 0:
		return model.StatusOverdue
	case days <= soonDays:
		return model.StatusDueSoon
	default:
		return model.StatusOK
	}
}
