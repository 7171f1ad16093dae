package due

import (
	"testing"
	"time"

	"github.com/theirongolddev/billdue/internal/model"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestDaysUntilDue_SameMonth(t *testing.T) {
	// 2024-03-10 with billing day 15: due this month, 5 days out.
	got := DaysUntilDue(15, localDate(2024, time.March, 10))
	if got != 5 {
		t.Fatalf("DaysUntilDue = %d, want 5", got)
	}
}

func TestDaysUntilDue_RollsToNextMonth(t *testing.T) {
	// 2024-03-20 with billing day 15: the 15th has passed, due 2024-04-15.
	got := DaysUntilDue(15, localDate(2024, time.March, 20))
	if got != 26 {
		t.Fatalf("DaysUntilDue = %d, want 26", got)
	}
}

func TestDaysUntilDue_DueToday(t *testing.T) {
	got := DaysUntilDue(20, localDate(2024, time.March, 20))
	if got != 0 {
		t.Fatalf("DaysUntilDue = %d, want 0", got)
	}
}

func TestDaysUntilDue_StableAcrossTimeOfDay(t *testing.T) {
	early := time.Date(2024, time.March, 10, 0, 1, 0, 0, time.Local)
	late := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.Local)

	if a, b := DaysUntilDue(15, early), DaysUntilDue(15, late); a != b {
		t.Fatalf("count shifted with clock: 00:01 gives %d, 23:59 gives %d", a, b)
	}
}

func inNewYork(t *testing.T, y int, m time.Month, d, hour int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return time.Date(y, m, d, hour, 0, 0, 0, loc)
}

func TestDaysUntilDue_FallBackDSTSpan(t *testing.T) {
	// Oct 20 to Nov 15 2024 crosses the Nov 3 fall-back transition, so the
	// local-time interval is 26 days plus an hour. The count must stay 26.
	got := DaysUntilDue(15, inNewYork(t, 2024, time.October, 20, 12))
	if got != 26 {
		t.Fatalf("DaysUntilDue = %d, want 26", got)
	}
}

func TestDaysUntilDue_SpringForwardDSTSpan(t *testing.T) {
	// Mar 5 to Mar 15 2024 crosses the Mar 10 spring-forward transition
	// (10 days minus an hour of local time). The count must stay 10.
	got := DaysUntilDue(15, inNewYork(t, 2024, time.March, 5, 8))
	if got != 10 {
		t.Fatalf("DaysUntilDue = %d, want 10", got)
	}
}

func TestClassify_DueSoonBoundaryAcrossFallBack(t *testing.T) {
	// Oct 29 2024 with billing day 3: due Nov 3, exactly 5 days out, with
	// the fall-back transition inside the span. An hour of extra interval
	// must not push the classification from due-soon to ok.
	p := model.Person{BillingDate: 3}
	today := inNewYork(t, 2024, time.October, 29, 12)

	if got := DaysUntilDue(3, today); got != 5 {
		t.Fatalf("DaysUntilDue = %d, want 5", got)
	}
	if got := Classify(p, today, DefaultSoonDays); got != model.StatusDueSoon {
		t.Fatalf("Classify = %q, want %q", got, model.StatusDueSoon)
	}
}

func TestDaysUntilDue_YearRollover(t *testing.T) {
	// 2024-12-20 with billing day 10: due 2025-01-10.
	got := DaysUntilDue(10, localDate(2024, time.December, 20))
	if got != 21 {
		t.Fatalf("DaysUntilDue = %d, want 21", got)
	}
}

func TestDaysUntilDue_Day31OverflowsShortMonth(t *testing.T) {
	// Billing day 31 resolved in April overflows to May 1, as the original
	// stored data expects. 2024-04-05 -> 2024-05-01 is 26 days.
	got := DaysUntilDue(31, localDate(2024, time.April, 5))
	if got != 26 {
		t.Fatalf("DaysUntilDue = %d, want 26 (overflow to May 1)", got)
	}
}

func TestDaysUntilDue_WithinCurrentOrNextMonth(t *testing.T) {
	for billingDay := 1; billingDay <= 28; billingDay++ {
		for day := 1; day <= 31; day++ {
			today := localDate(2024, time.March, day)
			days := DaysUntilDue(billingDay, today)

			if today.Day() <= billingDay {
				want := billingDay - today.Day()
				if days != want {
					t.Fatalf("billingDay=%d today=%d: got %d, want %d",
						billingDay, day, days, want)
				}
			} else if days <= 0 || days > 31 {
				t.Fatalf("billingDay=%d today=%d: rolled count %d out of range",
					billingDay, day, days)
			}
		}
	}
}

func TestClassify_PaidShortCircuits(t *testing.T) {
	p := model.Person{BillingDate: 15, IsPaid: true}
	// Billing day long past; paid must still win.
	got := Classify(p, localDate(2024, time.March, 20), DefaultSoonDays)
	if got != model.StatusPaid {
		t.Fatalf("Classify = %q, want %q", got, model.StatusPaid)
	}
}

func TestClassify_DueSoonWindow(t *testing.T) {
	p := model.Person{BillingDate: 15}

	// 5 days out: inside the window.
	if got := Classify(p, localDate(2024, time.March, 10), DefaultSoonDays); got != model.StatusDueSoon {
		t.Fatalf("5 days out: Classify = %q, want %q", got, model.StatusDueSoon)
	}
	// 6 days out: outside.
	if got := Classify(p, localDate(2024, time.March, 9), DefaultSoonDays); got != model.StatusOK {
		t.Fatalf("6 days out: Classify = %q, want %q", got, model.StatusOK)
	}
	// Due today counts as due-soon.
	if got := Classify(p, localDate(2024, time.March, 15), DefaultSoonDays); got != model.StatusDueSoon {
		t.Fatalf("due today: Classify = %q, want %q", got, model.StatusDueSoon)
	}
}

func TestClassify_RolledDueDateIsOK(t *testing.T) {
	// 2024-03-20, billing day 15: due 2024-04-15, 26 days out.
	p := model.Person{BillingDate: 15}
	if got := Classify(p, localDate(2024, time.March, 20), DefaultSoonDays); got != model.StatusOK {
		t.Fatalf("Classify = %q, want %q", got, model.StatusOK)
	}
}

func TestClassify_CustomWindow(t *testing.T) {
	p := model.Person{BillingDate: 20}
	today := localDate(2024, time.March, 10) // 10 days out

	if got := Classify(p, today, 10); got != model.StatusDueSoon {
		t.Fatalf("window=10: Classify = %q, want %q", got, model.StatusDueSoon)
	}
	if got := Classify(p, today, 9); got != model.StatusOK {
		t.Fatalf("window=9: Classify = %q, want %q", got, model.StatusOK)
	}
}
