package model

// Status classifies a person's bill for the current cycle.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
	StatusDueSoon Status = "due-soon"
	StatusOK      Status = "ok"
)

// Label returns the badge text shown next to a person.
func (s Status) Label() string {
	switch s {
	case StatusPaid:
		return "✓ Paid"
	case StatusOverdue:
		return "⚠ Overdue"
	case StatusDueSoon:
		return "⏰ Due Soon"
	default:
		return "✓ OK"
	}
}
