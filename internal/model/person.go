// Package model defines domain types for billdue people and payment status.
package model

// Person is one tracked credit-card holder.
type Person struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CardLastFour string  `json:"cardLastFour"`
	BillingDate  int     `json:"billingDate"` // day of month, 1-31
	Amount       float64 `json:"amount"`
	IsPaid       bool    `json:"isPaid"`
}

// Draft holds the raw form fields for a new person before validation.
type Draft struct {
	Name         string
	CardLastFour string
	BillingDate  int
	Amount       float64
}
