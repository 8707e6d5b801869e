package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Split allocates part of a transfer to a target account.
type Split struct {
	Amount decimal.Decimal
	Target Account
	Memo   string // empty = no split memo
}

// Transfer is one bank transaction moving money in or out of an asset account.
type Transfer struct {
	Amount decimal.Decimal // negative = expense, positive = income
	Asset  Account
	Memo   string
	Date   time.Time
	Splits []Split
}

// SplitTotal returns the sum of all split amounts.
func (t Transfer) SplitTotal() decimal.Decimal {
	total := decimal.Zero
	for _, s := range t.Splits {
		total = total.Add(s.Amount)
	}
	return total
}

// Balanced reports whether the splits add up to the transfer amount.
func (t Transfer) Balanced() bool {
	return t.SplitTotal().Equal(t.Amount)
}
