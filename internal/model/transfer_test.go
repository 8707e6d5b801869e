package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountAsMapKey(t *testing.T) {
	seen := map[Account]int{}
	seen[NewAccount("Checking")]++
	seen[Account{Label: "Checking"}]++
	seen[NewIncomeAccount("Checking")]++

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[NewAccount("Checking")])
	assert.Equal(t, 1, seen[NewIncomeAccount("Checking")])
}

func TestTransferSplitTotal(t *testing.T) {
	groceries := NewAccount("Groceries")
	household := NewAccount("Household")

	tests := []struct {
		name     string
		amount   string
		splits   []Split
		total    string
		balanced bool
	}{
		{"single split", "-12.50", []Split{{Amount: decimal.RequireFromString("-12.50"), Target: groceries}}, "-12.50", true},
		{"two splits", "-20.00", []Split{
			{Amount: decimal.RequireFromString("-15.00"), Target: groceries},
			{Amount: decimal.RequireFromString("-5.00"), Target: household},
		}, "-20.00", true},
		{"unbalanced", "-20.00", []Split{{Amount: decimal.RequireFromString("-15.00"), Target: groceries}}, "-15.00", false},
		{"no splits", "3.00", nil, "0.00", false},
	}
	for _, tt := range tests {
		tr := Transfer{Amount: decimal.RequireFromString(tt.amount), Splits: tt.splits}
		assert.Equal(t, tt.total, tr.SplitTotal().StringFixed(2), tt.name)
		assert.Equal(t, tt.balanced, tr.Balanced(), tt.name)
	}
}
