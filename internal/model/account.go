package model

// Account is a QIF account or category, identified by its label.
// Account values are comparable and can be used as map keys.
type Account struct {
	Label    string
	IsIncome bool // declared with an I line when true
}

// NewAccount returns a non-income account.
func NewAccount(label string) Account {
	return Account{Label: label}
}

// NewIncomeAccount returns an account flagged as income.
func NewIncomeAccount(label string) Account {
	return Account{Label: label, IsIncome: true}
}
