// Package qif renders accounts and transfers in the Quicken Interchange Format.
package qif

import (
	"bufio"
	"fmt"
	"io"

	"github.com/kbc2qif/kbc2qif/internal/model"
)

const dateFormat = "2006-01-02"

// DeclareAccount writes an !Account block for acct.
func DeclareAccount(w io.Writer, acct model.Account) error {
	if _, err := fmt.Fprintf(w, "!Account\nN%s\n", acct.Label); err != nil {
		return err
	}
	if acct.IsIncome {
		if _, err := io.WriteString(w, "I\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "^\n\n")
	return err
}

// DeclareSplit writes the S/E/$ lines of one split. The E line is omitted
// when the split has no memo.
func DeclareSplit(w io.Writer, s model.Split) error {
	if _, err := fmt.Fprintf(w, "S%s\n", s.Target.Label); err != nil {
		return err
	}
	if s.Memo != "" {
		if _, err := fmt.Fprintf(w, "E%s\n", s.Memo); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "$%s\n", s.Amount.StringFixed(2))
	return err
}

// DeclareTransfer writes one bank transaction terminated by ^.
func DeclareTransfer(w io.Writer, t model.Transfer) error {
	if _, err := fmt.Fprintf(w, "D%s\nT%s\nM%s\n", t.Date.Format(dateFormat), t.Amount.StringFixed(2), t.Memo); err != nil {
		return err
	}
	for _, s := range t.Splits {
		if err := DeclareSplit(w, s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "^\n\n")
	return err
}

// Group collects transfers per asset account. Accounts keep the order in
// which they were first seen and transfers keep their input order.
func Group(transfers []model.Transfer) ([]model.Account, map[model.Account][]model.Transfer) {
	var order []model.Account
	byAccount := make(map[model.Account][]model.Transfer)
	for _, t := range transfers {
		if _, seen := byAccount[t.Asset]; !seen {
			order = append(order, t.Asset)
		}
		byAccount[t.Asset] = append(byAccount[t.Asset], t)
	}
	return order, byAccount
}

// DeclareAccountsAndTransactions writes a complete QIF document: for each
// asset account a !Type:Cat declaration followed by a !Type:Bank section
// with its transfers. Split targets are referenced by label only.
func DeclareAccountsAndTransactions(w io.Writer, transfers []model.Transfer) error {
	bw := bufio.NewWriter(w)
	order, byAccount := Group(transfers)

	for _, acct := range order {
		if _, err := io.WriteString(bw, "!Type:Cat\n"); err != nil {
			return fmt.Errorf("declaring %s: %w", acct.Label, err)
		}
		if err := DeclareAccount(bw, acct); err != nil {
			return fmt.Errorf("declaring %s: %w", acct.Label, err)
		}

		if _, err := io.WriteString(bw, "!Type:Bank\n"); err != nil {
			return fmt.Errorf("writing %s transactions: %w", acct.Label, err)
		}
		for i, t := range byAccount[acct] {
			if err := DeclareTransfer(bw, t); err != nil {
				return fmt.Errorf("writing %s transaction %d: %w", acct.Label, i+1, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing QIF output: %w", err)
	}
	return nil
}
