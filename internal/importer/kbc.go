package importer

import (
	"fmt"
	"io"
	"iter"

	"github.com/kbc2qif/kbc2qif/internal/model"
)

// KBCExtractor turns rows of a KBC CSV export into transfers. Positive
// amounts are booked on Income, everything else on Expenses.
type KBCExtractor struct {
	Asset     model.Account
	Income    model.Account
	Expenses  model.Account
	Columns   Columns
	Delimiter rune
}

// NewKBCExtractor creates a KBCExtractor, filling in the KBC column names and
// delimiter where opts leaves them unset.
func NewKBCExtractor(opts Options) *KBCExtractor {
	cols := DefaultColumns()
	if opts.Columns.Amount != "" {
		cols.Amount = opts.Columns.Amount
	}
	if opts.Columns.Date != "" {
		cols.Date = opts.Columns.Date
	}
	if opts.Columns.Description != "" {
		cols.Description = opts.Columns.Description
	}
	if opts.Columns.Memo != "" {
		cols.Memo = opts.Columns.Memo
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = DefaultDelimiter
	}

	return &KBCExtractor{
		Asset:     opts.Asset,
		Income:    opts.Income,
		Expenses:  opts.Expenses,
		Columns:   cols,
		Delimiter: delim,
	}
}

// Format returns the extractor name.
func (e *KBCExtractor) Format() string { return "kbc" }

// Ingest lazily converts the rows read from r. The sequence can be ranged
// over once; it yields at most one error, after which it stops.
func (e *KBCExtractor) Ingest(r io.Reader) iter.Seq2[model.Transfer, error] {
	return func(yield func(model.Transfer, error) bool) {
		for row, err := range ReadRows(r, e.Delimiter) {
			if err != nil {
				yield(model.Transfer{}, err)
				return
			}
			t, err := e.Extract(row)
			if err != nil {
				yield(model.Transfer{}, fmt.Errorf("row %d: %w", row.Line(), err))
				return
			}
			if !yield(t, nil) {
				return
			}
		}
	}
}

// Extract converts a single row into a transfer with exactly one split.
func (e *KBCExtractor) Extract(row Row) (model.Transfer, error) {
	rawAmount, err := row.Get(e.Columns.Amount)
	if err != nil {
		return model.Transfer{}, err
	}
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		return model.Transfer{}, err
	}

	// Zero is not income.
	target := e.Expenses
	if amount.IsPositive() {
		target = e.Income
	}

	rawDate, err := row.Get(e.Columns.Date)
	if err != nil {
		return model.Transfer{}, err
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return model.Transfer{}, err
	}

	description, err := row.Get(e.Columns.Description)
	if err != nil {
		return model.Transfer{}, err
	}
	memo, err := row.Get(e.Columns.Memo)
	if err != nil {
		return model.Transfer{}, err
	}

	return model.Transfer{
		Amount: amount,
		Asset:  e.Asset,
		Memo:   ExtractMemo(description, memo),
		Date:   date,
		Splits: []model.Split{{Amount: amount, Target: target}},
	}, nil
}

// Collect drains seq into a slice. It returns the first error instead of a
// partial result.
func Collect(seq iter.Seq2[model.Transfer, error]) ([]model.Transfer, error) {
	var transfers []model.Transfer
	for t, err := range seq {
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, nil
}
