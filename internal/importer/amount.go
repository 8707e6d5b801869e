package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// kbcDateLayout is day-first; one- or two-digit day and month are accepted.
const kbcDateLayout = "2/1/2006"

// maxAmountDigits bounds the coefficient of a rounded amount, fractional
// digits included.
const maxAmountDigits = 28

// ParseAmount parses a comma-decimal amount such as "12,34" or "-5,00" and
// rounds it half-to-even to two fractional digits. Amounts needing more than
// 28 digits at that scale are rejected. Decimals carry no signed zero, so
// "-0,00" comes back as plain zero.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: parsing %q: %w", ErrInvalidAmount, text, err)
	}

	// Check magnitude before rounding: rescaling 1e999999999 would expand it.
	intDigits := amount.NumDigits() + int(amount.Exponent())
	if amount.Exponent() > maxAmountDigits-2 || intDigits > maxAmountDigits-2 {
		return decimal.Zero, fmt.Errorf("%w: %q exceeds %d digits", ErrInvalidAmount, text, maxAmountDigits)
	}
	if intDigits < -2 {
		// Below 0.001: rounds to zero, and rescaling a tiny exponent is just as costly.
		return decimal.New(0, -2), nil
	}

	rounded := amount.RoundBank(2)
	if rounded.NumDigits() > maxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: %q exceeds %d digits", ErrInvalidAmount, text, maxAmountDigits)
	}
	return rounded, nil
}

// ParseDate parses a DD/MM/YYYY date.
func ParseDate(text string) (time.Time, error) {
	date, err := time.Parse(kbcDateLayout, strings.TrimSpace(text))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: parsing %q: %w", ErrInvalidDate, text, err)
	}
	return date, nil
}
