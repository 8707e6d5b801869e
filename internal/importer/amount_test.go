package importer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12,50", "12.50"},
		{"-3,5", "-3.50"},
		{"-5,00", "-5.00"},
		{"2500", "2500.00"},
		{" 7,1 ", "7.10"},
		{"0,00", "0.00"},
		{"1,0051", "1.01"},
		// Half-to-even.
		{"1,005", "1.00"},
		{"1,015", "1.02"},
		{"2,675", "2.68"},
		// No signed zero.
		{"-0,00", "0.00"},
		// 26 integer digits is the largest amount that fits.
		{"12345678901234567890123456", "12345678901234567890123456.00"},
		{"1e25", "10000000000000000000000000.00"},
		{"1e-999999999", "0.00"},
		{"0,0004", "0.00"},
		{"0,0051", "0.01"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, "ParseAmount(%q)", tt.in)
		assert.Equal(t, tt.want, got.StringFixed(2), "ParseAmount(%q)", tt.in)
	}
}

func TestParseAmount_Exact(t *testing.T) {
	got, err := ParseAmount("12,50")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("12.5")))
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{
		"", "   ", "abc", "1.234,56", "12,34,56", "€5",
		"1e30", "1e999999999", "123456789012345678901234567", "-1e27",
		"99999999999999999999999999,995",
	} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "ParseAmount(%q)", in)
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("05/03/2021")
	require.NoError(t, err)
	assert.True(t, time.Date(2021, time.March, 5, 0, 0, 0, 0, time.UTC).Equal(got))

	got, err = ParseDate("5/3/2021")
	require.NoError(t, err)
	assert.Equal(t, "2021-03-05", got.Format("2006-01-02"))
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"13/13/2021", "31/02/2021", "2021-03-05", "", "05/03/21", "05/03/2021 extra"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDate, "ParseDate(%q)", in)
	}
}
