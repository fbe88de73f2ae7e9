package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConvert tests conversions out of and back into the base currency.
func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
	}{
		{name: "eur to usd", amount: 100, from: "EUR", to: "USD", want: 109.0},
		{name: "eur to pln", amount: 19.99, from: "EUR", to: "PLN", want: 86.36},
		{name: "usd to eur", amount: 109, from: "USD", to: "EUR", want: 100.0},
		{name: "cross rate gbp to czk", amount: 85, from: "GBP", to: "CZK", want: 2510.0},
		{name: "same currency untouched", amount: 12.345, from: "EUR", to: "EUR", want: 12.345},
		{name: "zero amount", amount: 0, from: "EUR", to: "USD", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Convert(tt.amount, tt.from, tt.to), 0.001)
		})
	}
}

// TestConvert_UnknownCurrencyPassesThrough tests the degradation path
// for codes outside the rate table.
func TestConvert_UnknownCurrencyPassesThrough(t *testing.T) {
	assert.Equal(t, 19.99, Convert(19.99, "EUR", "JPY"))
	assert.Equal(t, 19.99, Convert(19.99, "XXX", "EUR"))
}

// TestSupported tests rate table membership.
func TestSupported(t *testing.T) {
	assert.True(t, Supported("EUR"))
	assert.True(t, Supported("UAH"))
	assert.False(t, Supported("JPY"))
	assert.False(t, Supported(""))
}
