// Package currency converts fare prices between currencies using a
// static EUR-based rate table. Rates are deliberately fixed: prices are
// indicative and a stale rate is preferable to a hard dependency on an
// exchange-rate provider in the request path.
package currency

import "math"

// BaseCurrency is the currency the upstream quotes fares in and the one
// every rate in the table is relative to.
const BaseCurrency = "EUR"

// eurRates maps a currency code to the amount of that currency one EUR
// buys.
var eurRates = map[string]float64{
	"EUR": 1.0,
	"USD": 1.09,
	"GBP": 0.85,
	"PLN": 4.32,
	"UAH": 42.5,
	"HUF": 386.25,
	"CZK": 25.1,
	"BGN": 1.96,
	"RON": 4.97,
	"HRK": 7.53,
	"DKK": 7.46,
	"SEK": 11.3,
	"NOK": 11.7,
}

// Supported reports whether a currency code has a conversion rate.
func Supported(code string) bool {
	_, ok := eurRates[code]
	return ok
}

// Convert converts an amount between two currencies, rounding to two
// decimals. When either code has no rate the amount passes through
// unchanged, so an unknown currency degrades to base-currency prices
// instead of failing the request.
func Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	fromRate, okFrom := eurRates[from]
	toRate, okTo := eurRates[to]
	if !okFrom || !okTo {
		return amount
	}
	return round2(amount / fromRate * toRate)
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
