// Package swap holds the conversion arithmetic and the transaction
// executor of the currency swap pipeline.
package swap

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Convert returns the amount of the destination currency equivalent to
// amount units of the source currency, given both unit prices in the
// common quote currency. Defined only for toPrice > 0; catalog prices are
// strictly positive by construction, and a missing price must be rejected
// by the caller before conversion.
func Convert(amount, fromPrice, toPrice float64) float64 {
	return amount * fromPrice / toPrice
}

// FormatAmount renders v with a fixed number of decimal places, rounding
// half away from zero. Display precision policy: 4 places for conversion
// output and balances, 2 for swap-row summaries.
func FormatAmount(v float64, places int32) string {
	// decimal.NewFromFloat panics on NaN and infinities.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
