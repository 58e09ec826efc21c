package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FinalPrice applies a percentage discount to a price in minor currency
// units: round(price * (1 - percent/100)). Fractional minor units round
// half-up (decimal's Round is half-away-from-zero, which coincides with
// half-up on the non-negative inputs handled here): 2999 at 50% is 1499.5
// and becomes 1500.
//
// A percent of 0 returns the price unchanged; 100 returns 0. Out-of-range
// percentages are a caller contract violation — the voucher validator never
// produces them — and panic.
func FinalPrice(originalPrice int64, discountPercent int) int64 {
	if discountPercent < 0 || discountPercent > 100 {
		panic(fmt.Sprintf("discount percent out of range: %d", discountPercent))
	}
	if discountPercent == 0 {
		return originalPrice
	}

	return decimal.NewFromInt(originalPrice).
		Mul(decimal.NewFromInt(int64(100 - discountPercent))).
		Div(hundred).
		Round(0).
		IntPart()
}
