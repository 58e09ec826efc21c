package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinalPrice_Identity(t *testing.T) {
	for _, price := range []int64{0, 1, 99, 2999, 1_000_000} {
		assert.Equal(t, price, FinalPrice(price, 0))
	}
}

func TestFinalPrice_FullDiscount(t *testing.T) {
	for _, price := range []int64{0, 1, 2999, 1_000_000} {
		assert.Equal(t, int64(0), FinalPrice(price, 100))
	}
}

func TestFinalPrice_RoundsHalfUp(t *testing.T) {
	tests := []struct {
		price   int64
		percent int
		want    int64
	}{
		{2999, 50, 1500}, // 1499.5 rounds up
		{2999, 10, 2699}, // 2699.1 rounds down
		{1599, 50, 800},  // 799.5 rounds up
		{1, 50, 1},       // 0.5 rounds up
		{1, 49, 1},       // 0.51
		{1, 51, 0},       // 0.49
		{150, 33, 101},   // 100.5 rounds up
		{2999, 60, 1200}, // 1199.6 rounds up
		{100, 25, 75},    // exact
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FinalPrice(tc.price, tc.percent),
			"price=%d percent=%d", tc.price, tc.percent)
	}
}

func TestFinalPrice_NeverNegativeOrAbovePrice(t *testing.T) {
	for _, price := range []int64{0, 1, 2999} {
		for pct := 0; pct <= 100; pct++ {
			got := FinalPrice(price, pct)
			assert.GreaterOrEqual(t, got, int64(0))
			assert.LessOrEqual(t, got, price)
		}
	}
}

func TestFinalPrice_PanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { FinalPrice(2999, -1) })
	assert.Panics(t, func() { FinalPrice(2999, 101) })
}
