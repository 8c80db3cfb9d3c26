package money

import (
	"fmt"
	"math"
)

// All monetary values cross the wire and hit the database as integer sen,
// the minor currency unit (1 display unit = 100 sen). Fractional sen from
// display input are truncated, not rounded.

// ToSen converts a display-currency amount to sen.
func ToSen(display float64) int64 {
	scaled := display * 100
	// values like 0.29 scale to 28.999999999999996; snap float noise back
	// to the intended whole sen before truncating
	if nearest := math.Round(scaled); math.Abs(scaled-nearest) < 1e-6 {
		return int64(nearest)
	}
	return int64(math.Trunc(scaled))
}

// FromSen converts a sen amount back to display currency.
func FromSen(sen int64) float64 {
	return float64(sen) / 100
}

// FormatSen renders a sen amount as a display string with two decimals.
func FormatSen(sen int64) string {
	sign := ""
	if sen < 0 {
		sign = "-"
		sen = -sen
	}
	return fmt.Sprintf("%s%d.%02d", sign, sen/100, sen%100)
}
