package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount in cents as US dollars, e.g. 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	sign := ""
	abs := uint64(cents)
	if cents < 0 {
		sign = "-"
		abs = uint64(-(cents + 1)) + 1
	}

	whole := strconv.FormatUint(abs/100, 10)
	frac := abs % 100

	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatUint(frac, 10))
	return b.String()
}

// ToCents converts a display amount to cents, rounding half away from zero.
// ok is false when the result does not fit in an int64.
func ToCents(amount float64) (cents int64, ok bool) {
	c := math.Round(amount * 100)
	if math.IsNaN(c) || c < math.MinInt64 || c >= math.MaxInt64 {
		return 0, false
	}
	return int64(c), true
}

// FromCents is the inverse used by edit forms.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
