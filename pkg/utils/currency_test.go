package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "Zero", cents: 0, want: "$0.00"},
		{name: "Single cent", cents: 1, want: "$0.01"},
		{name: "Twelve fifty", cents: 1250, want: "$12.50"},
		{name: "Thousands separator", cents: 123456, want: "$1,234.56"},
		{name: "Millions", cents: 100000000, want: "$1,000,000.00"},
		{name: "Negative", cents: -9900, want: "-$99.00"},
		{name: "Smallest int64", cents: math.MinInt64, want: "-$92,233,720,368,547,758.08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.cents))
		})
	}
}

func TestToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
		wantOK bool
	}{
		{name: "Exact", amount: 12.50, want: 1250, wantOK: true},
		{name: "Float drift rounds up", amount: 0.29, want: 29, wantOK: true},
		{name: "Float drift 1.15", amount: 1.15, want: 115, wantOK: true},
		{name: "Sub-cent truncation would lose", amount: 19.999, want: 2000, wantOK: true},
		{name: "Above int64", amount: 1e17, wantOK: false},
		{name: "Far above int64", amount: 1e300, wantOK: false},
		{name: "Below int64", amount: -1e17, wantOK: false},
		{name: "NaN", amount: math.NaN(), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cents, ok := ToCents(tt.amount)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, cents)
		})
	}
}

func TestToCents_RoundTrip(t *testing.T) {
	for _, amount := range []float64{0.01, 0.1, 0.29, 1.005, 12.5, 99.99, 1234.567, 100000.01} {
		cents, ok := ToCents(amount)
		assert.True(t, ok)
		back := FromCents(cents)
		assert.LessOrEqual(t, math.Abs(back-amount), 0.01, "amount %v", amount)
	}
}
