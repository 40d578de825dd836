package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.56", Currency(1234.56))
	assert.Equal(t, "$0.50", Currency(0.5))
	assert.Equal(t, "-$1,000,000.00", Currency(-1e6))
	assert.Equal(t, "N/A", Currency(math.NaN()))
}

func TestLargeNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.95e12, "2.95T"},
		{1.5e9, "1.50B"},
		{12_345_678, "12.35M"},
		{1000, "1.00K"},
		{999.999, "1000.00"},
		{42, "42.00"},
		{-3.2e9, "-3.20B"},
		{math.Inf(1), "N/A"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LargeNumber(tt.in))
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "1.23%", Percentage(1.2345))
	assert.Equal(t, "-0.50%", Percentage(-0.5))
}

func TestVolume(t *testing.T) {
	assert.Equal(t, "52,164,500", Volume(52164500))
	assert.Equal(t, "0", Volume(0))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "Jan 15, 2024", Date("2024-01-15"))
	assert.Equal(t, "Mar 1, 2023", Date("2023-03-01 16:00:00"))
	assert.Equal(t, "soon", Date("soon"))
	assert.Equal(t, "2024-13-45", Date("2024-13-45"))
}
