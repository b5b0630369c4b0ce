package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	values := []struct {
		value    string
		expected string
		ok       bool
	}{
		{"10", "10", true},
		{"  10.5", "10.5", true},
		{"12abc", "12", true},
		{"10,5", "10", true},
		{".5", "0.5", true},
		{"+3", "3", true},
		{"10.", "10", true},
		{"1e2", "100", true},
		{"1.5e1", "15", true},
		{"2e", "2", true},
		{"0", "0", false},
		{"0.00", "0", false},
		{"", "0", false},
		{"abc", "0", false},
		{"-5", "0", false},
		{".", "0", false},
		{"1e200000", "0", false},
		{"1e999999999", "0", false},
		{"1e-400", "0", false},
	}

	for _, value := range values {
		amount, ok := ParseAmount(value.value)
		assert.Equal(value.ok, ok, value.value)
		assert.True(decimal.RequireFromString(value.expected).Equal(amount), "%s parsed as %s", value.value, amount)
	}
}

func TestConvert(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	values := []struct {
		amount   string
		rate     float64
		expected string
	}{
		{"10", 1.837, "18.37"},
		{"1", 2.6883, "2.69"},
		{"100", 2.9487, "294.87"},
		{"3.333", 1, "3.34"},
		{"5", 0, "0.00"},
		{"0.01", 0.001, "0.01"},
	}

	for _, value := range values {
		amount, _ := ParseAmount(value.amount)
		converted := Convert(amount, value.rate)

		assert.Equal(value.expected, FormatAmount(converted), "%s x %f", value.amount, value.rate)
		assert.False(converted.IsNegative())
	}
}

func TestConvert_RoundsUp(t *testing.T) {
	t.Parallel()
	assert := require.New(t)

	for i := 1; i <= 200; i++ {
		amount := decimal.New(int64(i), -1)
		exact := amount.Mul(decimal.NewFromFloat(1.2345))
		converted := Convert(amount, 1.2345)

		assert.True(converted.GreaterThanOrEqual(exact))
		assert.True(converted.Sub(exact).LessThan(decimal.New(1, -2)))
		assert.True(converted.Mul(hundred).Equal(converted.Mul(hundred).Truncate(0)))
	}
}
