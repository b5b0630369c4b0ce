package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// longest numeric prefix, the same one a browser's parseFloat accepts
	amountPrefix = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
)

// ParseAmount reads the leading number of the input. It reports false when
// there is no number, the number is not positive or it does not fit a
// float64, which callers treat as "nothing entered".
func ParseAmount(amount string) (decimal.Decimal, bool) {
	match := amountPrefix.FindString(strings.TrimSpace(amount))
	if match == "" {
		return decimal.Zero, false
	}

	match = strings.TrimPrefix(match, "+")
	match = strings.Replace(match, ".e", "e", 1)
	match = strings.Replace(match, ".E", "E", 1)
	match = strings.TrimSuffix(match, ".")

	float, err := strconv.ParseFloat(match, 64)
	if err != nil || float <= 0 || math.IsInf(float, 0) {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(match)
	if err != nil || !value.IsPositive() {
		return decimal.Zero, false
	}

	return value, true
}

// Convert multiplies and rounds up to the next tetri.
func Convert(amount decimal.Decimal, rate float64) decimal.Decimal {
	rateDecimal := decimal.NewFromFloat(rate)

	return amount.Mul(rateDecimal).Mul(hundred).Ceil().Div(hundred)
}

// FormatAmount renders a GEL amount with two decimals.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
