package lari

import (
	"context"
	"strings"
	"time"
)

// PreferredCurrencies are listed before every other currency.
var PreferredCurrencies = []string{"USD", "EUR"}

type (
	// Fetcher returns the rates published for the given date.
	// A nil date asks the feed for the latest published rates.
	Fetcher interface {
		Fetch(ctx context.Context, date *time.Time) ([]CurrencyRate, error)
	}
)

// FindRate looks the code up case-insensitively.
func FindRate(rates []CurrencyRate, code string) (CurrencyRate, bool) {
	for _, rate := range rates {
		if strings.EqualFold(rate.Code, code) {
			return rate, true
		}
	}

	return CurrencyRate{}, false
}
