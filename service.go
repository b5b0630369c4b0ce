package lari

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type (
	RateService interface {
		Rates(ctx context.Context) ([]CurrencyRate, error)
		RatesOn(ctx context.Context, date *time.Time) ([]CurrencyRate, error)
		SelectCurrency(ctx context.Context, code string) (CurrencyRate, error)
		SelectedCurrency(ctx context.Context) (CurrencyRate, error)
		SelectDate(ctx context.Context, date time.Time) (time.Time, error)
		SelectedDate(ctx context.Context) (*time.Time, error)
		ClearDate(ctx context.Context) error
	}

	EarningsService interface {
		Preview(ctx context.Context, amount string) (decimal.Decimal, error)
		Apply(ctx context.Context, amount string) (HistoryEntry, decimal.Decimal, error)
		Total(ctx context.Context) (decimal.Decimal, error)
		History(ctx context.Context) ([]HistoryEntry, error)
		ClearTotal(ctx context.Context) error
		ClearHistory(ctx context.Context) error
	}
)
