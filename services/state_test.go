package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/malusev998/lari"
)

func TestState_Empty(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	ctx := context.Background()
	state := newState()

	date, err := state.SelectedDate(ctx)
	asserts.NoError(err)
	asserts.Nil(date)

	currency, err := state.SelectedCurrency(ctx)
	asserts.NoError(err)
	asserts.True(currency.IsZero())

	total, err := state.Total(ctx)
	asserts.NoError(err)
	asserts.True(total.IsZero())

	history, err := state.History(ctx)
	asserts.NoError(err)
	asserts.NotNil(history)
	asserts.Empty(history)
}

func TestState_RoundTrip(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	ctx := context.Background()
	state := newState()

	asserts.NoError(state.SetSelectedDate(ctx, day(2024, 1, 5)))
	raw, _ := state.Storage.Get(ctx, lari.KeySelectedDate)
	asserts.Equal("2024-01-05", raw)

	date, err := state.SelectedDate(ctx)
	asserts.NoError(err)
	asserts.Equal(day(2024, 1, 5), *date)

	asserts.NoError(state.SetSelectedCurrency(ctx, lari.CurrencyRate{Code: "USD", Rate: 2.6883}))
	raw, _ = state.Storage.Get(ctx, lari.KeyCurrency)
	asserts.JSONEq(`{"code":"USD","rate":2.6883}`, raw)

	asserts.NoError(state.SetTotal(ctx, decimal.RequireFromString("18.37")))
	raw, _ = state.Storage.Get(ctx, lari.KeyTotal)
	asserts.Equal("18.37", raw)

	asserts.NoError(state.SetHistory(ctx, nil))
	raw, _ = state.Storage.Get(ctx, lari.KeyHistory)
	asserts.Equal("[]", raw)

	asserts.NoError(state.ClearSelectedDate(ctx))
	date, err = state.SelectedDate(ctx)
	asserts.NoError(err)
	asserts.Nil(date)
}

func TestState_LegacyValues(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	ctx := context.Background()
	state := newState()

	_ = state.Storage.Set(ctx, lari.KeyHistory, `[{"date":"05.01.2024","amount":"10","code":"USD","converted":"26.89"}]`)
	_ = state.Storage.Set(ctx, lari.KeyTotal, "26.89")
	_ = state.Storage.Set(ctx, lari.KeyCurrency, `{"code":"EUR","quantity":1,"rateFormated":"2.9487","rate":2.9487,"name":"Euro"}`)

	history, err := state.History(ctx)
	asserts.NoError(err)
	asserts.Len(history, 1)
	asserts.Equal("26.89", history[0].Converted)
	asserts.Empty(history[0].ID)
	asserts.Nil(history[0].CreatedAt)

	total, _ := state.Total(ctx)
	asserts.Equal("26.89", total.String())

	currency, _ := state.SelectedCurrency(ctx)
	asserts.Equal("EUR", currency.Code)
	asserts.Equal(2.9487, currency.Rate)
}

func TestState_CorruptValues(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	ctx := context.Background()
	state := newState()

	_ = state.Storage.Set(ctx, lari.KeySelectedDate, "yesterday")
	_ = state.Storage.Set(ctx, lari.KeyCurrency, "{")
	_ = state.Storage.Set(ctx, lari.KeyTotal, "NaN")
	_ = state.Storage.Set(ctx, lari.KeyHistory, "null")

	date, err := state.SelectedDate(ctx)
	asserts.NoError(err)
	asserts.Nil(date)

	currency, err := state.SelectedCurrency(ctx)
	asserts.NoError(err)
	asserts.True(currency.IsZero())

	total, err := state.Total(ctx)
	asserts.NoError(err)
	asserts.True(total.IsZero())

	history, err := state.History(ctx)
	asserts.NoError(err)
	asserts.NotNil(history)
	asserts.Empty(history)
}
