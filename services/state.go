package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/logger"
	"github.com/malusev998/lari/storage"
)

// State gives typed access to the four persisted values. Missing keys read
// as zero values; values that cannot be decoded are logged and treated as
// missing.
type State struct {
	Storage lari.Storage
}

func (s State) get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.Storage.Get(ctx, key)

	if errors.Is(err, storage.ErrKeyNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

func (s State) SelectedDate(ctx context.Context) (*time.Time, error) {
	value, ok, err := s.get(ctx, lari.KeySelectedDate)
	if err != nil || !ok {
		return nil, err
	}

	date, err := time.Parse(lari.DateFormat, value)
	if err != nil {
		logger.Warn("stored date is corrupt", zap.String("value", value), zap.Error(err))
		return nil, nil
	}

	return &date, nil
}

func (s State) SetSelectedDate(ctx context.Context, date time.Time) error {
	return s.Storage.Set(ctx, lari.KeySelectedDate, date.Format(lari.DateFormat))
}

func (s State) ClearSelectedDate(ctx context.Context) error {
	return s.Storage.Delete(ctx, lari.KeySelectedDate)
}

func (s State) SelectedCurrency(ctx context.Context) (lari.CurrencyRate, error) {
	value, ok, err := s.get(ctx, lari.KeyCurrency)
	if err != nil || !ok {
		return lari.CurrencyRate{}, err
	}

	var currency lari.CurrencyRate
	if err := json.Unmarshal([]byte(value), &currency); err != nil {
		logger.Warn("stored currency is corrupt", zap.String("value", value), zap.Error(err))
		return lari.CurrencyRate{}, nil
	}

	return currency, nil
}

func (s State) SetSelectedCurrency(ctx context.Context, currency lari.CurrencyRate) error {
	data, err := json.Marshal(currency)
	if err != nil {
		return errors.Wrap(err, "marshal currency")
	}

	return s.Storage.Set(ctx, lari.KeyCurrency, string(data))
}

func (s State) Total(ctx context.Context) (decimal.Decimal, error) {
	value, ok, err := s.get(ctx, lari.KeyTotal)
	if err != nil || !ok {
		return decimal.Zero, err
	}

	total, err := decimal.NewFromString(value)
	if err != nil {
		logger.Warn("stored total is corrupt", zap.String("value", value), zap.Error(err))
		return decimal.Zero, nil
	}

	return total, nil
}

func (s State) SetTotal(ctx context.Context, total decimal.Decimal) error {
	return s.Storage.Set(ctx, lari.KeyTotal, total.String())
}

func (s State) History(ctx context.Context) ([]lari.HistoryEntry, error) {
	value, ok, err := s.get(ctx, lari.KeyHistory)
	if err != nil || !ok {
		return []lari.HistoryEntry{}, err
	}

	history := make([]lari.HistoryEntry, 0)
	if err := json.Unmarshal([]byte(value), &history); err != nil {
		logger.Warn("stored history is corrupt", zap.Error(err))
		return []lari.HistoryEntry{}, nil
	}

	if history == nil {
		return []lari.HistoryEntry{}, nil
	}

	return history, nil
}

func (s State) SetHistory(ctx context.Context, history []lari.HistoryEntry) error {
	if history == nil {
		history = []lari.HistoryEntry{}
	}

	data, err := json.Marshal(history)
	if err != nil {
		return errors.Wrap(err, "marshal history")
	}

	return s.Storage.Set(ctx, lari.KeyHistory, string(data))
}
