package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/logger"
)

var (
	ErrEmptyAmount     = errors.New("amount is empty")
	ErrDateNotSelected = errors.New("date is not selected")
	ErrTotalNotSaved   = errors.New("total is not saved")
	ErrHistoryNotSaved = errors.New("history is not saved, total already includes the entry")
)

// saveError keeps the storage cause reachable next to the sentinel.
type saveError struct {
	sentinel error
	cause    error
}

func (e saveError) Error() string {
	return e.sentinel.Error() + ": " + e.cause.Error()
}

func (e saveError) Is(target error) bool {
	return target == e.sentinel
}

func (e saveError) Unwrap() error {
	return e.cause
}

type EarningsService struct {
	State State
	Now   func() time.Time
}

func (e EarningsService) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}

	return e.Now()
}

// Preview converts the amount with the selected currency without saving.
func (e EarningsService) Preview(ctx context.Context, amount string) (decimal.Decimal, error) {
	value, ok := ParseAmount(amount)
	if !ok {
		return decimal.Zero, ErrEmptyAmount
	}

	currency, err := e.State.SelectedCurrency(ctx)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "load currency")
	}

	return Convert(value, currency.Rate), nil
}

// Apply converts the amount, adds it to the total and prepends it to the
// history. The total is written before the history and the two writes are
// independent.
func (e EarningsService) Apply(ctx context.Context, amount string) (lari.HistoryEntry, decimal.Decimal, error) {
	value, ok := ParseAmount(amount)
	if !ok {
		return lari.HistoryEntry{}, decimal.Zero, ErrEmptyAmount
	}

	date, err := e.State.SelectedDate(ctx)
	if err != nil {
		return lari.HistoryEntry{}, decimal.Zero, errors.Wrap(err, "load date")
	}

	if date == nil {
		return lari.HistoryEntry{}, decimal.Zero, ErrDateNotSelected
	}

	currency, err := e.State.SelectedCurrency(ctx)
	if err != nil {
		return lari.HistoryEntry{}, decimal.Zero, errors.Wrap(err, "load currency")
	}

	if currency.IsZero() {
		logger.Warn("applying without a selected currency, rate is zero")
	}

	total, err := e.State.Total(ctx)
	if err != nil {
		return lari.HistoryEntry{}, decimal.Zero, errors.Wrap(err, "load total")
	}

	history, err := e.State.History(ctx)
	if err != nil {
		return lari.HistoryEntry{}, decimal.Zero, errors.Wrap(err, "load history")
	}

	converted := Convert(value, currency.Rate)
	newTotal := total.Add(converted)
	createdAt := e.now()

	entry := lari.HistoryEntry{
		ID:        uuid.NewString(),
		Date:      date.Format(lari.DisplayDateFormat),
		Amount:    amount,
		Code:      currency.Code,
		Converted: FormatAmount(converted),
		CreatedAt: &createdAt,
	}

	if err := e.State.SetTotal(ctx, newTotal); err != nil {
		logger.Error("cannot save total", zap.Error(err))
		return lari.HistoryEntry{}, decimal.Zero, saveError{sentinel: ErrTotalNotSaved, cause: err}
	}

	updated := make([]lari.HistoryEntry, 0, len(history)+1)
	updated = append(updated, entry)
	updated = append(updated, history...)

	if err := e.State.SetHistory(ctx, updated); err != nil {
		logger.Error("cannot save history",
			zap.Error(err),
			zap.String("total", newTotal.String()),
			zap.String("entry", entry.ID),
		)
		return entry, newTotal, saveError{sentinel: ErrHistoryNotSaved, cause: err}
	}

	logger.Info("earning applied",
		zap.String("amount", amount),
		zap.String("code", entry.Code),
		zap.String("converted", entry.Converted),
		zap.String("total", newTotal.String()),
	)

	return entry, newTotal, nil
}

func (e EarningsService) Total(ctx context.Context) (decimal.Decimal, error) {
	return e.State.Total(ctx)
}

func (e EarningsService) History(ctx context.Context) ([]lari.HistoryEntry, error) {
	return e.State.History(ctx)
}

func (e EarningsService) ClearTotal(ctx context.Context) error {
	if err := e.State.SetTotal(ctx, decimal.Zero); err != nil {
		logger.Error("cannot clear total", zap.Error(err))
		return errors.Wrap(err, "clear total")
	}

	logger.Info("total cleared")

	return nil
}

func (e EarningsService) ClearHistory(ctx context.Context) error {
	if err := e.State.SetHistory(ctx, []lari.HistoryEntry{}); err != nil {
		logger.Error("cannot clear history", zap.Error(err))
		return errors.Wrap(err, "clear history")
	}

	logger.Info("history cleared")

	return nil
}
