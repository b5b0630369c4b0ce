package services

import (
	"context"
	"strings"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/logger"
)

var ErrCurrencyNotFound = errors.New("currency is not published for the selected date")

// RateService fetches rates for the selected date and keeps the selected
// currency in step with them.
type RateService struct {
	Fetcher   lari.Fetcher
	State     State
	Preferred []string
}

// Reorder puts the preferred codes first. Both groups keep source order.
func Reorder(rates []lari.CurrencyRate, preferred []string) []lari.CurrencyRate {
	first := make([]lari.CurrencyRate, 0, len(preferred))
	rest := make([]lari.CurrencyRate, 0, len(rates))

	for _, rate := range rates {
		if isPreferred(rate.Code, preferred) {
			first = append(first, rate)
		} else {
			rest = append(rest, rate)
		}
	}

	return append(first, rest...)
}

func isPreferred(code string, preferred []string) bool {
	for _, p := range preferred {
		if strings.EqualFold(code, p) {
			return true
		}
	}

	return false
}

func (r RateService) preferred() []string {
	if r.Preferred == nil {
		return lari.PreferredCurrencies
	}

	return r.Preferred
}

func (r RateService) fetch(ctx context.Context, date *time.Time) ([]lari.CurrencyRate, error) {
	rates, err := r.Fetcher.Fetch(ctx, date)

	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		if date != nil {
			fields = append(fields, zap.String("date", date.Format(lari.DateFormat)))
		}

		logger.Error("cannot fetch rates", fields...)

		return nil, err
	}

	return Reorder(rates, r.preferred()), nil
}

// RatesOn fetches the rates for any date without touching the saved state.
func (r RateService) RatesOn(ctx context.Context, date *time.Time) ([]lari.CurrencyRate, error) {
	return r.fetch(ctx, date)
}

// Rates fetches the rates for the selected date. A selected currency that
// appears in the result is refreshed with the new rate; one that does not is
// left as it was.
func (r RateService) Rates(ctx context.Context) ([]lari.CurrencyRate, error) {
	date, err := r.State.SelectedDate(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load selected date")
	}

	rates, err := r.fetch(ctx, date)
	if err != nil {
		return nil, err
	}

	selected, err := r.State.SelectedCurrency(ctx)
	if err != nil {
		logger.Error("cannot load selected currency", zap.Error(err))
		return rates, nil
	}

	if selected.IsZero() {
		return rates, nil
	}

	fresh, ok := lari.FindRate(rates, selected.Code)
	if !ok {
		logger.Debug("selected currency is missing from rates", zap.String("code", selected.Code))
		return rates, nil
	}

	if fresh != selected {
		if err := r.State.SetSelectedCurrency(ctx, fresh); err != nil {
			logger.Error("cannot save refreshed currency", zap.Error(err), zap.String("code", fresh.Code))
		}
	}

	return rates, nil
}

func (r RateService) SelectCurrency(ctx context.Context, code string) (lari.CurrencyRate, error) {
	rates, err := r.Rates(ctx)
	if err != nil {
		return lari.CurrencyRate{}, err
	}

	selected, ok := lari.FindRate(rates, code)
	if !ok {
		return lari.CurrencyRate{}, errors.Wrapf(ErrCurrencyNotFound, "code %s", strings.ToUpper(code))
	}

	if err := r.State.SetSelectedCurrency(ctx, selected); err != nil {
		logger.Error("cannot save currency", zap.Error(err), zap.String("code", selected.Code))
		return lari.CurrencyRate{}, errors.Wrap(err, "save currency")
	}

	logger.Info("currency selected", zap.String("code", selected.Code), zap.Float64("rate", selected.Rate))

	return selected, nil
}

func (r RateService) SelectedCurrency(ctx context.Context) (lari.CurrencyRate, error) {
	return r.State.SelectedCurrency(ctx)
}

// SelectDate stores the calendar day of date.
func (r RateService) SelectDate(ctx context.Context, date time.Time) (time.Time, error) {
	day := now.With(date).BeginningOfDay()

	if err := r.State.SetSelectedDate(ctx, day); err != nil {
		logger.Error("cannot save date", zap.Error(err))
		return time.Time{}, errors.Wrap(err, "save date")
	}

	logger.Info("date selected", zap.String("date", day.Format(lari.DateFormat)))

	return day, nil
}

func (r RateService) SelectedDate(ctx context.Context) (*time.Time, error) {
	return r.State.SelectedDate(ctx)
}

func (r RateService) ClearDate(ctx context.Context) error {
	return errors.Wrap(r.State.ClearSelectedDate(ctx), "clear date")
}
