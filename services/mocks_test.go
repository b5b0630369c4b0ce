package services

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/storage"
)

type (
	MockFetcher struct {
		mock.Mock
	}

	// failingStorage wraps memory storage and fails writes of one key.
	failingStorage struct {
		lari.Storage
		failKey string
	}
)

var errWriteFailed = errors.New("disk is full")

func (m *MockFetcher) Fetch(ctx context.Context, date *time.Time) ([]lari.CurrencyRate, error) {
	args := m.Called(ctx, date)

	rates := args.Get(0)
	if rates == nil {
		return nil, args.Error(1)
	}

	return rates.([]lari.CurrencyRate), args.Error(1)
}

func (f failingStorage) Set(ctx context.Context, key, value string) error {
	if key == f.failKey {
		return errWriteFailed
	}

	return f.Storage.Set(ctx, key, value)
}

func newState() State {
	return State{Storage: storage.NewMemoryStorage()}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
