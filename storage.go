package lari

import "context"

// Keys under which the application state is persisted.
const (
	KeySelectedDate = "selectedDate"
	KeyCurrency     = "currency"
	KeyTotal        = "total"
	KeyHistory      = "history"
)

type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Migrate() error
	Drop() error
	Close() error
	GetStorageProviderName() string
}
