package storage

import (
	"context"

	"github.com/pkg/errors"

	"github.com/malusev998/lari"
)

const DefaultTableName = "lari_kv"

type (
	BaseConfig struct {
		Ctx     context.Context
		Migrate bool
	}
	SQLiteConfig struct {
		BaseConfig
		Path string
	}
	MySQLConfig struct {
		BaseConfig
		ConnectionString string
		TableName        string
	}
	MongoDBConfig struct {
		BaseConfig
		ConnectionString string
		Database         string
		Collection       string
	}
	MemoryConfig struct {
		BaseConfig
	}
)

var (
	ErrStorageNotFound = errors.New("storage is not found")
	ErrKeyNotFound     = errors.New("key is not found")
	ErrInvalidConfig   = errors.New("invalid storage config")
)

func NewStorage(provider lari.Provider, config interface{}) (lari.Storage, error) {
	switch provider {
	case lari.SQLiteProvider:
		c, ok := config.(SQLiteConfig)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidConfig, "expected SQLiteConfig, got %T", config)
		}
		return NewSQLiteStorage(c)
	case lari.MySQLProvider:
		c, ok := config.(MySQLConfig)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidConfig, "expected MySQLConfig, got %T", config)
		}
		return NewMySQLStorage(c)
	case lari.MongoDBProvider:
		c, ok := config.(MongoDBConfig)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidConfig, "expected MongoDBConfig, got %T", config)
		}
		return NewMongoStorage(c)
	case lari.MemoryProvider:
		return NewMemoryStorage(), nil
	}

	return nil, ErrStorageNotFound
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}

	return ctx
}
