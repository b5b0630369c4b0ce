package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/storage"
)

func newSQLite(t *testing.T) lari.Storage {
	st, err := storage.NewSQLiteStorage(storage.SQLiteConfig{
		BaseConfig: storage.BaseConfig{
			Ctx:     context.Background(),
			Migrate: true,
		},
		Path: filepath.Join(t.TempDir(), "data", "lari.db"),
	})
	require.NoError(t, err)

	return st
}

func TestSQLiteStorage(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	ctx := context.Background()
	st := newSQLite(t)
	defer st.Close()

	_, err := st.Get(ctx, lari.KeyTotal)
	asserts.True(errors.Is(err, storage.ErrKeyNotFound))

	asserts.NoError(st.Set(ctx, lari.KeyTotal, "18.37"))
	asserts.NoError(st.Set(ctx, lari.KeyTotal, "36.74"))

	value, err := st.Get(ctx, lari.KeyTotal)
	asserts.NoError(err)
	asserts.Equal("36.74", value)

	asserts.NoError(st.Delete(ctx, lari.KeyTotal))
	_, err = st.Get(ctx, lari.KeyTotal)
	asserts.True(errors.Is(err, storage.ErrKeyNotFound))

	asserts.Equal("sqlite", st.GetStorageProviderName())
}

func TestSQLiteStorage_MigrateTwice(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	ctx := context.Background()
	st := newSQLite(t)
	defer st.Close()

	asserts.NoError(st.Migrate())
	asserts.NoError(st.Set(ctx, lari.KeyHistory, "[]"))

	asserts.NoError(st.Drop())
	asserts.NoError(st.Migrate())

	_, err := st.Get(ctx, lari.KeyHistory)
	asserts.True(errors.Is(err, storage.ErrKeyNotFound))
}

func TestSQLiteStorage_EmptyPath(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	st, err := storage.NewSQLiteStorage(storage.SQLiteConfig{})
	asserts.Nil(st)
	asserts.True(errors.Is(err, storage.ErrInvalidConfig))
}
