package storage

import (
	"database/sql"
	"embed"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"

	"github.com/malusev998/lari"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func NewSQLiteStorage(config SQLiteConfig) (lari.Storage, error) {
	if config.Path == "" {
		return nil, errors.Wrap(ErrInvalidConfig, "sqlite path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(config.Path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create db directory")
	}

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite database")
	}

	ctx := contextOrBackground(config.Ctx)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite database")
	}

	st := &sqlStorage{
		ctx:       ctx,
		db:        db,
		dialect:   DialectSQLite,
		tableName: DefaultTableName,
		migrate: func() error {
			return runSQLiteMigrations(config.Path)
		},
	}

	if config.Migrate {
		if err := st.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return st, nil
}

// runSQLiteMigrations uses its own connection because the migrate driver
// closes the database it was given.
func runSQLiteMigrations(path string) error {
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return errors.Wrap(err, "open migration database")
	}
	defer migrateDB.Close()

	driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	if err != nil {
		return errors.Wrap(err, "create sqlite driver")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "create iofs source")
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "run migrations")
	}

	return nil
}
