package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/malusev998/lari"
)

type Dialect string

const (
	DialectMySQL  Dialect = "mysql"
	DialectSQLite Dialect = "sqlite"
)

const (
	keyColumn       = "item_key"
	valueColumn     = "item_value"
	updatedAtColumn = "updated_at"
	migrationsTable = "schema_migrations"
)

type sqlStorage struct {
	ctx       context.Context
	db        *sql.DB
	dialect   Dialect
	tableName string
	migrate   func() error
}

func NewSQLStorage(ctx context.Context, db *sql.DB, dialect Dialect, tableName string, migrate bool) (lari.Storage, error) {
	if tableName == "" {
		tableName = DefaultTableName
	}

	if dialect == "" {
		dialect = DialectMySQL
	}

	s := &sqlStorage{
		ctx:       contextOrBackground(ctx),
		db:        db,
		dialect:   dialect,
		tableName: tableName,
	}
	s.migrate = s.createTable

	if migrate {
		if err := s.Migrate(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *sqlStorage) upsertSuffix() string {
	if s.dialect == DialectSQLite {
		return fmt.Sprintf(
			"ON CONFLICT(%[1]s) DO UPDATE SET %[2]s = excluded.%[2]s, %[3]s = excluded.%[3]s",
			keyColumn, valueColumn, updatedAtColumn,
		)
	}

	return fmt.Sprintf(
		"ON DUPLICATE KEY UPDATE %[1]s = VALUES(%[1]s), %[2]s = VALUES(%[2]s)",
		valueColumn, updatedAtColumn,
	)
}

func (s *sqlStorage) createTable() error {
	valueType := "LONGTEXT"
	keyType := "VARCHAR(64)"

	if s.dialect == DialectSQLite {
		valueType = "TEXT"
		keyType = "TEXT"
	}

	query := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s(%s %s NOT NULL PRIMARY KEY, %s %s NOT NULL, %s DATETIME NOT NULL);",
		s.tableName, keyColumn, keyType, valueColumn, valueType, updatedAtColumn,
	)

	_, err := s.db.ExecContext(s.ctx, query)

	return errors.Wrapf(err, "create table %s", s.tableName)
}

func (s *sqlStorage) Get(ctx context.Context, key string) (string, error) {
	query := sq.Select(valueColumn).
		From(s.tableName).
		Where(sq.Eq{keyColumn: key}).
		Limit(1)

	var value string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}

	if err != nil {
		return "", errors.Wrapf(err, "get %s", key)
	}

	return value, nil
}

func (s *sqlStorage) Set(ctx context.Context, key, value string) error {
	query := sq.Insert(s.tableName).
		Columns(keyColumn, valueColumn, updatedAtColumn).
		Values(key, value, time.Now().UTC()).
		Suffix(s.upsertSuffix())

	_, err := query.RunWith(s.db).ExecContext(ctx)

	return errors.Wrapf(err, "set %s", key)
}

func (s *sqlStorage) Delete(ctx context.Context, key string) error {
	query := sq.Delete(s.tableName).Where(sq.Eq{keyColumn: key})

	_, err := query.RunWith(s.db).ExecContext(ctx)

	return errors.Wrapf(err, "delete %s", key)
}

func (s *sqlStorage) Migrate() error {
	return s.migrate()
}

func (s *sqlStorage) Drop() error {
	tables := []string{s.tableName}

	// the migration version has to go too, otherwise Migrate is a no-op afterwards
	if s.dialect == DialectSQLite {
		tables = append(tables, migrationsTable)
	}

	for _, table := range tables {
		if _, err := s.db.ExecContext(s.ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", table)); err != nil {
			return errors.Wrapf(err, "drop table %s", table)
		}
	}

	return nil
}

func (s *sqlStorage) Close() error {
	return s.db.Close()
}

func (s *sqlStorage) GetStorageProviderName() string {
	return string(s.dialect)
}
