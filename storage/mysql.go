package storage

import (
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"github.com/malusev998/lari"
)

// MySQLConnectionString builds a DSN the same way for the CLI and the tests.
func MySQLConnectionString(user, password, addr, database string) string {
	mysqlDriverConfig := mysql.NewConfig()
	mysqlDriverConfig.User = user
	mysqlDriverConfig.Passwd = password
	mysqlDriverConfig.Addr = addr
	mysqlDriverConfig.Net = "tcp"
	mysqlDriverConfig.DBName = database
	mysqlDriverConfig.ParseTime = true

	return mysqlDriverConfig.FormatDSN()
}

func NewMySQLStorage(config MySQLConfig) (lari.Storage, error) {
	db, err := sql.Open("mysql", config.ConnectionString)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to mysql")
	}

	ctx := contextOrBackground(config.Ctx)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "cannot connect to mysql")
	}

	st, err := NewSQLStorage(ctx, db, DialectMySQL, config.TableName, config.Migrate)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return st, nil
}
