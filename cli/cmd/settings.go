package cmd

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/fetchers"
	"github.com/malusev998/lari/logger"
	"github.com/malusev998/lari/storage"
)

const envPrefix = "LARI"

type (
	SQLiteSettings struct {
		Path string `mapstructure:"path" yaml:"path"`
	}

	MySQLSettings struct {
		User     string `mapstructure:"user" yaml:"user"`
		Password string `mapstructure:"password" yaml:"password"`
		Addr     string `mapstructure:"addr" yaml:"addr"`
		DB       string `mapstructure:"db" yaml:"db"`
		Table    string `mapstructure:"table" yaml:"table"`
	}

	MongoDBSettings struct {
		URI        string `mapstructure:"uri" yaml:"uri"`
		Database   string `mapstructure:"database" yaml:"database"`
		Collection string `mapstructure:"collection" yaml:"collection"`
	}

	DatabasesSettings struct {
		SQLite  SQLiteSettings  `mapstructure:"sqlite" yaml:"sqlite"`
		MySQL   MySQLSettings   `mapstructure:"mysql" yaml:"mysql"`
		MongoDB MongoDBSettings `mapstructure:"mongodb" yaml:"mongodb"`
	}

	FetcherSettings struct {
		URL     string `mapstructure:"url" yaml:"url"`
		Timeout string `mapstructure:"timeout" yaml:"timeout"`
	}

	LogSettings struct {
		Env string `mapstructure:"env" yaml:"env"`
	}

	Settings struct {
		Storage   lari.Provider     `mapstructure:"storage" yaml:"storage"`
		Migrate   bool              `mapstructure:"migrate" yaml:"migrate"`
		Databases DatabasesSettings `mapstructure:"databases" yaml:"databases"`
		Fetcher   FetcherSettings   `mapstructure:"fetcher" yaml:"fetcher"`
		Preferred []string          `mapstructure:"preferred" yaml:"preferred"`
		Log       LogSettings       `mapstructure:"log" yaml:"log"`
	}
)

func DefaultSettings() Settings {
	return Settings{
		Storage: lari.SQLiteProvider,
		Migrate: true,
		Databases: DatabasesSettings{
			SQLite: SQLiteSettings{Path: "./data/lari.db"},
			MySQL: MySQLSettings{
				User:  "lari",
				Addr:  "localhost:3306",
				DB:    "laridb",
				Table: storage.DefaultTableName,
			},
			MongoDB: MongoDBSettings{
				URI:        "mongodb://localhost:27017",
				Database:   "lari",
				Collection: "state",
			},
		},
		Fetcher: FetcherSettings{
			URL:     fetchers.NBGURL,
			Timeout: fetchers.DefaultTimeout.String(),
		},
		Preferred: lari.PreferredCurrencies,
		Log:       LogSettings{Env: logger.EnvProd},
	}
}

func setDefaults(v *viper.Viper, settings Settings) {
	v.SetDefault("storage", string(settings.Storage))
	v.SetDefault("migrate", settings.Migrate)
	v.SetDefault("databases.sqlite.path", settings.Databases.SQLite.Path)
	v.SetDefault("databases.mysql.user", settings.Databases.MySQL.User)
	v.SetDefault("databases.mysql.password", settings.Databases.MySQL.Password)
	v.SetDefault("databases.mysql.addr", settings.Databases.MySQL.Addr)
	v.SetDefault("databases.mysql.db", settings.Databases.MySQL.DB)
	v.SetDefault("databases.mysql.table", settings.Databases.MySQL.Table)
	v.SetDefault("databases.mongodb.uri", settings.Databases.MongoDB.URI)
	v.SetDefault("databases.mongodb.database", settings.Databases.MongoDB.Database)
	v.SetDefault("databases.mongodb.collection", settings.Databases.MongoDB.Collection)
	v.SetDefault("fetcher.url", settings.Fetcher.URL)
	v.SetDefault("fetcher.timeout", settings.Fetcher.Timeout)
	v.SetDefault("preferred", settings.Preferred)
	v.SetDefault("log.env", settings.Log.Env)
}

// LoadSettings reads the config file, the .env file and LARI_* variables,
// in increasing priority. A missing config file is not an error.
func LoadSettings(configFile string) (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, DefaultSettings())

	if configFile != "" {
		absolutePath, err := filepath.Abs(configFile)
		if err != nil {
			return nil, errors.Wrap(err, "config path")
		}

		v.SetConfigFile(absolutePath)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, "error while reading in the config file")
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, errors.Wrap(err, "error while parsing config")
	}

	provider, err := lari.ConvertToProviderFromString(string(settings.Storage))
	if err != nil {
		return nil, err
	}

	settings.Storage = provider

	return settings, nil
}

func (f FetcherSettings) timeout() (time.Duration, error) {
	if f.Timeout == "" {
		return fetchers.DefaultTimeout, nil
	}

	timeout, err := time.ParseDuration(f.Timeout)
	if err != nil {
		return 0, errors.Wrapf(err, "error while parsing fetcher.timeout %q", f.Timeout)
	}

	return timeout, nil
}

func (s Settings) storageConfig(ctx context.Context) (interface{}, error) {
	base := storage.BaseConfig{
		Ctx:     ctx,
		Migrate: s.Migrate,
	}

	switch s.Storage {
	case lari.SQLiteProvider:
		return storage.SQLiteConfig{
			BaseConfig: base,
			Path:       s.Databases.SQLite.Path,
		}, nil
	case lari.MySQLProvider:
		mysql := s.Databases.MySQL
		return storage.MySQLConfig{
			BaseConfig:       base,
			ConnectionString: storage.MySQLConnectionString(mysql.User, mysql.Password, mysql.Addr, mysql.DB),
			TableName:        mysql.Table,
		}, nil
	case lari.MongoDBProvider:
		mongo := s.Databases.MongoDB
		return storage.MongoDBConfig{
			BaseConfig:       base,
			ConnectionString: mongo.URI,
			Database:         mongo.Database,
			Collection:       mongo.Collection,
		}, nil
	case lari.MemoryProvider:
		return storage.MemoryConfig{BaseConfig: base}, nil
	}

	return nil, errors.Wrapf(storage.ErrStorageNotFound, "storage %s", s.Storage)
}
