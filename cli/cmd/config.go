package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/malusev998/currency-rates/storage"
)

const envPrefix = "CURRENCY_RATES"

type (
	StorageConfig map[storage.Provider]interface{}
	Settings      struct {
		SourceFile    string
		HTTPAddr      string
		LogLevel      string
		Storage       []storage.Provider
		StorageConfig StorageConfig
	}
)

var ErrSourceNotConfigured = errors.New("source.file is not configured")

// loadSettings reads .env, the config file and the CURRENCY_RATES_* environment, in that order of
// increasing precedence. A missing config file is only an error when it was asked for explicitly.
func loadSettings(ctx context.Context, configFile string, explicit bool) (*Settings, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("migrate", false)
	v.SetDefault("databases.mysql.table", "currency_snapshots")
	v.SetDefault("databases.mongodb.db", "currency")
	v.SetDefault("databases.mongodb.collection", "snapshots")

	absolutePath, err := filepath.Abs(configFile)

	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(absolutePath); err == nil {
		v.SetConfigFile(absolutePath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error while reading config file %s: %w", absolutePath, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", absolutePath, err)
	}

	sourceFile := v.GetString("source.file")

	if sourceFile == "" {
		return nil, ErrSourceNotConfigured
	}

	storages, err := storage.ConvertToProvidersFromStringSlice(v.GetStringSlice("storage"))

	if err != nil {
		return nil, err
	}

	storageBaseConfig := storage.BaseConfig{
		Ctx:     ctx,
		Migrate: v.GetBool("migrate"),
	}

	return &Settings{
		SourceFile: sourceFile,
		HTTPAddr:   v.GetString("http.addr"),
		LogLevel:   v.GetString("log.level"),
		Storage:    storages,
		StorageConfig: StorageConfig{
			storage.MySQL: storage.MySQLConfig{
				BaseConfig: storageBaseConfig,
				ConnectionString: storage.MySQLDSN(
					v.GetString("databases.mysql.user"),
					v.GetString("databases.mysql.password"),
					v.GetString("databases.mysql.addr"),
					v.GetString("databases.mysql.db"),
				),
				TableName: v.GetString("databases.mysql.table"),
			},
			storage.MongoDB: storage.MongoDBConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: v.GetString("databases.mongodb.uri"),
				Database:         v.GetString("databases.mongodb.db"),
				Collection:       v.GetString("databases.mongodb.collection"),
			},
		},
	}, nil
}

func newLogger(w io.Writer, logLevel string, debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	if debug {
		return level.NewFilter(logger, level.AllowDebug())
	}

	switch strings.ToLower(logLevel) {
	case "debug":
		return level.NewFilter(logger, level.AllowDebug())
	case "warn":
		return level.NewFilter(logger, level.AllowWarn())
	case "error":
		return level.NewFilter(logger, level.AllowError())
	}

	return level.NewFilter(logger, level.AllowInfo())
}
