package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	currencyRates "github.com/malusev998/currency-rates"
)

type (
	Provider   string
	BaseConfig struct {
		Ctx     context.Context
		Migrate bool
	}
	MySQLConfig struct {
		BaseConfig
		ConnectionString string
		TableName        string
		IDGenerator      IDGenerator
	}
	MongoDBConfig struct {
		BaseConfig
		ConnectionString string
		Database         string
		Collection       string
	}
)

const (
	MySQL   Provider = "mysql"
	MongoDB Provider = "mongodb"
)

var (
	ErrStorageNotFound  = errors.New("storage is not found")
	ErrUnknownProvider  = errors.New("value is not a valid storage provider")
	ErrDuplicateStorage = errors.New("storage is configured more than once")
	ErrInvalidPage      = errors.New("page and per page must be at least 1")
)

// ConvertToProvidersFromStringSlice parses a configured storage list. Each provider may appear once:
// export results are keyed by provider name.
func ConvertToProvidersFromStringSlice(values []string) ([]Provider, error) {
	providers := make([]Provider, 0, len(values))
	seen := make(map[Provider]struct{}, len(values))

	for _, value := range values {
		provider, err := ConvertToProviderFromString(value)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[provider]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStorage, provider)
		}

		seen[provider] = struct{}{}
		providers = append(providers, provider)
	}

	return providers, nil
}

func ConvertToProviderFromString(value string) (Provider, error) {
	switch provider := Provider(strings.ToLower(strings.TrimSpace(value))); provider {
	case MySQL, MongoDB:
		return provider, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, value)
}

func NewStorage(provider Provider, config interface{}) (currencyRates.Storage, error) {
	switch provider {
	case MySQL:
		c, ok := config.(MySQLConfig)
		if !ok {
			return nil, fmt.Errorf("mysql storage needs MySQLConfig, got %T", config)
		}
		return NewMySQLStorage(c)
	case MongoDB:
		c, ok := config.(MongoDBConfig)
		if !ok {
			return nil, fmt.Errorf("mongodb storage needs MongoDBConfig, got %T", config)
		}
		return NewMongoStorage(c)
	}

	return nil, ErrStorageNotFound
}

// ValidatePage checks history pagination arguments. Pages start at 1.
func ValidatePage(page, perPage int64) error {
	if page < 1 || perPage < 1 {
		return fmt.Errorf("%w: page %d, per page %d", ErrInvalidPage, page, perPage)
	}

	return nil
}

func offset(page, perPage int64) int64 {
	return (page - 1) * perPage
}
