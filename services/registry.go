package services

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	currencyRates "github.com/malusev998/currency-rates"
)

type (
	// Loader returns the raw rate table text.
	Loader func() (string, error)

	// BuildFunc turns raw rate table text into a table.
	BuildFunc func(raw string) *currencyRates.Table

	// TableSource hands out the current table. Implementations must be safe for concurrent use.
	TableSource interface {
		Table() (*currencyRates.Table, error)
	}

	// Registry caches the built table for the process lifetime. The first call to Table
	// builds it from the loader exactly once; Reload and Refresh swap in a new table
	// atomically so readers never observe a partially built one.
	Registry struct {
		loader Loader
		build  BuildFunc
		logger log.Logger

		once  sync.Once
		table atomic.Pointer[currencyRates.Table]
		err   error
	}
)

func NewRegistry(loader Loader, build BuildFunc, logger log.Logger) *Registry {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Registry{
		loader: loader,
		build:  build,
		logger: logger,
	}
}

func (r *Registry) Table() (*currencyRates.Table, error) {
	if t := r.table.Load(); t != nil {
		return t, nil
	}

	r.once.Do(func() {
		raw, err := r.loader()

		if err != nil {
			r.err = fmt.Errorf("loading rate table: %w", err)
			level.Error(r.logger).Log("msg", "initial load failed", "err", err)
			return
		}

		t := r.build(raw)

		// a concurrent Reload wins over the initial load
		if r.table.CompareAndSwap(nil, t) {
			r.logLoaded("initial", t)
		}
	})

	if t := r.table.Load(); t != nil {
		return t, nil
	}

	return nil, r.err
}

// Reload builds a table from raw and makes it current.
func (r *Registry) Reload(raw string) *currencyRates.Table {
	t := r.build(raw)
	r.table.Store(t)
	r.logLoaded("reload", t)

	return t
}

// Refresh runs the loader again and reloads. On error the current table stays in place.
func (r *Registry) Refresh() (*currencyRates.Table, error) {
	raw, err := r.loader()

	if err != nil {
		level.Error(r.logger).Log("msg", "refresh failed", "err", err)
		return nil, fmt.Errorf("refreshing rate table: %w", err)
	}

	return r.Reload(raw), nil
}

func (r *Registry) logLoaded(reason string, t *currencyRates.Table) {
	level.Info(r.logger).Log(
		"msg", "rate table loaded",
		"reason", reason,
		"currencies", t.Len(),
		"last_updated", t.LastUpdated(),
	)
}
