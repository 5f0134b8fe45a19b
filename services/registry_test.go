package services

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"

	currencyRates "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/table"
)

const registryCSV = `Record Date,Country - Currency Description,Exchange Rate,Effective Date
2025-12-31,Euro Zone-Euro,0.851,2025-12-31
2025-12-31,United Kingdom-Pound,0.79,2025-12-31`

func treasuryBuild(raw string) *currencyRates.Table {
	return table.Build(raw, fixtureMapping())
}

func TestRegistry_BuildsOnce(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	var calls int32
	registry := NewRegistry(func() (string, error) {
		atomic.AddInt32(&calls, 1)
		return registryCSV, nil
	}, treasuryBuild, log.NewNopLogger())

	var wg sync.WaitGroup
	tables := make([]*currencyRates.Table, 16)

	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i], _ = registry.Table()
		}(i)
	}

	wg.Wait()

	asserts.Equal(int32(1), atomic.LoadInt32(&calls))

	for _, tb := range tables {
		asserts.Same(tables[0], tb)
	}

	eur, ok := tables[0].Get("EUR")
	asserts.True(ok)
	asserts.Equal(0.851, eur.RateToUSD)
}

func TestRegistry_LoaderError(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)
	loadErr := errors.New("file not found")

	registry := NewRegistry(func() (string, error) {
		return "", loadErr
	}, treasuryBuild, nil)

	tb, err := registry.Table()
	asserts.Nil(tb)
	asserts.True(errors.Is(err, loadErr))
	asserts.Equal(currencyRates.KindInternal, currencyRates.KindOf(err))

	_, err = registry.Refresh()
	asserts.True(errors.Is(err, loadErr))

	registry.Reload(registryCSV)
	tb, err = registry.Table()
	asserts.Nil(err)
	asserts.Equal(3, tb.Len())
}

func TestRegistry_ReloadAndRefresh(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	raw := registryCSV
	registry := NewRegistry(func() (string, error) {
		return raw, nil
	}, treasuryBuild, log.NewNopLogger())

	first, err := registry.Table()
	asserts.Nil(err)

	reloaded := registry.Reload(registryCSV + "\n2026-01-15,Japan-Yen,157.5,2026-01-15")
	asserts.NotSame(first, reloaded)

	current, err := registry.Table()
	asserts.Nil(err)
	asserts.Same(reloaded, current)
	asserts.Equal("2026-01-15", current.LastUpdated())

	_, ok := first.Get("JPY")
	asserts.False(ok)

	raw = registryCSV + "\n2026-02-01,Canada-Dollar,1.369,2026-02-01"
	refreshed, err := registry.Refresh()
	asserts.Nil(err)
	_, ok = refreshed.Get("CAD")
	asserts.True(ok)
	_, ok = refreshed.Get("JPY")
	asserts.False(ok)
}

func TestResolverService(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	service := ResolverService{Tables: staticTables{table: fixtureTable()}, Mapping: fixtureMapping()}

	rate, err := service.LookupRate("USD", "EUR")
	asserts.Nil(err)
	asserts.Equal(0.851, rate.Rate)

	conversion, err := service.Convert("USD", "EUR", "100")
	asserts.Nil(err)
	asserts.Equal(85.1, conversion.ConvertedAmount)

	rates, err := service.Rebase("")
	asserts.Nil(err)
	asserts.Equal("USD", rates.Base)

	detail, err := service.CurrencyDetail("gbp")
	asserts.Nil(err)
	asserts.Equal("United Kingdom-Pound", detail.Name)

	batch, err := service.BatchConvert("USD", "EUR", []string{"1", "2"})
	asserts.Nil(err)
	asserts.Len(batch.Conversions, 2)

	currencies, err := service.Currencies()
	asserts.Nil(err)
	asserts.Len(currencies, 6)

	failing := ResolverService{Tables: staticTables{err: errors.New("boom")}, Mapping: fixtureMapping()}
	_, err = failing.LookupRate("USD", "EUR")
	asserts.Equal(currencyRates.KindInternal, currencyRates.KindOf(err))
	_, err = failing.Currencies()
	asserts.NotNil(err)
}
