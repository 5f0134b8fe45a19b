package services

import (
	currencyRates "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/mapping"
)

type staticTables struct {
	table *currencyRates.Table
	err   error
}

func (s staticTables) Table() (*currencyRates.Table, error) {
	return s.table, s.err
}

func fixtureTable() *currencyRates.Table {
	return currencyRates.NewTable(map[string]currencyRates.RateRecord{
		"USD": {Code: "USD", DisplayName: "United States-Dollar", RateToUSD: 1, EffectiveDate: "2026-01-15"},
		"EUR": {Code: "EUR", DisplayName: "Euro Zone-Euro", RateToUSD: 0.851, EffectiveDate: "2025-12-31"},
		"GBP": {Code: "GBP", DisplayName: "United Kingdom-Pound", RateToUSD: 0.79, EffectiveDate: "2025-12-31"},
		"JPY": {Code: "JPY", DisplayName: "Japan-Yen", RateToUSD: 157.5, EffectiveDate: "2025-12-31"},
		"AUD": {Code: "AUD", DisplayName: "Australia-Dollar", RateToUSD: 1.495, EffectiveDate: "2026-01-15"},
		"CAD": {Code: "CAD", DisplayName: "Canada-Dollar", RateToUSD: 1.369, EffectiveDate: "2025-09-30"},
	}, "2026-01-15")
}

func fixtureMapping() currencyRates.Mapping {
	return mapping.Treasury()
}
