// Package table turns the raw Treasury rate table into a currency.Table.
package table

import (
	"strings"

	currencyRates "github.com/malusev998/currency-rates"
)

const (
	DefaultDelimiter = ','
	DefaultQuote     = '"'

	// HeaderDescription is the currency description column title of the header row.
	HeaderDescription = "Country - Currency Description"

	fallbackUSDName = "United States-Dollar"
)

type Builder struct {
	Mapping   currencyRates.Mapping
	Delimiter byte
	Quote     byte
}

// Build parses raw with the default delimiter and quote characters.
func Build(raw string, mapping currencyRates.Mapping) *currencyRates.Table {
	return Builder{Mapping: mapping}.Build(raw)
}

// Build never fails: malformed, unmapped or non-numeric rows are skipped.
// For every code the row with the greatest effective date is kept, the first one on ties.
// The USD anchor is always present with rate 1 and the newest effective date seen.
func (b Builder) Build(raw string) *currencyRates.Table {
	delimiter, quote := b.Delimiter, b.Quote

	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	if quote == 0 {
		quote = DefaultQuote
	}

	records := make(map[string]currencyRates.RateRecord)
	lastUpdated := ""

	lines := strings.Split(strings.TrimSpace(raw), "\n")

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		record, ok := b.parseRecord(SplitLine(line, delimiter, quote))

		if !ok {
			continue
		}

		if existing, exists := records[record.Code]; !exists || record.EffectiveDate > existing.EffectiveDate {
			records[record.Code] = record
		}

		if record.EffectiveDate > lastUpdated {
			lastUpdated = record.EffectiveDate
		}
	}

	name, ok := b.Mapping.NameFor(currencyRates.USD)

	if !ok {
		name = fallbackUSDName
	}

	records[currencyRates.USD] = currencyRates.RateRecord{
		Code:          currencyRates.USD,
		DisplayName:   name,
		RateToUSD:     1,
		EffectiveDate: lastUpdated,
	}

	return currencyRates.NewTable(records, lastUpdated)
}

// parseRecord reads (recordDate, description, rate, effectiveDate, ...).
func (b Builder) parseRecord(fields []string) (currencyRates.RateRecord, bool) {
	if len(fields) < 4 {
		return currencyRates.RateRecord{}, false
	}

	description, rateText, effectiveDate := fields[1], fields[2], fields[3]

	if description == HeaderDescription {
		return currencyRates.RateRecord{}, false
	}

	code, ok := b.Mapping.CodeFor(description)

	if !ok {
		return currencyRates.RateRecord{}, false
	}

	rate, ok := currencyRates.ParseNumber(rateText)

	// rates are divisors for every cross rate
	if !ok || rate <= 0 {
		return currencyRates.RateRecord{}, false
	}

	return currencyRates.RateRecord{
		Code:          code,
		DisplayName:   description,
		RateToUSD:     rate,
		EffectiveDate: effectiveDate,
	}, true
}
