package currency

import (
	"sort"
	"time"
)

// USD is the anchor currency every stored rate is expressed against.
const USD = "USD"

type (
	// RateRecord is the resolved state of a single currency.
	RateRecord struct {
		Code          string  `json:"code"`
		DisplayName   string  `json:"name"`
		RateToUSD     float64 `json:"rateToUSD"`
		EffectiveDate string  `json:"effectiveDate"`
	}

	// Table is a built, read-only rate registry keyed by currency code.
	Table struct {
		records     map[string]RateRecord
		lastUpdated string
	}

	Currency struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}

	RateView struct {
		From          string  `json:"from"`
		To            string  `json:"to"`
		Rate          float64 `json:"rate"`
		EffectiveDate string  `json:"effectiveDate"`
	}

	ConversionView struct {
		From            string  `json:"from"`
		To              string  `json:"to"`
		Amount          float64 `json:"amount"`
		ConvertedAmount float64 `json:"convertedAmount"`
		Rate            float64 `json:"rate"`
		EffectiveDate   string  `json:"effectiveDate"`
	}

	RatesView struct {
		Base          string             `json:"base"`
		EffectiveDate string             `json:"effectiveDate"`
		Rates         map[string]float64 `json:"rates"`
	}

	DetailView struct {
		Code          string  `json:"code"`
		Name          string  `json:"name"`
		RateToUSD     float64 `json:"rateToUSD"`
		EffectiveDate string  `json:"effectiveDate"`
	}

	Conversion struct {
		Amount          float64 `json:"amount"`
		ConvertedAmount float64 `json:"convertedAmount"`
	}

	BatchView struct {
		From          string       `json:"from"`
		To            string       `json:"to"`
		Rate          float64      `json:"rate"`
		EffectiveDate string       `json:"effectiveDate"`
		Conversions   []Conversion `json:"conversions"`
	}

	// Snapshot is a rate record as exported to a storage at a point in time.
	Snapshot struct {
		RateRecord
		CreatedAt time.Time `json:"createdAt"`
	}

	SnapshotWithID struct {
		Snapshot
		ID interface{} `json:"id"`
	}
)

// NewTable takes ownership of records. The map must not be modified afterwards.
func NewTable(records map[string]RateRecord, lastUpdated string) *Table {
	if records == nil {
		records = make(map[string]RateRecord)
	}

	return &Table{
		records:     records,
		lastUpdated: lastUpdated,
	}
}

func (t *Table) Get(code string) (RateRecord, bool) {
	record, ok := t.records[code]
	return record, ok
}

func (t *Table) Len() int {
	return len(t.records)
}

// LastUpdated is the newest effective date seen across every accepted input row.
func (t *Table) LastUpdated() string {
	return t.lastUpdated
}

// Codes returns every code in the table in ascending order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.records))

	for code := range t.records {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}

// Range calls fn for every record until fn returns false. Iteration order is unspecified.
func (t *Table) Range(fn func(RateRecord) bool) {
	for _, record := range t.records {
		if !fn(record) {
			return
		}
	}
}
