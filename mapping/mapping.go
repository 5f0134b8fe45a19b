// Package mapping holds the static table between the Treasury "Country-Currency"
// descriptions and ISO 4217 codes.
package mapping

import currencyRates "github.com/malusev998/currency-rates"

type (
	Entry struct {
		Name string
		Code string
	}

	// Table is a read-only name/code index. The zero value knows no currencies.
	Table struct {
		codes map[string]string
		names map[string]string
	}
)

var _ currencyRates.Mapping = Table{}

// New indexes entries. A code described by several names resolves to the first one
// unless preferred names it explicitly.
func New(entries []Entry, preferred map[string]string) Table {
	t := Table{
		codes: make(map[string]string, len(entries)),
		names: make(map[string]string, len(entries)),
	}

	for _, e := range entries {
		t.codes[e.Name] = e.Code

		if _, ok := t.names[e.Code]; !ok {
			t.names[e.Code] = e.Name
		}
	}

	for code, name := range preferred {
		t.names[code] = name
	}

	return t
}

// Treasury returns the mapping for the Treasury Reporting Rates of Exchange dataset.
func Treasury() Table {
	return New(treasuryEntries, treasuryPreferred)
}

func (t Table) CodeFor(name string) (string, bool) {
	code, ok := t.codes[name]
	return code, ok
}

func (t Table) NameFor(code string) (string, bool) {
	name, ok := t.names[code]
	return name, ok
}

// IsValidCode is case sensitive: only upper case codes present in the table are valid.
func (t Table) IsValidCode(code string) bool {
	_, ok := t.names[code]
	return ok
}

// Len returns the number of distinct codes.
func (t Table) Len() int {
	return len(t.names)
}
