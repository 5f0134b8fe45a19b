package services

import (
	"fmt"
	"strings"

	currencyRates "github.com/malusev998/currency-rates"
)

// The functions below are pure: they only read the table and never retain it.
// Every input is validated before anything is computed.

// CrossRate is the number of to units per one from unit.
func CrossRate(from, to currencyRates.RateRecord) float64 {
	return to.RateToUSD / from.RateToUSD
}

func laterDate(a, b string) string {
	if a > b {
		return a
	}

	return b
}

func normalizeCode(code string) string {
	return strings.ToUpper(code)
}

func missing(names ...string) error {
	return fmt.Errorf("%w: %s", currencyRates.ErrMissingParameter, strings.Join(names, ", "))
}

func known(t *currencyRates.Table, m currencyRates.Mapping, code string) (currencyRates.RateRecord, error) {
	if !m.IsValidCode(code) {
		return currencyRates.RateRecord{}, fmt.Errorf("%w: %s", currencyRates.ErrInvalidCurrency, code)
	}

	record, ok := t.Get(code)

	if !ok {
		return currencyRates.RateRecord{}, fmt.Errorf("%w: %s", currencyRates.ErrInvalidCurrency, code)
	}

	return record, nil
}

func knownPair(t *currencyRates.Table, m currencyRates.Mapping, from, to string) (currencyRates.RateRecord, currencyRates.RateRecord, error) {
	fromRecord, err := known(t, m, from)

	if err != nil {
		return currencyRates.RateRecord{}, currencyRates.RateRecord{}, err
	}

	toRecord, err := known(t, m, to)

	if err != nil {
		return currencyRates.RateRecord{}, currencyRates.RateRecord{}, err
	}

	return fromRecord, toRecord, nil
}

func parseAmount(amount string) (float64, error) {
	value, ok := currencyRates.ParseNumber(amount)

	if !ok {
		return 0, fmt.Errorf("%w: %q is not a number", currencyRates.ErrInvalidAmount, amount)
	}

	return value, nil
}

func outOfRange(amount string) error {
	return fmt.Errorf("%w: converting %s is out of range", currencyRates.ErrInvalidAmount, amount)
}

func LookupRate(t *currencyRates.Table, m currencyRates.Mapping, from, to string) (currencyRates.RateView, error) {
	from, to = normalizeCode(from), normalizeCode(to)

	if from == "" || to == "" {
		return currencyRates.RateView{}, missing("from", "to")
	}

	fromRecord, toRecord, err := knownPair(t, m, from, to)

	if err != nil {
		return currencyRates.RateView{}, err
	}

	return currencyRates.RateView{
		From:          from,
		To:            to,
		Rate:          RoundRate(CrossRate(fromRecord, toRecord)),
		EffectiveDate: laterDate(fromRecord.EffectiveDate, toRecord.EffectiveDate),
	}, nil
}

func Convert(t *currencyRates.Table, m currencyRates.Mapping, from, to, amount string) (currencyRates.ConversionView, error) {
	from, to = normalizeCode(from), normalizeCode(to)

	if from == "" || to == "" || amount == "" {
		return currencyRates.ConversionView{}, missing("from", "to", "amount")
	}

	value, err := parseAmount(amount)

	if err != nil {
		return currencyRates.ConversionView{}, err
	}

	fromRecord, toRecord, err := knownPair(t, m, from, to)

	if err != nil {
		return currencyRates.ConversionView{}, err
	}

	rate := CrossRate(fromRecord, toRecord)
	converted := RoundAmount(value, rate)

	if !finite(converted, RoundRate(rate)) {
		return currencyRates.ConversionView{}, outOfRange(amount)
	}

	return currencyRates.ConversionView{
		From:            from,
		To:              to,
		Amount:          value,
		ConvertedAmount: converted,
		Rate:            RoundRate(rate),
		EffectiveDate:   laterDate(fromRecord.EffectiveDate, toRecord.EffectiveDate),
	}, nil
}

// Rebase expresses every currency in the table against base, USD when base is empty.
func Rebase(t *currencyRates.Table, m currencyRates.Mapping, base string) (currencyRates.RatesView, error) {
	base = normalizeCode(base)

	if base == "" {
		base = currencyRates.USD
	}

	baseRecord, err := known(t, m, base)

	if err != nil {
		return currencyRates.RatesView{}, err
	}

	rates := make(map[string]float64, t.Len())
	effectiveDate := baseRecord.EffectiveDate

	t.Range(func(record currencyRates.RateRecord) bool {
		rates[record.Code] = RoundRate(CrossRate(baseRecord, record))
		effectiveDate = laterDate(effectiveDate, record.EffectiveDate)

		return true
	})

	return currencyRates.RatesView{
		Base:          base,
		EffectiveDate: effectiveDate,
		Rates:         rates,
	}, nil
}

func CurrencyDetail(t *currencyRates.Table, m currencyRates.Mapping, code string) (currencyRates.DetailView, error) {
	record, err := known(t, m, normalizeCode(code))

	if err != nil {
		return currencyRates.DetailView{}, err
	}

	return currencyRates.DetailView{
		Code:          record.Code,
		Name:          record.DisplayName,
		RateToUSD:     record.RateToUSD,
		EffectiveDate: record.EffectiveDate,
	}, nil
}

// BatchConvert converts every amount with the same rate. A nil amounts slice is a
// missing parameter, an empty one an invalid amount.
func BatchConvert(t *currencyRates.Table, m currencyRates.Mapping, from, to string, amounts []string) (currencyRates.BatchView, error) {
	from, to = normalizeCode(from), normalizeCode(to)

	if from == "" || to == "" || amounts == nil {
		return currencyRates.BatchView{}, missing("from", "to", "amounts")
	}

	if len(amounts) == 0 {
		return currencyRates.BatchView{}, fmt.Errorf("%w: amounts must be a non-empty list of numbers", currencyRates.ErrInvalidAmount)
	}

	values := make([]float64, 0, len(amounts))

	for _, amount := range amounts {
		value, err := parseAmount(amount)

		if err != nil {
			return currencyRates.BatchView{}, err
		}

		values = append(values, value)
	}

	fromRecord, toRecord, err := knownPair(t, m, from, to)

	if err != nil {
		return currencyRates.BatchView{}, err
	}

	rate := CrossRate(fromRecord, toRecord)

	if !finite(RoundRate(rate)) {
		return currencyRates.BatchView{}, outOfRange(amounts[0])
	}

	conversions := make([]currencyRates.Conversion, 0, len(values))

	for i, value := range values {
		converted := RoundAmount(value, rate)

		if !finite(converted) {
			return currencyRates.BatchView{}, outOfRange(amounts[i])
		}

		conversions = append(conversions, currencyRates.Conversion{
			Amount:          value,
			ConvertedAmount: converted,
		})
	}

	return currencyRates.BatchView{
		From:          from,
		To:            to,
		Rate:          RoundRate(rate),
		EffectiveDate: laterDate(fromRecord.EffectiveDate, toRecord.EffectiveDate),
		Conversions:   conversions,
	}, nil
}

// Currencies lists every currency in the table ordered by code.
func Currencies(t *currencyRates.Table) []currencyRates.Currency {
	codes := t.Codes()
	currencies := make([]currencyRates.Currency, 0, len(codes))

	for _, code := range codes {
		record, _ := t.Get(code)
		currencies = append(currencies, currencyRates.Currency{
			Code: record.Code,
			Name: record.DisplayName,
		})
	}

	return currencies
}
