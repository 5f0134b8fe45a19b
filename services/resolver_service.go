package services

import (
	currencyRates "github.com/malusev998/currency-rates"
)

// ResolverService answers queries against whatever table Tables currently holds.
type ResolverService struct {
	Tables  TableSource
	Mapping currencyRates.Mapping
}

var _ currencyRates.Resolver = ResolverService{}

func (s ResolverService) LookupRate(from, to string) (currencyRates.RateView, error) {
	t, err := s.Tables.Table()

	if err != nil {
		return currencyRates.RateView{}, err
	}

	return LookupRate(t, s.Mapping, from, to)
}

func (s ResolverService) Convert(from, to, amount string) (currencyRates.ConversionView, error) {
	t, err := s.Tables.Table()

	if err != nil {
		return currencyRates.ConversionView{}, err
	}

	return Convert(t, s.Mapping, from, to, amount)
}

func (s ResolverService) Rebase(base string) (currencyRates.RatesView, error) {
	t, err := s.Tables.Table()

	if err != nil {
		return currencyRates.RatesView{}, err
	}

	return Rebase(t, s.Mapping, base)
}

func (s ResolverService) CurrencyDetail(code string) (currencyRates.DetailView, error) {
	t, err := s.Tables.Table()

	if err != nil {
		return currencyRates.DetailView{}, err
	}

	return CurrencyDetail(t, s.Mapping, code)
}

func (s ResolverService) BatchConvert(from, to string, amounts []string) (currencyRates.BatchView, error) {
	t, err := s.Tables.Table()

	if err != nil {
		return currencyRates.BatchView{}, err
	}

	return BatchConvert(t, s.Mapping, from, to, amounts)
}

func (s ResolverService) Currencies() ([]currencyRates.Currency, error) {
	t, err := s.Tables.Table()

	if err != nil {
		return nil, err
	}

	return Currencies(t), nil
}
