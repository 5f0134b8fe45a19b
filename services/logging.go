package services

import (
	"time"

	"github.com/go-kit/log"

	currencyRates "github.com/malusev998/currency-rates"
)

// loggingService decorates a currency.Resolver with logging
type loggingService struct {
	logger log.Logger
	next   currencyRates.Resolver
}

// NewLoggingService returns a new instance of a logging Resolver
func NewLoggingService(logger log.Logger, s currencyRates.Resolver) currencyRates.Resolver {
	return &loggingService{
		logger: logger,
		next:   s,
	}
}

func (s *loggingService) LookupRate(from, to string) (view currencyRates.RateView, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "lookup_rate",
			"from", from,
			"to", to,
			"rate", view.Rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LookupRate(from, to)
}

func (s *loggingService) Convert(from, to, amount string) (view currencyRates.ConversionView, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"from", from,
			"to", to,
			"amount", amount,
			"rate", view.Rate,
			"converted_amount", view.ConvertedAmount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(from, to, amount)
}

func (s *loggingService) Rebase(base string) (view currencyRates.RatesView, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rebase",
			"base", base,
			"currencies", len(view.Rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rebase(base)
}

func (s *loggingService) CurrencyDetail(code string) (view currencyRates.DetailView, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "currency_detail",
			"code", code,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CurrencyDetail(code)
}

func (s *loggingService) BatchConvert(from, to string, amounts []string) (view currencyRates.BatchView, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "batch_convert",
			"from", from,
			"to", to,
			"amounts", len(amounts),
			"rate", view.Rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.BatchConvert(from, to, amounts)
}

func (s *loggingService) Currencies() (currencies []currencyRates.Currency, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "currencies",
			"count", len(currencies),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Currencies()
}
