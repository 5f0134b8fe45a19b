package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	currencyRates "github.com/malusev998/currency-rates"
)

type (
	// Metrics holds the resolver request metrics.
	Metrics struct {
		RequestsTotal   *prometheus.CounterVec
		RequestDuration *prometheus.HistogramVec
	}

	instrumentingService struct {
		metrics *Metrics
		next    currencyRates.Resolver
	}
)

// NewMetrics registers the resolver metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_rates_requests_total",
				Help: "Resolver requests by method and error kind (empty kind on success)",
			},
			[]string{"method", "kind"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "currency_rates_request_duration_seconds",
				Help:    "Resolver request duration",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"method"},
		),
	}
}

// NewInstrumentingService decorates s with request counters and latency histograms.
func NewInstrumentingService(metrics *Metrics, s currencyRates.Resolver) currencyRates.Resolver {
	return &instrumentingService{
		metrics: metrics,
		next:    s,
	}
}

func (s *instrumentingService) observe(method string, begin time.Time, err error) {
	s.metrics.RequestsTotal.WithLabelValues(method, string(currencyRates.KindOf(err))).Inc()
	s.metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingService) LookupRate(from, to string) (view currencyRates.RateView, err error) {
	defer func(begin time.Time) { s.observe("lookup_rate", begin, err) }(time.Now())
	return s.next.LookupRate(from, to)
}

func (s *instrumentingService) Convert(from, to, amount string) (view currencyRates.ConversionView, err error) {
	defer func(begin time.Time) { s.observe("convert", begin, err) }(time.Now())
	return s.next.Convert(from, to, amount)
}

func (s *instrumentingService) Rebase(base string) (view currencyRates.RatesView, err error) {
	defer func(begin time.Time) { s.observe("rebase", begin, err) }(time.Now())
	return s.next.Rebase(base)
}

func (s *instrumentingService) CurrencyDetail(code string) (view currencyRates.DetailView, err error) {
	defer func(begin time.Time) { s.observe("currency_detail", begin, err) }(time.Now())
	return s.next.CurrencyDetail(code)
}

func (s *instrumentingService) BatchConvert(from, to string, amounts []string) (view currencyRates.BatchView, err error) {
	defer func(begin time.Time) { s.observe("batch_convert", begin, err) }(time.Now())
	return s.next.BatchConvert(from, to, amounts)
}

func (s *instrumentingService) Currencies() (currencies []currencyRates.Currency, err error) {
	defer func(begin time.Time) { s.observe("currencies", begin, err) }(time.Now())
	return s.next.Currencies()
}
