package currency

type (
	// Resolver answers rate queries against the current table.
	// Expected bad input is reported through the error taxonomy in errors.go.
	Resolver interface {
		LookupRate(from, to string) (RateView, error)
		Convert(from, to, amount string) (ConversionView, error)
		Rebase(base string) (RatesView, error)
		CurrencyDetail(code string) (DetailView, error)
		BatchConvert(from, to string, amounts []string) (BatchView, error)
		Currencies() ([]Currency, error)
	}

	Exporter interface {
		Save() (map[string][]SnapshotWithID, error)
	}
)
