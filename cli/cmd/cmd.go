package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	currencyRates "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/mapping"
	"github.com/malusev998/currency-rates/services"
	"github.com/malusev998/currency-rates/table"
)

type app struct {
	ctx        context.Context
	configFile string
	debug      bool

	settings *Settings
	logger   log.Logger
	registry *services.Registry
	resolver currencyRates.Resolver
	metrics  *prometheus.Registry
}

func Execute(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

func NewRootCommand(ctx context.Context) *cobra.Command {
	a := &app{ctx: ctx}

	rootCmd := &cobra.Command{
		Use:           "currency-rates",
		Short:         "Exchange rate table lookups and conversions",
		Version:       "v2.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "./config.yml", "Path to config file")

	rootCmd.AddCommand(
		serveCommand(a),
		rateCommand(a),
		convertCommand(a),
		ratesCommand(a),
		currencyCommand(a),
		batchCommand(a),
		currenciesCommand(a),
		exportCommand(a),
		historyCommand(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.ctx == nil {
		a.ctx = context.Background()
	}

	settings, err := loadSettings(a.ctx, a.configFile, cmd.Flags().Changed("config"))

	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = newLogger(cmd.ErrOrStderr(), settings.LogLevel, a.debug)

	treasury := mapping.Treasury()
	builder := table.Builder{
		Mapping:   treasury,
		Delimiter: table.DefaultDelimiter,
		Quote:     table.DefaultQuote,
	}

	a.registry = services.NewRegistry(
		fileLoader(settings.SourceFile),
		builder.Build,
		log.With(a.logger, "component", "registry"),
	)

	a.metrics = prometheus.NewRegistry()

	var resolver currencyRates.Resolver = services.ResolverService{
		Tables:  a.registry,
		Mapping: treasury,
	}
	resolver = services.NewInstrumentingService(services.NewMetrics(a.metrics), resolver)
	resolver = services.NewLoggingService(log.With(a.logger, "component", "resolver"), resolver)

	a.resolver = resolver

	return nil
}

func fileLoader(path string) services.Loader {
	return func() (string, error) {
		data, err := os.ReadFile(path)

		if err != nil {
			return "", fmt.Errorf("error while reading rate table %s: %w", path, err)
		}

		return string(data), nil
	}
}

func printJSON(w io.Writer, value interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}
