package cmd

import (
	"errors"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	currencyRates "github.com/malusev998/currency-rates"
	"github.com/malusev998/currency-rates/services"
	"github.com/malusev998/currency-rates/storage"
)

var ErrNoStorage = errors.New("no storage is configured")

// newStorage is replaced in tests.
var newStorage = storage.NewStorage

func (a *app) openStorages() ([]currencyRates.Storage, error) {
	if len(a.settings.Storage) == 0 {
		return nil, ErrNoStorage
	}

	storages := make([]currencyRates.Storage, 0, len(a.settings.Storage))

	for _, provider := range a.settings.Storage {
		st, err := newStorage(provider, a.settings.StorageConfig[provider])

		if err != nil {
			closeStorages(storages)
			return nil, err
		}

		storages = append(storages, st)
	}

	return storages, nil
}

func closeStorages(storages []currencyRates.Storage) {
	for _, st := range storages {
		_ = st.Close()
	}
}

func exportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Store a snapshot of the current rate table in every configured storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			storages, err := a.openStorages()

			if err != nil {
				return err
			}

			defer closeStorages(storages)

			exporter := services.ExportService{
				Tables:  a.registry,
				Storage: storages,
				Now:     time.Now,
			}

			stored, err := exporter.Save()

			if err != nil {
				return err
			}

			counts := make(map[string]int, len(stored))

			for name, snapshots := range stored {
				counts[name] = len(snapshots)

				for _, snapshot := range snapshots {
					level.Debug(a.logger).Log("msg", "snapshot stored", "storage", name, "code", snapshot.Code, "rate", snapshot.RateToUSD)
				}
			}

			return printJSON(cmd.OutOrStdout(), map[string]interface{}{"stored": counts})
		},
	}
}

func historyCommand(a *app) *cobra.Command {
	var page, perPage int64
	var provider string

	historyCmd := &cobra.Command{
		Use:   "history CODE",
		Short: "List stored snapshots of a currency, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.ValidatePage(page, perPage); err != nil {
				return err
			}

			storages, err := a.openStorages()

			if err != nil {
				return err
			}

			defer closeStorages(storages)

			st := storages[0]

			if provider != "" {
				st = nil

				for _, s := range storages {
					if s.GetStorageProviderName() == strings.ToLower(provider) {
						st = s
					}
				}

				if st == nil {
					return storage.ErrStorageNotFound
				}
			}

			snapshots, err := st.Get(strings.ToUpper(args[0]), page, perPage)

			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]interface{}{
				"storage":   st.GetStorageProviderName(),
				"page":      page,
				"snapshots": snapshots,
			})
		},
	}

	historyCmd.Flags().Int64Var(&page, "page", 1, "Page, starting at 1")
	historyCmd.Flags().Int64Var(&perPage, "per-page", 20, "Snapshots per page")
	historyCmd.Flags().StringVar(&provider, "storage", "", "Storage to read from, the first configured one by default")

	return historyCmd
}
