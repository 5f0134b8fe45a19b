package cmd

import (
	"github.com/spf13/cobra"
)

func rateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rate FROM TO",
		Short: "Cross rate between two currencies",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.resolver.LookupRate(args[0], args[1])

			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), view)
		},
	}
}

func convertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert FROM TO AMOUNT",
		Short: "Convert an amount between two currencies",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.resolver.Convert(args[0], args[1], args[2])

			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), view)
		},
	}
}

func ratesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rates [BASE]",
		Short: "Every rate in the table against BASE (USD by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := ""

			if len(args) == 1 {
				base = args[0]
			}

			view, err := a.resolver.Rebase(base)

			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), view)
		},
	}
}

func currencyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "currency CODE",
		Short: "Details of a single currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.resolver.CurrencyDetail(args[0])

			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), view)
		},
	}
}

func batchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch FROM TO AMOUNT...",
		Short: "Convert several amounts with the same rate",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var amounts []string

			if len(args) > 2 {
				amounts = args[2:]
			}

			view, err := a.resolver.BatchConvert(args[0], args[1], amounts)

			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), view)
		},
	}
}

func currenciesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "currencies",
		Short: "List every currency in the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			currencies, err := a.resolver.Currencies()

			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]interface{}{"currencies": currencies})
		},
	}
}
