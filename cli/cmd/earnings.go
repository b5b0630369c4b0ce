package cmd

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/services"
)

func printAmount(out io.Writer, prefix string, amount decimal.Decimal) {
	fmt.Fprintf(out, "%s%s %s\n", prefix, services.FormatAmount(amount), lari.LocalCurrency)
}

func printEntry(out io.Writer, entry lari.HistoryEntry) {
	fmt.Fprintf(out, "%s - %s %s → %s %s\n", entry.Date, entry.Amount, entry.Code, entry.Converted, lari.LocalCurrency)
}

func convert(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert AMOUNT",
		Short: "Convert an amount with the selected currency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			converted, err := config.Earnings.Preview(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printAmount(cmd.OutOrStdout(), "", converted)

			return nil
		},
	}
}

func apply(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "apply AMOUNT",
		Short: "Add an earned amount to the total and the history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			entry, total, err := config.Earnings.Apply(cmd.Context(), args[0])

			if errors.Is(err, services.ErrHistoryNotSaved) {
				printAmount(out, "Total: ", total)
				return err
			}

			if err != nil {
				return err
			}

			printEntry(out, entry)
			printAmount(out, "Total: ", total)

			return nil
		},
	}
}

func total(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Show the running total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.Earnings.Total(cmd.Context())
			if err != nil {
				return err
			}

			printAmount(cmd.OutOrStdout(), "", value)

			return nil
		},
	}
}

func history(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List applied earnings, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := config.Earnings.History(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(entries) == 0 {
				fmt.Fprintln(out, "history is empty")
				return nil
			}

			for _, entry := range entries {
				printEntry(out, entry)
			}

			return nil
		},
	}
}
