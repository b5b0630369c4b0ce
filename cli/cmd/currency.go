package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/malusev998/lari"
)

func currency(config *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "currency [CODE]",
		Short: "Show or select the currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				selected lari.CurrencyRate
				err      error
			)

			if len(args) == 1 {
				selected, err = config.Rates.SelectCurrency(cmd.Context(), args[0])
			} else {
				selected, err = config.Rates.SelectedCurrency(cmd.Context())
			}

			if err != nil {
				return err
			}

			if selected.IsZero() {
				fmt.Fprintln(cmd.OutOrStdout(), "Select a currency")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Selected: %s\n", formatRate(selected))

			return nil
		},
	}
}
