package cmd

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/malusev998/lari"
)

// parseDate accepts both the storage and the display layout.
func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{lari.DateFormat, lari.DisplayDateFormat} {
		if date, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return date, nil
		}
	}

	return time.Time{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD", value)
}

func formatRate(rate lari.CurrencyRate) string {
	return fmt.Sprintf("%-4s %s %s", rate.Code, decimal.NewFromFloat(rate.Rate).String(), lari.LocalCurrency)
}

func rates(config *Config) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "List NBG rates for the selected date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				list []lari.CurrencyRate
				err  error
			)

			if date != "" {
				day, parseErr := parseDate(date)
				if parseErr != nil {
					return parseErr
				}

				list, err = config.Rates.RatesOn(cmd.Context(), &day)
			} else {
				list, err = config.Rates.Rates(cmd.Context())
			}

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(list) == 0 {
				fmt.Fprintln(out, "no data")
				return nil
			}

			for _, rate := range list {
				fmt.Fprintln(out, formatRate(rate))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD), selected date if empty")

	return cmd
}
