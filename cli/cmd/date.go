package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/malusev998/lari"
	"github.com/malusev998/lari/logger"
)

func date(config *Config) *cobra.Command {
	var clearDate bool

	cmd := &cobra.Command{
		Use:   "date [YYYY-MM-DD]",
		Short: "Show, set or clear the selected date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			switch {
			case clearDate:
				if err := config.Rates.ClearDate(ctx); err != nil {
					return err
				}

				fmt.Fprintln(out, "Date cleared, using latest rates")
			case len(args) == 1:
				day, err := parseDate(args[0])
				if err != nil {
					return err
				}

				day, err = config.Rates.SelectDate(ctx, day)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "Selected: %s\n", day.Format(lari.DisplayDateFormat))
			default:
				selected, err := config.Rates.SelectedDate(ctx)
				if err != nil {
					return err
				}

				if selected == nil {
					fmt.Fprintln(out, "not selected")
				} else {
					fmt.Fprintln(out, selected.Format(lari.DisplayDateFormat))
				}

				return nil
			}

			// The selected currency follows the rates of the new date.
			if _, err := config.Rates.Rates(ctx); err != nil {
				logger.Warn("cannot refresh rates for the new date", zap.Error(err))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&clearDate, "clear", false, "Clear the selected date")

	return cmd
}
