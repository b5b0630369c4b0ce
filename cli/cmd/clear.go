package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	if in == nil {
		return false
	}

	answer, _ := bufio.NewReader(in).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))

	return answer == "y" || answer == "yes"
}

func clearState(config *Config) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the total or the history",
	}

	clearTotal := &cobra.Command{
		Use:   "total",
		Short: "Reset the total to zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			value, err := config.Earnings.Total(ctx)
			if err != nil {
				return err
			}

			if value.IsZero() {
				fmt.Fprintln(out, "Total is already 0")
				return nil
			}

			if !yes && !confirm(config.In, out, "Are you sure you want to clear the total?") {
				fmt.Fprintln(out, "Cancelled")
				return nil
			}

			if err := config.Earnings.ClearTotal(ctx); err != nil {
				return err
			}

			fmt.Fprintln(out, "Total cleared")

			return nil
		},
	}

	clearHistory := &cobra.Command{
		Use:   "history",
		Short: "Delete every history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if !yes && !confirm(config.In, out, "Are you sure you want to clear the history?") {
				fmt.Fprintln(out, "Cancelled")
				return nil
			}

			if err := config.Earnings.ClearHistory(ctx); err != nil {
				return err
			}

			fmt.Fprintln(out, "History cleared")

			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation")
	cmd.AddCommand(clearTotal, clearHistory)

	return cmd
}
