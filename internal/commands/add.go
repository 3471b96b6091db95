package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/expenses"
)

func newAddCommand() *cobra.Command {
	var dateStr string
	var category string
	var amountStr string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			date, err := expenses.ParseDate(dateStr)
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(strings.TrimSpace(amountStr))
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			if err := e.svc.Submit(date, category, amount); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s expense of %s on %s\n",
				strings.TrimSpace(category),
				e.svc.FormatCurrency(amount),
				date.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", time.Now().Format("2006-01-02"), "expense date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "expense amount (required)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
