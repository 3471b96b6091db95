package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/expenses"
)

func newSummaryCommand() *cobra.Command {
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate expense totals",
	}
	summaryCmd.AddCommand(newSummaryMonthlyCommand(), newSummaryCategoryCommand())
	return summaryCmd
}

func newSummaryMonthlyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "monthly",
		Short: "Total spend per calendar month",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			data := e.dashboard(expenses.Filter{})
			out := cmd.OutOrStdout()
			if len(data.MonthlyRows) == 0 {
				fmt.Fprintln(out, hintStyle.Render("No monthly data available."))
				return nil
			}
			fmt.Fprint(out, renderSummaryTable("Monthly Expense Summary", "Month", data.MonthlyRows))
			return nil
		},
	}
}

func newSummaryCategoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "category",
		Short: "Total spend per category, largest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			data := e.dashboard(expenses.Filter{})
			out := cmd.OutOrStdout()
			if len(data.CategoryRows) == 0 {
				fmt.Fprintln(out, hintStyle.Render("No category data available."))
				return nil
			}
			fmt.Fprint(out, renderSummaryTable("Expenses by Category", "Category", data.CategoryRows))
			return nil
		},
	}
}
