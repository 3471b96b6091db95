package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/model"
)

func newDashboardCommand() *cobra.Command {
	var category string
	var from, to string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Spending overview: metrics, summaries, and a monthly trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}

			filter, err := filterFromFlags(category, from, to)
			if err != nil {
				return err
			}

			data := e.dashboard(filter)
			out := cmd.OutOrStdout()

			if data.TransactionCount == 0 {
				fmt.Fprintln(out, hintStyle.Render("No expenses recorded yet. Use `outlay add` to record your first expense."))
				return nil
			}

			fmt.Fprintln(out, titleStyle.Render("Personal Expense Tracker"))
			fmt.Fprintf(out, "%s %s    %s %d    %s %s    %s %d\n\n",
				tableHeaderStyle.Render("Total Expenses:"),
				amountStyle.Render(e.svc.FormatCurrency(data.TotalAmount)),
				tableHeaderStyle.Render("Transactions:"),
				data.TransactionCount,
				tableHeaderStyle.Render("Average:"),
				amountStyle.Render(e.svc.FormatCurrency(data.AverageAmount)),
				tableHeaderStyle.Render("Categories Used:"),
				data.DistinctCategoryCount)

			fmt.Fprintln(out, renderSummaryTable("Monthly Expense Summary", "Month", data.MonthlyRows))
			fmt.Fprintln(out, renderSummaryTable("Expenses by Category", "Category", data.CategoryRows))

			fmt.Fprintln(out, titleStyle.Render("Monthly Spending Trends"))
			fmt.Fprint(out, renderTrendChart(data.MonthlyTotals, data.MonthlyRows))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", model.CategoryAll, "filter by category")
	cmd.Flags().StringVar(&from, "from", "", "start of date range (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end of date range (YYYY-MM-DD, inclusive)")

	return cmd
}
