package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outlay-dev/outlay/internal/model"
)

func newListCommand() *cobra.Command {
	var category string
	var from, to string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, optionally filtered by category and date range",
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

			if len(data.RecordRows) == 0 {
				fmt.Fprintln(out, hintStyle.Render("No expenses match the selected filters."))
				if len(data.FilterOptions) > 1 {
					fmt.Fprintln(out, hintStyle.Render("Categories: "+strings.Join(data.FilterOptions, ", ")))
				}
				return nil
			}

			fmt.Fprint(out, renderRecordsTable(data.RecordRows))
			fmt.Fprintln(out, hintStyle.Render(fmt.Sprintf("Showing %d transactions totaling %s",
				data.TransactionCount, e.svc.FormatCurrency(data.TotalAmount))))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", model.CategoryAll, "filter by category")
	cmd.Flags().StringVar(&from, "from", "", "start of date range (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "end of date range (YYYY-MM-DD, inclusive)")

	return cmd
}
