package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// monthKey is the fixed key format for monthly grouping.
const monthKey = "2006-01"

// MonthTotal is one month's aggregate spend.
type MonthTotal struct {
	Month string // YYYY-MM
	Total decimal.Decimal
}

// CategoryTotal is one category's aggregate spend.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Monthly groups records by calendar month (day discarded) and sums their
// amounts. Months appear in chronological order; months with no records are
// absent. An empty set yields an empty summary.
func Monthly(rs model.RecordSet) []MonthTotal {
	totals := make(map[string]decimal.Decimal)
	for _, r := range rs {
		key := r.Date.Format(monthKey)
		totals[key] = totals[key].Add(r.Amount)
	}

	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthTotal, 0, len(keys))
	for _, k := range keys {
		out = append(out, MonthTotal{Month: k, Total: totals[k]})
	}
	return out
}

// ByCategory groups records by exact category string and sums their
// amounts, sorted descending by total. Ties keep first-occurrence order
// from the source set.
func ByCategory(rs model.RecordSet) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	for _, r := range rs {
		if _, seen := totals[r.Category]; !seen {
			order = append(order, r.Category)
		}
		totals[r.Category] = totals[r.Category].Add(r.Amount)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryTotal{Category: c, Total: totals[c]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// Average returns total/count rounded to 2 decimal places, or zero for an
// empty set.
func Average(rs model.RecordSet) decimal.Decimal {
	if len(rs) == 0 {
		return decimal.Zero
	}
	return rs.Total().DivRound(decimal.NewFromInt(int64(len(rs))), 2)
}
