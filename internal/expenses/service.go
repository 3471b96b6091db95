package expenses

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
	"github.com/outlay-dev/outlay/internal/report"
)

// Service wires validation, the store, and reporting into the operations
// the presentation layer needs. Every call is one synchronous pass over the
// current file contents.
type Service struct {
	store  *Store
	format *report.Formatter
}

// NewService creates a Service over a store and a display formatter.
func NewService(store *Store, format *report.Formatter) *Service {
	return &Service{store: store, format: format}
}

// Submit validates and persists one expense. A nil return means the store
// changed and the caller should re-read; on error nothing was written.
func (s *Service) Submit(date time.Time, category string, amount decimal.Decimal) error {
	if err := Validate(category, amount); err != nil {
		return err
	}
	return s.store.Append(model.Record{
		Date:     date,
		Category: strings.TrimSpace(category),
		Amount:   amount,
	})
}

// Filter narrows a dashboard to a category and/or an inclusive date range.
type Filter struct {
	Category string    // empty or model.CategoryAll means all categories
	From     time.Time // zero means unbounded below
	To       time.Time // zero means unbounded above
}

func (f Filter) apply(rs model.RecordSet) model.RecordSet {
	if f.Category != "" {
		rs = rs.FilterByCategory(f.Category)
	}
	if !f.From.IsZero() || !f.To.IsZero() {
		to := f.To
		if to.IsZero() {
			to = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		}
		rs = rs.FilterByDateRange(f.From, to)
	}
	return rs
}

// DashboardData is everything the presentation layer needs for one view of
// the filtered expenses. Summaries are recomputed from the file on every
// call; nothing is cached or persisted.
type DashboardData struct {
	TotalAmount           decimal.Decimal
	TransactionCount      int
	AverageAmount         decimal.Decimal
	DistinctCategoryCount int

	MonthlyTotals  []report.MonthTotal
	CategoryTotals []report.CategoryTotal
	MonthlyRows    []report.Row
	CategoryRows   []report.Row
	RecordRows     []report.RecordRow // filtered records, most recent first

	// FilterOptions is the category choices for a filter control: "All"
	// followed by the distinct categories in the whole store, sorted.
	// Computed before filtering so a narrow filter still offers the rest.
	FilterOptions []string

	SkippedRows int // malformed store rows dropped during reload
}

// Dashboard reloads the store and computes the filtered aggregate view.
// A load failure returns the error together with an empty DashboardData so
// the caller can show a warning and degrade to "no data".
func (s *Service) Dashboard(filter Filter) (DashboardData, error) {
	all, skipped, err := s.store.Reload()
	if err != nil {
		return DashboardData{}, err
	}

	rs := filter.apply(all)

	data := DashboardData{
		TotalAmount:           rs.Total(),
		TransactionCount:      len(rs),
		AverageAmount:         report.Average(rs),
		DistinctCategoryCount: len(rs.Categories()),
		MonthlyTotals:         report.Monthly(rs),
		CategoryTotals:        report.ByCategory(rs),
		FilterOptions:         append([]string{model.CategoryAll}, all.Categories()...),
		SkippedRows:           skipped,
	}
	data.MonthlyRows = s.format.MonthlyRows(data.MonthlyTotals)
	data.CategoryRows = s.format.CategoryRows(data.CategoryTotals)
	data.RecordRows = s.format.RecordRows(rs.SortedByDateDesc())
	return data, nil
}

// FormatCurrency exposes the service's display formatting to callers that
// print standalone amounts.
func (s *Service) FormatCurrency(d decimal.Decimal) string {
	return s.format.FormatCurrency(d)
}
