package report

import (
	"github.com/shopspring/decimal"

	"github.com/outlay-dev/outlay/internal/model"
)

// Row is one presentation-ready summary line.
type Row struct {
	Label  string
	Amount string
}

// RecordRow is one presentation-ready expense line.
type RecordRow struct {
	Date     string
	Category string
	Amount   string
}

// Formatter renders aggregation output for display. It never alters the
// underlying numbers, only their textual form.
type Formatter struct {
	Symbol string // currency glyph prefix, e.g. "₹"
}

// NewFormatter creates a Formatter with the given currency symbol.
func NewFormatter(symbol string) *Formatter {
	return &Formatter{Symbol: symbol}
}

// FormatCurrency renders d with the currency symbol and exactly two
// fraction digits. Locale-independent, no thousands separators.
func (f *Formatter) FormatCurrency(d decimal.Decimal) string {
	return f.Symbol + d.StringFixed(2)
}

// MonthlyRows converts a monthly summary into ordered display rows.
func (f *Formatter) MonthlyRows(totals []MonthTotal) []Row {
	rows := make([]Row, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, Row{Label: t.Month, Amount: f.FormatCurrency(t.Total)})
	}
	return rows
}

// CategoryRows converts a category summary into ordered display rows.
func (f *Formatter) CategoryRows(totals []CategoryTotal) []Row {
	rows := make([]Row, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, Row{Label: t.Category, Amount: f.FormatCurrency(t.Total)})
	}
	return rows
}

// RecordRows converts records into display rows in the set's order.
func (f *Formatter) RecordRows(rs model.RecordSet) []RecordRow {
	rows := make([]RecordRow, 0, len(rs))
	for _, r := range rs {
		rows = append(rows, RecordRow{
			Date:     r.Date.Format("2006-01-02"),
			Category: r.Category,
			Amount:   f.FormatCurrency(r.Amount),
		})
	}
	return rows
}
