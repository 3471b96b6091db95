package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/outlay-dev/outlay/internal/report"
)

var (
	// Section titles
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true)

	// Table column headers
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)

	// Money values
	amountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))

	// Trend chart bars
	barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

	// Hints, footers, empty-state messages
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
)

// pad right-pads s to width using display width, so multi-byte currency
// glyphs line up.
func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// renderSummaryTable renders label/amount rows under a title.
func renderSummaryTable(title, labelHeader string, rows []report.Row) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")

	labelWidth := lipgloss.Width(labelHeader)
	for _, r := range rows {
		if w := lipgloss.Width(r.Label); w > labelWidth {
			labelWidth = w
		}
	}

	b.WriteString(tableHeaderStyle.Render(pad(labelHeader, labelWidth)+"  Total Amount") + "\n")
	for _, r := range rows {
		b.WriteString(pad(r.Label, labelWidth) + "  " + amountStyle.Render(r.Amount) + "\n")
	}
	return b.String()
}

// renderRecordsTable renders date/category/amount rows.
func renderRecordsTable(rows []report.RecordRow) string {
	var b strings.Builder

	catWidth := lipgloss.Width("Category")
	for _, r := range rows {
		if w := lipgloss.Width(r.Category); w > catWidth {
			catWidth = w
		}
	}

	b.WriteString(tableHeaderStyle.Render("Date        "+pad("Category", catWidth)+"  Amount") + "\n")
	for _, r := range rows {
		b.WriteString(r.Date + "  " + pad(r.Category, catWidth) + "  " + amountStyle.Render(r.Amount) + "\n")
	}
	return b.String()
}

// maxBarWidth caps the trend chart bars.
const maxBarWidth = 40

// renderTrendChart renders monthly totals as proportional horizontal bars.
func renderTrendChart(totals []report.MonthTotal, formatted []report.Row) string {
	if len(totals) == 0 {
		return ""
	}

	maxTotal := totals[0].Total
	for _, t := range totals[1:] {
		if t.Total.GreaterThan(maxTotal) {
			maxTotal = t.Total
		}
	}

	var b strings.Builder
	for i, t := range totals {
		width := 0
		if maxTotal.IsPositive() {
			width = int(t.Total.Div(maxTotal).InexactFloat64() * maxBarWidth)
		}
		if width < 1 {
			width = 1
		}
		bar := barStyle.Render(strings.Repeat("▇", width))
		b.WriteString(t.Month + "  " + bar + " " + amountStyle.Render(formatted[i].Amount) + "\n")
	}
	return b.String()
}
