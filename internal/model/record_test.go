package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleSet() RecordSet {
	return RecordSet{
		{Date: date(2024, 1, 1), Category: "Food", Amount: dec("10.00")},
		{Date: date(2024, 1, 2), Category: "Travel", Amount: dec("30.00")},
		{Date: date(2024, 2, 3), Category: "Food", Amount: dec("5.00")},
	}
}

func TestFilterByCategory(t *testing.T) {
	rs := sampleSet()

	food := rs.FilterByCategory("Food")
	assert.Len(t, food, 2)
	for _, r := range food {
		assert.Equal(t, "Food", r.Category)
	}

	// Exact, case-sensitive match.
	assert.Empty(t, rs.FilterByCategory("food"))
	assert.Empty(t, rs.FilterByCategory("Shopping"))
}

func TestFilterByCategory_AllSentinel(t *testing.T) {
	rs := sampleSet()
	assert.Len(t, rs.FilterByCategory(CategoryAll), 3)
}

func TestFilterByDateRange(t *testing.T) {
	rs := sampleSet()

	jan := rs.FilterByDateRange(date(2024, 1, 1), date(2024, 1, 31))
	assert.Len(t, jan, 2)

	// Bounds are inclusive.
	exact := rs.FilterByDateRange(date(2024, 1, 2), date(2024, 1, 2))
	assert.Len(t, exact, 1)
	assert.Equal(t, "Travel", exact[0].Category)
}

func TestFilterByDateRange_StartAfterEnd(t *testing.T) {
	rs := sampleSet()
	got := rs.FilterByDateRange(date(2024, 2, 1), date(2024, 1, 1))
	assert.Empty(t, got, "inverted range is empty, not swapped")
}

func TestFiltersCompose(t *testing.T) {
	rs := sampleSet()
	got := rs.FilterByCategory("Food").FilterByDateRange(date(2024, 2, 1), date(2024, 2, 28))
	assert.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(dec("5.00")))

	// Filters never mutate the receiver.
	assert.Len(t, rs, 3)
}

func TestTotal(t *testing.T) {
	rs := sampleSet()
	assert.True(t, rs.Total().Equal(dec("45.00")), "got %s", rs.Total())
	assert.True(t, RecordSet{}.Total().IsZero())
}

func TestCategories(t *testing.T) {
	rs := sampleSet()
	assert.Equal(t, []string{"Food", "Travel"}, rs.Categories())
	assert.Empty(t, RecordSet{}.Categories())
}

func TestSortedByDateDesc(t *testing.T) {
	rs := sampleSet()
	got := rs.SortedByDateDesc()
	assert.True(t, got[0].Date.Equal(date(2024, 2, 3)))
	assert.True(t, got[2].Date.Equal(date(2024, 1, 1)))

	// Original order untouched.
	assert.True(t, rs[0].Date.Equal(date(2024, 1, 1)))
}
