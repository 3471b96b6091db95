package model

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAll is the sentinel category name meaning "no category filter".
const CategoryAll = "All"

// Record is one persisted expense entry (one row in expenses.csv).
type Record struct {
	Date     time.Time // calendar date, no time component
	Category string
	Amount   decimal.Decimal // strictly positive
}

// RecordSet is an ordered, read-only snapshot of validated records in file
// order. It is rebuilt wholesale on every reload and never mutated in place;
// filters return new sets.
type RecordSet []Record

// FilterByCategory returns the records whose category equals name exactly.
// CategoryAll returns the receiver unfiltered.
func (rs RecordSet) FilterByCategory(name string) RecordSet {
	if name == CategoryAll {
		return rs
	}
	var out RecordSet
	for _, r := range rs {
		if r.Category == name {
			out = append(out, r)
		}
	}
	return out
}

// FilterByDateRange returns the records dated within [start, end] inclusive.
// A start after end yields an empty set, never an error.
func (rs RecordSet) FilterByDateRange(start, end time.Time) RecordSet {
	var out RecordSet
	for _, r := range rs {
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Total sums all record amounts.
func (rs RecordSet) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range rs {
		total = total.Add(r.Amount)
	}
	return total
}

// Categories returns the distinct category names, sorted.
func (rs RecordSet) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rs {
		if !seen[r.Category] {
			seen[r.Category] = true
			out = append(out, r.Category)
		}
	}
	sort.Strings(out)
	return out
}

// SortedByDateDesc returns a copy sorted most recent first, preserving file
// order among records on the same date.
func (rs RecordSet) SortedByDateDesc() RecordSet {
	out := make(RecordSet, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
