package expenses

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ValidationCode identifies which admission rule a candidate expense broke.
type ValidationCode string

const (
	EmptyCategory     ValidationCode = "empty-category"
	NonPositiveAmount ValidationCode = "non-positive-amount"
	InvalidDate       ValidationCode = "invalid-date"
)

// ValidationError describes a rejected candidate expense. Validation always
// happens before any write, so a rejected expense is never persisted.
type ValidationError struct {
	Code   ValidationCode
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Validate admits or rejects a candidate expense. Rules run in a fixed
// order: trimmed category must be non-empty, then amount must be strictly
// positive. Pure predicate, no side effects.
func Validate(category string, amount decimal.Decimal) error {
	if strings.TrimSpace(category) == "" {
		return &ValidationError{
			Code:   EmptyCategory,
			Reason: "category cannot be empty",
		}
	}
	if !amount.IsPositive() {
		return &ValidationError{
			Code:   NonPositiveAmount,
			Reason: fmt.Sprintf("amount must be greater than 0, got %s", amount),
		}
	}
	return nil
}

// ParseDate checks a date arriving as free text at the CLI boundary, where
// no date picker constrains the input.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &ValidationError{
			Code:   InvalidDate,
			Reason: fmt.Sprintf("invalid date %q, want YYYY-MM-DD", s),
		}
	}
	return d, nil
}
