// Package report implements the computations behind the statistics and
// budget endpoints: scope filtering, aggregation and budget evaluation.
//
// All functions in this package are pure. They operate on expense snapshots
// passed by value and never touch the database.
package report

import (
	"fmt"
	"time"

	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/borjaalbers/Expense-Tracker/internal/types"
)

// Scope is a transient month or year selection used to filter expenses
// before aggregation. The zero value matches all expenses.
type Scope struct {
	month types.Month
	year  int
}

// MonthScope returns a Scope matching all expenses in the given month.
func MonthScope(month types.Month) Scope {
	return Scope{month: month}
}

// YearScope returns a Scope matching all expenses in the given year.
func YearScope(year int) Scope {
	return Scope{year: year}
}

// AllScope returns a Scope matching every expense.
func AllScope() Scope {
	return Scope{}
}

// prefix returns the date prefix expenses are matched against.
// An empty prefix matches everything.
func (s Scope) prefix() string {
	if !s.month.IsZero() {
		return s.month.String() + "-"
	}

	if s.year != 0 {
		return fmt.Sprintf("%04d-", s.year)
	}

	return ""
}

// Filter returns the expenses matching the scope. Matching is done on the
// date prefix, so expenses without a date only match the all-scope.
func (s Scope) Filter(expenses []models.Expense) []models.Expense {
	prefix := s.prefix()
	if prefix == "" {
		return expenses
	}

	matched := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if len(expense.Date) >= len(prefix) && expense.Date[:len(prefix)] == prefix {
			matched = append(matched, expense)
		}
	}

	return matched
}

// Bounds returns the first and last calendar day covered by the scope.
// The second return value is false for the all-scope, which has no bounds.
func (s Scope) Bounds() (from, to time.Time, ok bool) {
	if !s.month.IsZero() {
		return s.month.FirstDay(), s.month.LastDay(), true
	}

	if s.year != 0 {
		return time.Date(s.year, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(s.year, time.December, 31, 0, 0, 0, 0, time.UTC),
			true
	}

	return time.Time{}, time.Time{}, false
}
