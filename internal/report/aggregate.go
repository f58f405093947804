package report

import (
	"sort"

	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/borjaalbers/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

// CategorySummary groups the expenses by category name and sums the amounts
// per group. Expenses without a category are counted as "Uncategorized".
func CategorySummary(expenses []models.Expense) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)

	for _, expense := range expenses {
		category := expense.Category
		if category == "" {
			category = models.DefaultCategory
		}

		sums[category] = sums[category].Add(expense.Amount)
	}

	return sums
}

// MonthTotal is the sum of all expense amounts in a single month.
type MonthTotal struct {
	Month types.Month
	Total decimal.Decimal
}

// MonthlyTotals groups the expenses by the year-month prefix of their date
// and sums the amounts per group. The totals are returned in chronological
// order. Expenses without a parseable date are skipped.
func MonthlyTotals(expenses []models.Expense) []MonthTotal {
	sums := make(map[types.Month]decimal.Decimal)

	for _, expense := range expenses {
		if len(expense.Date) < 7 {
			continue
		}

		month, err := types.ParseMonth(expense.Date[:7])
		if err != nil {
			continue
		}

		sums[month] = sums[month].Add(expense.Amount)
	}

	totals := make([]MonthTotal, 0, len(sums))
	for month, total := range sums {
		totals = append(totals, MonthTotal{Month: month, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month.Before(totals[j].Month)
	})

	return totals
}
