package report

import (
	"time"

	"github.com/borjaalbers/Expense-Tracker/internal/types"
	"github.com/shopspring/decimal"
)

// BudgetStatus classifies a month's spending against its limit.
type BudgetStatus string

const (
	StatusOK       BudgetStatus = "ok"
	StatusWarning  BudgetStatus = "warning"
	StatusOver     BudgetStatus = "over"
	StatusNoBudget BudgetStatus = "no_budget"
)

// PaceColor is the pacing signal used for progress bar coloring. It compares
// the average daily spend so far against the daily pace the limit allows and
// is finer grained than BudgetStatus: an "ok" month can already be yellow
// when spending runs ahead of pace.
type PaceColor string

const (
	ColorGreen  PaceColor = "green"
	ColorYellow PaceColor = "yellow"
	ColorRed    PaceColor = "red"
)

// warningRatio is the fraction of the limit at which the status switches
// from ok to warning.
var warningRatio = decimal.NewFromFloat(0.9)

// Evaluation is the budget status of a single month.
type Evaluation struct {
	Month     types.Month      `json:"month"`
	Limit     *decimal.Decimal `json:"limit"`
	Spent     decimal.Decimal  `json:"spent"`
	Remaining *decimal.Decimal `json:"remaining"`
	Status    BudgetStatus     `json:"status"`
	Color     PaceColor        `json:"color"`
}

// EvaluateBudget computes the budget status for a month. A nil limit means
// no budget is set for the month. The caller guarantees a positive limit,
// this is enforced at the write boundary.
//
// now determines how many days of the month count as elapsed for pacing. A
// month that is not the current one is treated as fully elapsed.
func EvaluateBudget(month types.Month, limit *decimal.Decimal, spent decimal.Decimal, now time.Time) Evaluation {
	evaluation := Evaluation{
		Month:  month,
		Spent:  spent,
		Status: StatusNoBudget,
		Color:  ColorGreen,
	}

	if limit == nil {
		return evaluation
	}

	evaluation.Limit = limit
	remaining := limit.Sub(spent)
	evaluation.Remaining = &remaining

	switch {
	case spent.GreaterThanOrEqual(*limit):
		evaluation.Status = StatusOver
	case spent.GreaterThanOrEqual(limit.Mul(warningRatio)):
		evaluation.Status = StatusWarning
	default:
		evaluation.Status = StatusOK
	}

	evaluation.Color = paceColor(month, *limit, spent, now)
	return evaluation
}

// paceColor compares spent/elapsedDays against limit/daysInMonth. The
// divisions are replaced by cross multiplication so that the 10% tolerance
// check is exact.
func paceColor(month types.Month, limit, spent decimal.Decimal, now time.Time) PaceColor {
	days := int64(month.Days())

	elapsed := days
	if month.Contains(now) {
		elapsed = int64(now.Day())
	}
	if elapsed < 1 {
		elapsed = 1
	}

	// spent/elapsed > (limit/days)*1.1  <=>  spent*days*10 > limit*elapsed*11
	spentScaled := spent.Mul(decimal.NewFromInt(days))
	limitScaled := limit.Mul(decimal.NewFromInt(elapsed))

	if spentScaled.Mul(decimal.NewFromInt(10)).GreaterThan(limitScaled.Mul(decimal.NewFromInt(11))) {
		return ColorRed
	}

	if spentScaled.GreaterThan(limitScaled) {
		return ColorYellow
	}

	return ColorGreen
}
