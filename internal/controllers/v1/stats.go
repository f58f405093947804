package v1

import (
	"net/http"
	"strconv"

	"github.com/borjaalbers/Expense-Tracker/internal/httputil"
	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/borjaalbers/Expense-Tracker/internal/report"
	"github.com/borjaalbers/Expense-Tracker/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterStatsRoutes registers the routes for aggregated expense data with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", GetSummary)

	r.OPTIONS("/monthly", httputil.OptionsGet)
	r.GET("/monthly", GetMonthly)
}

// scopeFromQuery builds the reporting scope from the "month" and "year"
// query parameters. "month" takes precedence when both are given. Without
// either parameter all expenses are in scope.
func scopeFromQuery(c *gin.Context) (report.Scope, bool) {
	if query := c.Query("month"); query != "" {
		month, err := types.ParseMonth(query)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: errMonthFormat.Error()})
			return report.Scope{}, false
		}

		return report.MonthScope(month), true
	}

	if query := c.Query("year"); query != "" {
		year, err := strconv.Atoi(query)
		if err != nil || year < 1 {
			c.JSON(http.StatusBadRequest, httpError{Error: errYearFormat.Error()})
			return report.Scope{}, false
		}

		return report.YearScope(year), true
	}

	return report.AllScope(), true
}

// GetSummary returns the total spending per category for the requested
// scope.
func GetSummary(c *gin.Context) {
	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}

	expenses, err := currentUser(c).Expenses(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, report.CategorySummary(scope.Filter(expenses)))
}

// GetMonthly returns the total spending per month for the requested scope,
// keyed by month in ascending order.
func GetMonthly(c *gin.Context) {
	scope, ok := scopeFromQuery(c)
	if !ok {
		return
	}

	expenses, err := currentUser(c).Expenses(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	totals := report.MonthlyTotals(scope.Filter(expenses))

	monthly := make(map[string]decimal.Decimal, len(totals))
	for _, total := range totals {
		monthly[total.Month.String()] = total.Total
	}

	c.JSON(http.StatusOK, monthly)
}
