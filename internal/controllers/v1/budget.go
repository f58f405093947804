package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/borjaalbers/Expense-Tracker/internal/httputil"
	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/borjaalbers/Expense-Tracker/internal/report"
	"github.com/borjaalbers/Expense-Tracker/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for the monthly budget with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsBudget)
		r.GET("", GetBudget)
		r.POST("", SetBudget)
	}
}

// BudgetEditable represents all user configurable parameters of a budget.
type BudgetEditable struct {
	Month types.Month     `json:"month"`
	Limit decimal.Decimal `json:"limit"`
}

// BudgetResponse is the response for a budget update. It returns the stored
// budget together with its current evaluation.
type BudgetResponse struct {
	Budget models.Budget     `json:"budget"`
	Status report.Evaluation `json:"status"`
}

// OptionsBudget returns an empty response with the HTTP Header
// "allow" set to the allowed HTTP verbs.
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// budgetMonth determines the month a budget request refers to. Without an
// explicit month the current month in UTC is used.
func budgetMonth(c *gin.Context) (types.Month, bool) {
	query := c.Query("month")
	if query == "" {
		return types.MonthOf(time.Now().UTC()), true
	}

	month, err := types.ParseMonth(query)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: errMonthFormat.Error()})
		return types.Month{}, false
	}

	return month, true
}

// evaluate computes the budget evaluation for one month of the user's
// expenses.
func evaluate(user models.User, month types.Month, limit *decimal.Decimal) (report.Evaluation, error) {
	expenses, err := user.Expenses(models.DB)
	if err != nil {
		return report.Evaluation{}, err
	}

	spent := decimal.Zero
	for _, total := range report.MonthlyTotals(expenses) {
		if total.Month.Equal(month) {
			spent = total.Total
			break
		}
	}

	return report.EvaluateBudget(month, limit, spent, time.Now().UTC()), nil
}

// GetBudget returns the budget evaluation for a month. Months without a
// configured budget are reported with the "no_budget" status.
func GetBudget(c *gin.Context) {
	month, ok := budgetMonth(c)
	if !ok {
		return
	}

	user := currentUser(c)

	var limit *decimal.Decimal
	budget, err := user.Budget(models.DB, month)
	if err == nil {
		limit = &budget.LimitAmount
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	evaluation, err := evaluate(user, month, limit)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, evaluation)
}

// SetBudget creates or replaces the budget for a month.
func SetBudget(c *gin.Context) {
	var editable BudgetEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if editable.Month.IsZero() {
		editable.Month = types.MonthOf(time.Now().UTC())
	}

	if !editable.Limit.IsPositive() {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrBudgetLimitNotPositive.Error()})
		return
	}

	user := currentUser(c)
	budget, err := user.UpsertBudget(models.DB, editable.Month, editable.Limit)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	evaluation, err := evaluate(user, budget.Month, &budget.LimitAmount)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Budget: budget, Status: evaluation})
}
