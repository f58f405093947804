package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/borjaalbers/Expense-Tracker/internal/httputil"
	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// OptionsExpenseList returns an empty response with the HTTP Header "allow"
// set to the allowed HTTP verbs.
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsExpenseDetail returns an empty response with the HTTP Header
// "allow" set to the allowed HTTP verbs.
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user := currentUser(c)
	err = models.DB.First(&models.Expense{}, "id = ? AND user_id = ?", uri.ID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateExpense creates a new expense for the authenticated user.
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if !editable.Amount.IsPositive() {
		c.JSON(status(models.ErrAmountNotPositive), httpError{Error: models.ErrAmountNotPositive.Error()})
		return
	}

	// Without an explicit date the expense is booked for today
	if editable.Date == "" {
		editable.Date = time.Now().UTC().Format(models.ExpenseDateFormat)
	}

	expense := editable.model(currentUser(c).ID)
	err = models.DB.Create(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses returns the expenses of the authenticated user, most recent
// date first. The list can be narrowed with the category, date_from and
// date_to query parameters.
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	user := currentUser(c)
	q := models.DB.
		Where(&models.Expense{UserID: user.ID}).
		Order("date DESC, created_at DESC")

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	// Expenses without a date always pass the date range filters
	if filter.DateFrom != "" {
		q = q.Where("date = ? OR date >= ?", "", filter.DateFrom)
	}
	if filter.DateTo != "" {
		q = q.Where("date = ? OR date <= ?", "", filter.DateTo)
	}

	expenses := make([]models.Expense, 0)
	err := q.Find(&expenses).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetExpense returns a specific expense of the authenticated user.
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user := currentUser(c)

	var expense models.Expense
	err = models.DB.First(&expense, "id = ? AND user_id = ?", uri.ID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, expense)
}

// UpdateExpense updates an existing expense. Only values to be updated need
// to be specified.
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user := currentUser(c)

	var expense models.Expense
	err = models.DB.First(&expense, "id = ? AND user_id = ?", uri.ID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if slices.Contains(updateFields, any("Amount")) && !data.Amount.IsPositive() {
		c.JSON(status(models.ErrAmountNotPositive), httpError{Error: models.ErrAmountNotPositive.Error()})
		return
	}

	// The save hooks run against the already loaded record on a partial
	// update, so the incoming values are checked and normalized here.
	if data.Date != "" {
		_, err = time.Parse(models.ExpenseDateFormat, data.Date)
		if err != nil {
			c.JSON(status(models.ErrDateFormat), httpError{Error: models.ErrDateFormat.Error()})
			return
		}
	}

	data.Category = strings.TrimSpace(data.Category)
	data.Note = strings.TrimSpace(data.Note)

	if slices.Contains(updateFields, any("Category")) && data.Category == "" {
		data.Category = models.DefaultCategory
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model(user.ID)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense deletes an expense of the authenticated user.
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user := currentUser(c)

	var expense models.Expense
	err = models.DB.First(&expense, "id = ? AND user_id = ?", uri.ID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
