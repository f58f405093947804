package v1

import (
	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters of an expense.
type ExpenseEditable struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"` // Calendar date in YYYY-MM-DD format
	Note     string          `json:"note"`
}

func (editable ExpenseEditable) model(userID uuid.UUID) models.Expense {
	return models.Expense{
		UserID:   userID,
		Amount:   editable.Amount,
		Category: editable.Category,
		Date:     editable.Date,
		Note:     editable.Note,
	}
}

// ExpenseQueryFilter contains the optional filters for the expense list.
type ExpenseQueryFilter struct {
	Category string `form:"category"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}
