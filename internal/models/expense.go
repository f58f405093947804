package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCategory is used for expenses without an explicit category.
const DefaultCategory = "Uncategorized"

// ExpenseDateFormat is the layout for expense dates. Expenses track a
// calendar date without a time component.
const ExpenseDateFormat = "2006-01-02"

// Expense is a single spending record of a user.
//
// The category is stored by name, not as a foreign key. Deleting a Category
// resource therefore never affects expenses that reference its name.
type Expense struct {
	DefaultModel
	User     User            `json:"-"`
	UserID   uuid.UUID       `json:"userId" gorm:"index"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Category string          `json:"category"`
	Date     string          `json:"date"` // Calendar date in YYYY-MM-DD format
	Note     string          `json:"note"`
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Category = strings.TrimSpace(e.Category)
	e.Note = strings.TrimSpace(e.Note)

	if e.Category == "" {
		e.Category = DefaultCategory
	}

	if e.Date != "" {
		if _, err := time.Parse(ExpenseDateFormat, e.Date); err != nil {
			return ErrDateFormat
		}
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(e.Amount) {
		return ErrAmountNotPositive
	}

	return nil
}
