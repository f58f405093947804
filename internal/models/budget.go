package models

import (
	"github.com/borjaalbers/Expense-Tracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the spending limit of a user for a single month.
type Budget struct {
	DefaultModel
	User        User            `json:"-"`
	UserID      uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_month"`
	Month       types.Month     `json:"month" gorm:"uniqueIndex:budget_user_month"`
	LimitAmount decimal.Decimal `json:"limit" gorm:"type:DECIMAL(20,8)"`
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(b.LimitAmount) {
		return ErrBudgetLimitNotPositive
	}

	return nil
}

// Budget returns the budget of the user for a specific month.
func (u User) Budget(db *gorm.DB, month types.Month) (Budget, error) {
	var budget Budget
	err := db.
		Where("user_id = ? AND month = ?", u.ID, month).
		First(&budget).Error

	return budget, err
}

// UpsertBudget creates the budget for the month or, if it already exists,
// updates its limit. At most one budget exists per user and month.
func (u User) UpsertBudget(db *gorm.DB, month types.Month, limit decimal.Decimal) (Budget, error) {
	if !limit.IsPositive() {
		return Budget{}, ErrBudgetLimitNotPositive
	}

	budget := Budget{UserID: u.ID, Month: month, LimitAmount: limit}
	err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"limit_amount", "updated_at"}),
		}).
		Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	return u.Budget(db, month)
}
