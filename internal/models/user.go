package models

import (
	"strings"

	"gorm.io/gorm"
)

// User is an account holder. Every other resource belongs to exactly one user.
type User struct {
	DefaultModel
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)

	if u.Username == "" {
		return ErrUsernameEmpty
	}

	return nil
}

// FindUserByUsername returns the user with the given username.
func FindUserByUsername(db *gorm.DB, username string) (User, error) {
	var user User
	err := db.Where(&User{Username: username}).First(&user).Error
	return user, err
}

// Expenses returns all expenses of the user, most recent date first.
func (u User) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.
		Where(&Expense{UserID: u.ID}).
		Order("date DESC, created_at DESC").
		Find(&expenses).Error

	return expenses, err
}
