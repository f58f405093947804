package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrUsernameEmpty     = errors.New("the username must not be empty")
	ErrUsernameNotUnique = errors.New("this username is already taken")
)

// Expense errors
var (
	ErrAmountNotPositive = errors.New("expense amounts must be larger than zero")
	ErrDateFormat        = errors.New("expense dates must be in YYYY-MM-DD format")
)

// Category errors
var (
	ErrCategoryNameEmpty     = errors.New("the category name must not be empty")
	ErrCategoryNameNotUnique = errors.New("you already have a category with this name")
)

// Budget errors
var (
	ErrBudgetLimitNotPositive = errors.New("budget limits must be larger than zero")
	ErrBudgetMonthNotUnique   = errors.New("you can not create multiple budgets for the same month")
)
