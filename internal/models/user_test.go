package models_test

import (
	"strings"

	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserTrimWhitespace() {
	user := models.User{Username: "  frank \t", PasswordHash: "x"}
	err := models.DB.Create(&user).Error
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), "frank", user.Username)
}

func (suite *TestSuiteStandard) TestUserEmptyUsername() {
	user := models.User{Username: "   ", PasswordHash: "x"}
	err := models.DB.Create(&user).Error

	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrUsernameEmpty)
}

func (suite *TestSuiteStandard) TestUserUniqueUsername() {
	_ = suite.createTestUser("frank")

	user := models.User{Username: "frank", PasswordHash: "x"}
	err := models.DB.Create(&user).Error

	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrUsernameNotUnique)
}

func (suite *TestSuiteStandard) TestFindUserByUsername() {
	created := suite.createTestUser("frank")

	user, err := models.FindUserByUsername(models.DB, "frank")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), created.ID, user.ID)

	_, err = models.FindUserByUsername(models.DB, "nobody")
	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.True(suite.T(), strings.Contains(err.Error(), "there is no user matching your query"), err.Error())
}

func (suite *TestSuiteStandard) TestUserExpensesOrder() {
	user := suite.createTestUser("frank")
	other := suite.createTestUser("other")

	_ = suite.createTestExpense(user.ID, 10, "Food", "2024-01-15")
	_ = suite.createTestExpense(user.ID, 20, "Food", "2024-03-01")
	_ = suite.createTestExpense(user.ID, 30, "Food", "2024-02-10")
	_ = suite.createTestExpense(other.ID, 99, "Food", "2024-12-31")

	expenses, err := user.Expenses(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), expenses, 3)

	assert.Equal(suite.T(), "2024-03-01", expenses[0].Date)
	assert.Equal(suite.T(), "2024-02-10", expenses[1].Date)
	assert.Equal(suite.T(), "2024-01-15", expenses[2].Date)
}
