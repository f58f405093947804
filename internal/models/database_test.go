package models_test

import (
	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestConnectCreatesSchema() {
	for _, table := range []string{"users", "expenses", "categories", "budgets"} {
		assert.True(suite.T(), models.DB.Migrator().HasTable(table), "table %s does not exist", table)
	}
}

func (suite *TestSuiteStandard) TestClosedDatabaseGeneralError() {
	suite.CloseDB()

	var user models.User
	err := models.DB.First(&user).Error

	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
