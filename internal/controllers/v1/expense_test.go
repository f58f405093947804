package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/borjaalbers/Expense-Tracker/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	token := suite.signup("frank")

	expense := suite.createTestExpense(token, map[string]any{
		"amount":   12.5,
		"category": "Food",
		"date":     "2024-01-15",
		"note":     "Lunch",
	})

	assert.True(suite.T(), expense.Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(suite.T(), "Food", expense.Category)
	assert.Equal(suite.T(), "2024-01-15", expense.Date)
	assert.Equal(suite.T(), "Lunch", expense.Note)
	assert.NotEqual(suite.T(), uuid.Nil, expense.ID)
}

func (suite *TestSuiteStandard) TestCreateExpenseDefaults() {
	token := suite.signup("frank")

	expense := suite.createTestExpense(token, map[string]any{
		"amount": 3,
	})

	assert.Equal(suite.T(), models.DefaultCategory, expense.Category)
	assert.Equal(suite.T(), time.Now().UTC().Format(models.ExpenseDateFormat), expense.Date)
}

func (suite *TestSuiteStandard) TestCreateExpenseAmountNotPositive() {
	token := suite.signup("frank")

	for _, amount := range []float64{0, -5} {
		recorder := test.Request(suite.tokens, suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
			"amount": amount,
		}, test.BearerHeader(token))

		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code, recorder.Body.String())
	}
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalidDate() {
	token := suite.signup("frank")

	recorder := test.Request(suite.tokens, suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
		"amount": 5,
		"date":   "15.01.2024",
	}, test.BearerHeader(token))

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestGetExpensesSorted() {
	token := suite.signup("frank")

	_ = suite.createTestExpense(token, map[string]any{"amount": 1, "date": "2024-01-15"})
	_ = suite.createTestExpense(token, map[string]any{"amount": 2, "date": "2024-03-01"})
	_ = suite.createTestExpense(token, map[string]any{"amount": 3, "date": "2024-02-10"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodGet, "/v1/expenses", nil, test.BearerHeader(token))
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expenses)

	require.Len(suite.T(), expenses, 3)
	assert.Equal(suite.T(), "2024-03-01", expenses[0].Date)
	assert.Equal(suite.T(), "2024-02-10", expenses[1].Date)
	assert.Equal(suite.T(), "2024-01-15", expenses[2].Date)
}

func (suite *TestSuiteStandard) TestGetExpensesFilters() {
	token := suite.signup("frank")

	_ = suite.createTestExpense(token, map[string]any{"amount": 1, "category": "Food", "date": "2024-01-15"})
	_ = suite.createTestExpense(token, map[string]any{"amount": 2, "category": "Transport", "date": "2024-02-10"})
	_ = suite.createTestExpense(token, map[string]any{"amount": 3, "category": "Food", "date": "2024-03-01"})

	tests := []struct {
		query string
		count int
	}{
		{"category=Food", 2},
		{"category=Transport", 1},
		{"category=Unknown", 0},
		{"date_from=2024-02-01", 2},
		{"date_to=2024-02-28", 2},
		{"date_from=2024-02-01&date_to=2024-02-28", 1},
		{"category=Food&date_from=2024-02-01", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.tokens, suite.T(), http.MethodGet, "/v1/expenses?"+tt.query, nil, test.BearerHeader(token))
		require.Equal(suite.T(), http.StatusOK, recorder.Code, tt.query)

		var expenses []models.Expense
		test.DecodeResponse(suite.T(), &recorder, &expenses)
		assert.Len(suite.T(), expenses, tt.count, tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetExpensesIsolatedPerUser() {
	frankToken := suite.signup("frank")
	zeldaToken := suite.signup("zelda")

	_ = suite.createTestExpense(frankToken, map[string]any{"amount": 1, "date": "2024-01-15"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodGet, "/v1/expenses", nil, test.BearerHeader(zeldaToken))
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expenses)
	assert.Len(suite.T(), expenses, 0)
}

func (suite *TestSuiteStandard) TestGetExpense() {
	token := suite.signup("frank")
	created := suite.createTestExpense(token, map[string]any{"amount": 1, "date": "2024-01-15"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses/%s", created.ID), nil, test.BearerHeader(token))
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var expense models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expense)
	assert.Equal(suite.T(), created.ID, expense.ID)
}

func (suite *TestSuiteStandard) TestGetExpenseOfOtherUserNotFound() {
	frankToken := suite.signup("frank")
	zeldaToken := suite.signup("zelda")

	created := suite.createTestExpense(frankToken, map[string]any{"amount": 1, "date": "2024-01-15"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses/%s", created.ID), nil, test.BearerHeader(zeldaToken))
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	token := suite.signup("frank")
	created := suite.createTestExpense(token, map[string]any{"amount": 10, "category": "Food", "date": "2024-01-15"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", created.ID), map[string]any{
		"note": "Brunch",
	}, test.BearerHeader(token))
	require.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var expense models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expense)

	// Fields not in the request body are untouched
	assert.Equal(suite.T(), "Brunch", expense.Note)
	assert.Equal(suite.T(), "Food", expense.Category)
	assert.True(suite.T(), expense.Amount.Equal(decimal.RequireFromString("10")))
}

func (suite *TestSuiteStandard) TestUpdateExpenseAmountNotPositive() {
	token := suite.signup("frank")
	created := suite.createTestExpense(token, map[string]any{"amount": 10, "date": "2024-01-15"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", created.ID), map[string]any{
		"amount": -1,
	}, test.BearerHeader(token))

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestUpdateExpenseInvalidDate() {
	token := suite.signup("frank")
	created := suite.createTestExpense(token, map[string]any{"amount": 10, "date": "2024-03-05"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", created.ID), map[string]any{
		"date": "not-a-date",
	}, test.BearerHeader(token))
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code, recorder.Body.String())

	// The stored date is untouched
	recorder = test.Request(suite.tokens, suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses/%s", created.ID), nil, test.BearerHeader(token))
	require.Equal(suite.T(), http.StatusOK, recorder.Code)

	var expense models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expense)
	assert.Equal(suite.T(), "2024-03-05", expense.Date)
}

func (suite *TestSuiteStandard) TestUpdateExpenseNormalizesFields() {
	token := suite.signup("frank")
	created := suite.createTestExpense(token, map[string]any{"amount": 10, "category": "Food", "date": "2024-03-05"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", created.ID), map[string]any{
		"category": "  Transport  ",
		"note":     "  Monthly pass  ",
	}, test.BearerHeader(token))
	require.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var expense models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expense)
	assert.Equal(suite.T(), "Transport", expense.Category)
	assert.Equal(suite.T(), "Monthly pass", expense.Note)
}

func (suite *TestSuiteStandard) TestUpdateExpenseEmptyCategoryDefaults() {
	token := suite.signup("frank")
	created := suite.createTestExpense(token, map[string]any{"amount": 10, "category": "Food", "date": "2024-03-05"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", created.ID), map[string]any{
		"category": "",
	}, test.BearerHeader(token))
	require.Equal(suite.T(), http.StatusOK, recorder.Code, recorder.Body.String())

	var expense models.Expense
	test.DecodeResponse(suite.T(), &recorder, &expense)
	assert.Equal(suite.T(), models.DefaultCategory, expense.Category)
}

func (suite *TestSuiteStandard) TestUpdateExpenseBrokenJSON() {
	token := suite.signup("frank")
	created := suite.createTestExpense(token, map[string]any{"amount": 10, "date": "2024-01-15"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodPatch, fmt.Sprintf("/v1/expenses/%s", created.ID), `{ "note": 2" }`, test.BearerHeader(token))
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	token := suite.signup("frank")
	created := suite.createTestExpense(token, map[string]any{"amount": 10, "date": "2024-01-15"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodDelete, fmt.Sprintf("/v1/expenses/%s", created.ID), nil, test.BearerHeader(token))
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)

	recorder = test.Request(suite.tokens, suite.T(), http.MethodGet, fmt.Sprintf("/v1/expenses/%s", created.ID), nil, test.BearerHeader(token))
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

func (suite *TestSuiteStandard) TestExpenseInvalidID() {
	token := suite.signup("frank")

	recorder := test.Request(suite.tokens, suite.T(), http.MethodGet, "/v1/expenses/not-a-uuid", nil, test.BearerHeader(token))
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestExpenseOptions() {
	token := suite.signup("frank")
	created := suite.createTestExpense(token, map[string]any{"amount": 10, "date": "2024-01-15"})

	recorder := test.Request(suite.tokens, suite.T(), http.MethodOptions, "/v1/expenses", nil, test.BearerHeader(token))
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.tokens, suite.T(), http.MethodOptions, fmt.Sprintf("/v1/expenses/%s", created.ID), nil, test.BearerHeader(token))
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "GET, PATCH, DELETE", recorder.Header().Get("allow"))
}
