// Package v1 implements the v1 HTTP API of the expense tracker.
package v1

import (
	"errors"
	"net/http"

	"github.com/borjaalbers/Expense-Tracker/internal/auth"
	"github.com/borjaalbers/Expense-Tracker/internal/models"
	ez_uuid "github.com/borjaalbers/Expense-Tracker/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"` // ID of the resource
}

type httpError struct {
	Error string `json:"error"`
}

var (
	errAuthRequired       = errors.New("authentication required")
	errCredentialsInvalid = errors.New("invalid credentials")
	errCredentialsMissing = errors.New("username and password required")
	errMonthFormat        = errors.New("the month parameter must be in YYYY-MM format")
	errYearFormat         = errors.New("the year parameter must be a four-digit year")
)

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errAuthRequired) ||
		errors.Is(err, errCredentialsInvalid) ||
		errors.Is(err, auth.ErrTokenInvalid) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrUsernameNotUnique) ||
		errors.Is(err, models.ErrCategoryNameNotUnique) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}
