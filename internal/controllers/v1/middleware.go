package v1

import (
	"strings"

	"github.com/borjaalbers/Expense-Tracker/internal/auth"
	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// contextUser is the gin context key the authenticated user is stored under.
const contextUser = "tracker-user"

// RequireAuth resolves the bearer token of the request to a user and aborts
// with 401 if that is not possible.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(status(errAuthRequired), httpError{
				Error: errAuthRequired.Error(),
			})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		// The token may outlive the account
		var user models.User
		err = models.DB.First(&user, "id = ?", userID).Error
		if err != nil {
			c.AbortWithStatusJSON(status(errAuthRequired), httpError{
				Error: errAuthRequired.Error(),
			})
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// currentUser returns the authenticated user set by RequireAuth.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}
