package v1

import (
	"net/http"
	"strings"

	"github.com/borjaalbers/Expense-Tracker/internal/auth"
	"github.com/borjaalbers/Expense-Tracker/internal/httputil"
	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the routes for authentication with
// the RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup, tokens *auth.TokenManager) {
	r.OPTIONS("/signup", OptionsAuth)
	r.POST("/signup", Signup(tokens))

	r.OPTIONS("/signin", OptionsAuth)
	r.POST("/signin", Signin(tokens))

	r.OPTIONS("/signout", OptionsAuth)
	r.POST("/signout", Signout)
}

// Credentials is the request body for signup and signin.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthUser is the user representation returned by auth endpoints.
type AuthUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// OptionsAuth returns an empty response with the HTTP Header "allow" set to
// the allowed HTTP verbs.
func OptionsAuth(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Signup creates a new user account and signs it in.
func Signup(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials Credentials
		err := httputil.BindData(c, &credentials)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		credentials.Username = strings.TrimSpace(credentials.Username)
		if credentials.Username == "" || credentials.Password == "" {
			c.JSON(status(errCredentialsMissing), httpError{Error: errCredentialsMissing.Error()})
			return
		}

		hash, err := auth.HashPassword(credentials.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}

		user := models.User{Username: credentials.Username, PasswordHash: hash}
		err = models.DB.Create(&user).Error
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		token, err := tokens.Issue(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}

		c.JSON(http.StatusCreated, AuthResponse{
			Token: token,
			User:  AuthUser{ID: user.ID.String(), Username: user.Username},
		})
	}
}

// Signin verifies the credentials and returns a fresh token.
func Signin(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials Credentials
		err := httputil.BindData(c, &credentials)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		credentials.Username = strings.TrimSpace(credentials.Username)
		if credentials.Username == "" || credentials.Password == "" {
			c.JSON(status(errCredentialsMissing), httpError{Error: errCredentialsMissing.Error()})
			return
		}

		// The same error is returned for unknown users and wrong passwords
		// so that usernames can not be probed
		user, err := models.FindUserByUsername(models.DB, credentials.Username)
		if err != nil || !auth.CheckPassword(user.PasswordHash, credentials.Password) {
			c.JSON(status(errCredentialsInvalid), httpError{Error: errCredentialsInvalid.Error()})
			return
		}

		token, err := tokens.Issue(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: models.ErrGeneral.Error()})
			return
		}

		c.JSON(http.StatusOK, AuthResponse{
			Token: token,
			User:  AuthUser{ID: user.ID.String(), Username: user.Username},
		})
	}
}

// Signout exists for API symmetry. Tokens are stateless, clients discard
// them on signout.
func Signout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
