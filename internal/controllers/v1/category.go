package v1

import (
	"net/http"

	"github.com/borjaalbers/Expense-Tracker/internal/httputil"
	"github.com/borjaalbers/Expense-Tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.DELETE("/:id", DeleteCategory)
	}
}

// CategoryEditable represents all user configurable parameters of a category.
type CategoryEditable struct {
	Name string `json:"name"`
}

// OptionsCategoryList returns an empty response with the HTTP Header
// "allow" set to the allowed HTTP verbs.
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsCategoryDetail returns an empty response with the HTTP Header
// "allow" set to the allowed HTTP verbs.
func OptionsCategoryDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user := currentUser(c)
	err = models.DB.First(&models.Category{}, "id = ? AND user_id = ?", uri.ID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsDelete(c)
}

// GetCategories returns the categories of the authenticated user, sorted by
// name. For users without categories the default set is seeded first.
func GetCategories(c *gin.Context) {
	categories, err := currentUser(c).Categories(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a new category for the authenticated user.
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	category := models.Category{UserID: currentUser(c).ID, Name: editable.Name}
	err = models.DB.Create(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// DeleteCategory removes a category from the selectable list. Expenses
// referencing the category name are not changed, they keep their historical
// category.
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	user := currentUser(c)

	var category models.Category
	err = models.DB.First(&category, "id = ? AND user_id = ?", uri.ID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// Delete permanently so that the name can be used again
	err = models.DB.Unscoped().Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
