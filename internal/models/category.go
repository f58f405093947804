package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a user-defined category name that can be selected for expenses.
type Category struct {
	DefaultModel
	User   User      `json:"-"`
	UserID uuid.UUID `json:"userId" gorm:"uniqueIndex:category_user_name"`
	Name   string    `json:"name" gorm:"uniqueIndex:category_user_name"`
}

// defaultCategories are seeded for users who do not have any categories yet.
var defaultCategories = []string{
	"Food",
	"Transport",
	"Shopping",
	"Bills",
	"Entertainment",
	"Health",
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// Categories returns all categories of the user, sorted by name. If the user
// does not have any categories yet, the default set is created first.
func (u User) Categories(db *gorm.DB) ([]Category, error) {
	var count int64
	err := db.Model(&Category{}).Where(&Category{UserID: u.ID}).Count(&count).Error
	if err != nil {
		return nil, err
	}

	if count == 0 {
		for _, name := range defaultCategories {
			err = db.Create(&Category{UserID: u.ID, Name: name}).Error
			if err != nil {
				return nil, err
			}
		}
	}

	var categories []Category
	err = db.
		Where(&Category{UserID: u.ID}).
		Order("name ASC").
		Find(&categories).Error

	return categories, err
}
