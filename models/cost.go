package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// AllowedCategories is the closed set accepted for Cost.Category.
var AllowedCategories = []string{"food", "health", "housing", "sport", "education"}

// Cost represents a single expense belonging to a user. UserID refers to
// User.UserID by value only; no foreign key ties it to an actual user record.
type Cost struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Category    string    `gorm:"size:32;not null" json:"category"`
	UserID      string    `gorm:"column:userid;size:64;not null;index" json:"userid"`
	Sum         float64   `gorm:"not null" json:"sum"`
	Date        time.Time `gorm:"not null;index" json:"date"`
}

// ValidCategory reports whether s is one of the allowed categories.
func ValidCategory(s string) bool {
	for _, allowed := range AllowedCategories {
		if s == allowed {
			return true
		}
	}
	return false
}

// BeforeCreate enforces the cost schema at write time and defaults Date to
// the current time when unset. Sum is required present but not checked for
// positivity.
func (c *Cost) BeforeCreate(tx *gorm.DB) error {
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	if strings.TrimSpace(c.Description) == "" || strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("missing required fields: description or userid")
	}
	if !ValidCategory(c.Category) {
		return fmt.Errorf("invalid category %q, allowed: %s", c.Category, strings.Join(AllowedCategories, ", "))
	}
	return nil
}
