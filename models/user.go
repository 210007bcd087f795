package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// AllowedMaritalStatuses is the closed set accepted for User.MaritalStatus.
var AllowedMaritalStatuses = []string{"single", "married", "divorced", "widowed"}

// User represents an account tracked by the system. UserID is the business
// identifier exposed to clients; ID is the storage key and never leaves the API.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
	UserID        string    `gorm:"column:userid;size:64;not null;uniqueIndex" json:"id"`
	FirstName     string    `gorm:"size:255;not null" json:"first_name"`
	LastName      string    `gorm:"size:255;not null" json:"last_name"`
	Birthday      time.Time `gorm:"not null" json:"birthday"`
	MaritalStatus string    `gorm:"size:16;not null" json:"marital_status"`
}

// ValidMaritalStatus reports whether s is one of the allowed statuses.
func ValidMaritalStatus(s string) bool {
	for _, allowed := range AllowedMaritalStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}

// BeforeSave enforces the user schema at write time.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(u.UserID) == "" || strings.TrimSpace(u.FirstName) == "" || strings.TrimSpace(u.LastName) == "" || u.Birthday.IsZero() {
		return fmt.Errorf("missing required fields: id, first_name, last_name, or birthday")
	}
	if !ValidMaritalStatus(u.MaritalStatus) {
		return fmt.Errorf("invalid marital_status %q, allowed: %s", u.MaritalStatus, strings.Join(AllowedMaritalStatuses, ", "))
	}
	return nil
}
