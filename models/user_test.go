package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() User {
	return User{
		UserID:        "u1",
		FirstName:     "Roy",
		LastName:      "Rizel",
		Birthday:      time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC),
		MaritalStatus: "single",
	}
}

func TestValidMaritalStatus(t *testing.T) {
	for _, s := range AllowedMaritalStatuses {
		assert.True(t, ValidMaritalStatus(s), s)
	}
	assert.False(t, ValidMaritalStatus("engaged"))
	assert.False(t, ValidMaritalStatus(""))
}

func TestUserBeforeSaveValid(t *testing.T) {
	u := validUser()
	assert.NoError(t, u.BeforeSave(nil))
}

func TestUserBeforeSaveRejectsInvalidStatus(t *testing.T) {
	u := validUser()
	u.MaritalStatus = "engaged"
	err := u.BeforeSave(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "marital_status")
}

func TestUserBeforeSaveRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*User)
	}{
		{"missing id", func(u *User) { u.UserID = "" }},
		{"missing first name", func(u *User) { u.FirstName = "" }},
		{"missing last name", func(u *User) { u.LastName = "" }},
		{"missing birthday", func(u *User) { u.Birthday = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)
			assert.Error(t, u.BeforeSave(nil))
		})
	}
}
