package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account owner in the planilha-financeira system.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	PasswordHash       string
	EmailNotifications bool
	BudgetAlerts       bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 uuid.New(),
		Email:              email,
		Name:               name,
		PasswordHash:       passwordHash,
		EmailNotifications: true,
		BudgetAlerts:       true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// WantsBudgetAlerts reports whether budget alert emails may be sent to the user.
func (u *User) WantsBudgetAlerts() bool {
	return u.EmailNotifications && u.BudgetAlerts
}
