package models

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser    Role = "USER"
	RoleTrainer Role = "TRAINER"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole accepts a role name in any case. The zero Role and false are
// returned for unknown names.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleUser:
		return RoleUser, true
	case RoleTrainer:
		return RoleTrainer, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleTrainer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Account is an identity record keyed by (username, role).
type Account struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicAccount is the subset of Account fields that leave the service.
type PublicAccount struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
}

func (a Account) Public() PublicAccount {
	return PublicAccount{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
	}
}

// Caller is the verified identity of whoever invoked a workflow.
type Caller struct {
	AccountID int64
	Username  string
	Role      Role
}
