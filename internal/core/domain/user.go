package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// ValidRole reports whether s is one of the known role claims.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleManager || s == RoleEmployee
}

// User models an authenticated actor in the system. The Role claim drives
// both route access and transaction data scope.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Scope selects which transaction store a session reads. Admin and manager
// roles share one common collection; every other role reads only its own
// private subset keyed by OwnerID.
type Scope struct {
	Shared  bool
	OwnerID string
}

// ScopeForRole resolves the data scope for a role claim. This branch mirrors
// the one access-control decision embedded in data fetching and must stay
// exact: admin|manager → shared store, anything else → private store.
func ScopeForRole(role, userID string) Scope {
	if role == RoleAdmin || role == RoleManager {
		return Scope{Shared: true}
	}
	return Scope{OwnerID: userID}
}
