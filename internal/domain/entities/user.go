package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleStartup UserRole = "startup"
	UserRoleTalent  UserRole = "talent"
	UserRoleAdmin   UserRole = "admin"
)

// ParseUserRole accepts any casing of the three roles.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToLower(strings.TrimSpace(s))) {
	case UserRoleStartup:
		return UserRoleStartup, true
	case UserRoleTalent:
		return UserRoleTalent, true
	case UserRoleAdmin:
		return UserRoleAdmin, true
	}
	return "", false
}

// UserStatus is the account state controlled by admins.
type UserStatus string

const (
	UserStatusActive UserStatus = "Active"
	UserStatusBanned UserStatus = "Banned"
)

// User is an ecosystem account.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	LastLoginAt  null.Time  `json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsBanned reports whether the account is banned.
func (u *User) IsBanned() bool {
	return u.Status == UserStatusBanned
}

// SignupInput represents input for creating an account
type SignupInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}

// UserFilter narrows the admin user list.
type UserFilter struct {
	Search string
	Role   UserRole
	Status UserStatus
}

// CleanupResult lists accounts removed (or that would be removed) by the
// fake-account sweep.
type CleanupResult struct {
	DryRun  bool     `json:"dryRun"`
	Removed []string `json:"removed"`
}
