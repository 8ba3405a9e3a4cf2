package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the authorization role of a user
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// MaxUserNameLength matches the size of the users.name column
const MaxUserNameLength = 100

// ParseRole converts a raw value into a Role
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// UserSummary is a user annotated with the number of tasks it owns
type UserSummary struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
	TaskCount int
}

// Principal is the authenticated identity performing an operation
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether the principal carries the ADMIN role
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// DashboardStats holds the admin dashboard counters
type DashboardStats struct {
	TotalUsers      int
	TotalTasks      int
	TotalCategories int
	OverdueTasks    int
	TasksByStatus   map[Status]int
}
