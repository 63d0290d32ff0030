package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full administrative access
	RoleHR       Role = "hr"       // Can approve leave, regularize attendance, run payroll
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	Department   *string
	Position     *string
	JoinDate     *time.Time
	GoogleID     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has full administrative access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsHR checks if user is HR staff or admin
func (u *User) IsHR() bool {
	return u.Role == RoleHR || u.Role == RoleAdmin
}

// CanApprove checks if user can approve leave and attendance corrections
func (u *User) CanApprove() bool {
	return u.IsHR()
}
