package entity

import "time"

// UserEntity is the acting operator. Authentication and session storage live
// outside this core; callers pass the already-resolved user into privileged
// operations.
type UserEntity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleUser  UserRole = "User"
)

func (u UserRole) IsValid() bool {
	switch u {
	case RoleAdmin, RoleUser:
		return true
	}

	return false
}

// IsAdmin reports whether the user may perform privileged operations
// (handler/building-type management, task deletion).
func (u *UserEntity) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
