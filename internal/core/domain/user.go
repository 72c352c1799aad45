package domain

import "time"

// Role is the coarse-grained permission class carried on a user and its
// sessions. The set is closed; anything else is rejected at the boundary.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleDesigner Role = "DESIGNER"
	RoleViewer   Role = "VIEWER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDesigner, RoleViewer:
		return true
	}
	return false
}

// User models an account in the credential store. PasswordHash never leaves
// the service layer; views returned to clients omit it.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
