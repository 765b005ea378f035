package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, can manage employees and view reports
	RoleManager  Role = "manager"  // Can manage employees and view reports
	RoleEmployee Role = "employee" // Read-only directory access
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanManage checks if the role may create, edit, or delete employees.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
