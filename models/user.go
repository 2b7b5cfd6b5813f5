package models

// Roles carried in access tokens.
const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// User is the caller as described by its access token. Accounts themselves
// are owned by the auth service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func ValidRole(role string) bool {
	return role == RoleEmployee || role == RoleAdmin
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
