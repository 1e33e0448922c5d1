// Package users implements the account side of the API: the combined
// login-or-register operation plus plain CRUD over sanitized user records.
package users

import "time"

// Roles a user can carry. Anything else is normalized to RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a stored account. PasswordHash is the bcrypt hash of the login
// secret; the `json:"-"` tag guarantees it never serializes into any
// response body, under any status code.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	DOB          string    `json:"dob,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
