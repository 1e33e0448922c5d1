// Package models defines the client-side view of server records. These types
// mirror the JSON shapes of the API responses; secret material is stripped by
// the server before it ever reaches this layer, so no password field exists
// on User at all.
package models

// Role of an authenticated principal.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the authenticated principal held by the session store. It is
// replaced wholesale on every successful auth call.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
	DOB   string `json:"dob,omitempty"`
}

// Profile is the registration payload: credentials plus optional profile
// fields. The server ignores the extras on a login.
type Profile struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
	DOB      string `json:"dob,omitempty"`
	Role     Role   `json:"role,omitempty"`
}
