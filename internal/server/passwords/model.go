// Package passwords implements the credential-vault side of the API:
// per-user CRUD over stored credential entries.
package passwords

import "time"

// Entry is a stored credential. UserID scopes the entry to its owner and
// never serializes; clients only ever see their own rows, so the field
// would be redundant on the wire.
//
// Unlike users, the password field is part of the payload here: the vault
// exists to hand the secret back to its owner.
type Entry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Username  string    `json:"user"`
	Password  string    `json:"password"`
	Type      string    `json:"type"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
