package models

import (
	"strconv"
	"time"
)

// EntryType tags a credential entry. The set is closed for known kinds but
// unknown tags round-trip untouched, since the server treats the field as an
// opaque string.
type EntryType string

const (
	EntryTypeLogin EntryType = "login"
	EntryTypeCard  EntryType = "card"
	EntryTypeNote  EntryType = "note"
)

// DefaultIcon is used when no icon was picked for a new entry.
const DefaultIcon = "key-variant"

// Icons is the fixed icon-name vocabulary. Purely a display hint; the client
// core never interprets these values.
var Icons = []string{
	"key-variant", "google", "facebook", "apple", "amazon",
	"microsoft-outlook", "credit-card", "bank", "wallet", "shield-lock",
	"lock", "email", "cellphone", "laptop", "github", "aws",
	"instagram", "twitter", "netflix", "spotify",
}

// CredentialEntry is a single vault item. IDs are client-generated at
// creation time (see NewEntryID) but the server may replace them with its
// own on create.
type CredentialEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Username  string    `json:"user"`
	Password  string    `json:"password,omitempty"`
	Type      EntryType `json:"type"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// NewEntryID returns a time-based identifier for a freshly created entry,
// matching the unix-millisecond scheme the mobile client uses.
func NewEntryID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// NewCredentialEntry builds an entry with a fresh id, timestamps, and
// defaults applied for type and icon.
func NewCredentialEntry(title, username, password string, entryType EntryType, icon string) CredentialEntry {
	if entryType == "" {
		entryType = EntryTypeLogin
	}
	if icon == "" {
		icon = DefaultIcon
	}
	now := time.Now()
	return CredentialEntry{
		ID:        NewEntryID(),
		Title:     title,
		Username:  username,
		Password:  password,
		Type:      entryType,
		Icon:      icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
