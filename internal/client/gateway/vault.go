package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/lockboxapp/lockbox/internal/client/models"
)

// FetchAll retrieves the session's full credential list. An absent or null
// list in the response is normalized to an empty slice; callers never see
// nil.
func (c *Client) FetchAll(ctx context.Context) ([]models.CredentialEntry, error) {
	var envelope struct {
		Passwords []models.CredentialEntry `json:"passwords"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/passwords", nil, &envelope, "Failed to fetch passwords"); err != nil {
		return nil, err
	}
	if envelope.Passwords == nil {
		return []models.CredentialEntry{}, nil
	}
	return envelope.Passwords, nil
}

// Add creates a new credential entry and returns the server echo, which may
// carry a server-assigned id replacing the client-generated one.
func (c *Client) Add(ctx context.Context, entry models.CredentialEntry) (*models.CredentialEntry, error) {
	var envelope struct {
		Password *models.CredentialEntry `json:"password"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/passwords", entry, &envelope, "Failed to add password"); err != nil {
		return nil, err
	}
	if envelope.Password == nil {
		return nil, NewError(KindTransport, TransportMessage)
	}
	return envelope.Password, nil
}

// Update replaces an existing entry. The id is validated before any bytes
// hit the wire.
func (c *Client) Update(ctx context.Context, entry models.CredentialEntry) (*models.CredentialEntry, error) {
	if strings.TrimSpace(entry.ID) == "" {
		return nil, NewError(KindValidation, "Password id required")
	}

	var envelope struct {
		Password *models.CredentialEntry `json:"password"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/passwords/"+entry.ID, entry, &envelope, "Failed to update password"); err != nil {
		return nil, err
	}
	if envelope.Password == nil {
		return nil, NewError(KindTransport, TransportMessage)
	}
	return envelope.Password, nil
}

// Delete removes an entry by id. Like Update, an empty id fails fast.
func (c *Client) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return NewError(KindValidation, "Password id required")
	}
	return c.do(ctx, http.MethodDelete, "/api/passwords/"+id, nil, nil, "Failed to delete password")
}
