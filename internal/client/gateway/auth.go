package gateway

import (
	"context"
	"net/http"
	"strings"

	"github.com/lockboxapp/lockbox/internal/client/models"
)

// Session is the payload of a successful auth call: the sanitized user
// record plus the access token for subsequent vault requests.
type Session struct {
	User  models.User
	Token string
}

// Authenticate POSTs credentials (or a full registration profile) to the
// combined login-or-register endpoint and interprets its envelope. The
// server decides login vs. registration by whether the email already
// exists; the gateway is agnostic.
//
// Blank email or password fails locally with a validation outcome and never
// reaches the network. On success the returned token is installed on the
// client for the vault gateway to use.
func (c *Client) Authenticate(ctx context.Context, profile models.Profile) (*Session, error) {
	if strings.TrimSpace(profile.Email) == "" || strings.TrimSpace(profile.Password) == "" {
		return nil, NewError(KindValidation, MsgEmailPasswordRequired)
	}

	var envelope struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
		Token   string       `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/users", profile, &envelope, "Failed to login"); err != nil {
		return nil, err
	}
	if envelope.User == nil {
		return nil, NewError(KindTransport, TransportMessage)
	}

	c.SetToken(envelope.Token)
	return &Session{User: *envelope.User, Token: envelope.Token}, nil
}
