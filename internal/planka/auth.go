package planka

import (
	"context"
	"errors"

	"github.com/plankutil/planka-cli/internal/cli/connection"
)

// Login exchanges credentials for a bearer token and adopts it for
// subsequent calls on this client. Any non-2xx response is an
// *connection.AuthError carrying the server's status and body.
func (c *Client) Login(ctx context.Context, emailOrUsername, password string) (string, error) {
	resp, err := c.conn.Post(ctx, "/api/access-tokens", map[string]string{
		"emailOrUsername": emailOrUsername,
		"password":        password,
	})
	if err != nil {
		return "", err
	}

	var env struct {
		Item string `json:"item"`
	}
	if err := connection.Decode(resp, &env); err != nil {
		var apiErr *connection.APIError
		if errors.As(err, &apiErr) {
			return "", &connection.AuthError{Status: apiErr.Status, Body: apiErr.Body}
		}
		return "", err
	}

	c.conn.SetToken(env.Item)
	return env.Item, nil
}

// Logout invalidates the current token server-side. Clearing local
// persisted credentials is the command layer's responsibility.
func (c *Client) Logout(ctx context.Context) error {
	return c.delete(ctx, "/api/access-tokens/me")
}
