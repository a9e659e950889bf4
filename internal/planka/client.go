package planka

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/plankutil/planka-cli/internal/cli/connection"
)

// DefaultPosition is the server's sparse ordering default. It leaves
// gaps for later insertions without renumbering existing siblings.
const DefaultPosition = 65535

// Item is a single resource payload as decoded from the server. Keys
// are whatever the server sent; the client never enforces a schema.
type Item = map[string]any

// Client is the Planka API client. It holds one HTTP transport for
// reuse across calls within a command invocation; callers must Close
// it when done.
type Client struct {
	conn *connection.Client
}

// New creates a client for the given server URL. token may be empty
// until Login is called.
func New(server, token string, log hclog.Logger) *Client {
	return &Client{conn: connection.New(server, token, log)}
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	return c.conn.BaseURL()
}

// Token returns the active bearer token, empty if unauthenticated.
func (c *Client) Token() string {
	return c.conn.Token()
}

// Close releases the transport.
func (c *Client) Close() {
	c.conn.Close()
}

// String returns a pointer to s, for optional update fields.
func String(s string) *string { return &s }

// Float64 returns a pointer to f, for optional update fields.
func Float64(f float64) *float64 { return &f }

// Bool returns a pointer to b, for optional update fields.
func Bool(b bool) *bool { return &b }

type itemEnvelope struct {
	Item Item `json:"item"`
}

type itemsEnvelope struct {
	Items []Item `json:"items"`
}

func (c *Client) getItem(ctx context.Context, path string) (Item, error) {
	resp, err := c.conn.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var env itemEnvelope
	if err := connection.Decode(resp, &env); err != nil {
		return nil, err
	}
	return env.Item, nil
}

func (c *Client) getItems(ctx context.Context, path string) ([]Item, error) {
	resp, err := c.conn.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var env itemsEnvelope
	if err := connection.Decode(resp, &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// getRaw returns the decoded body unmodified, for endpoints whose
// response carries more than the item envelope (included maps).
func (c *Client) getRaw(ctx context.Context, path string) (Item, error) {
	resp, err := c.conn.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var body Item
	if err := connection.Decode(resp, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) postItem(ctx context.Context, path string, body any) (Item, error) {
	resp, err := c.conn.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	var env itemEnvelope
	if err := connection.Decode(resp, &env); err != nil {
		return nil, err
	}
	return env.Item, nil
}

func (c *Client) postRaw(ctx context.Context, path string, body any) (Item, error) {
	resp, err := c.conn.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}
	var out Item
	if err := connection.Decode(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) patchItem(ctx context.Context, path string, body any) (Item, error) {
	resp, err := c.conn.Patch(ctx, path, body)
	if err != nil {
		return nil, err
	}
	var env itemEnvelope
	if err := connection.Decode(resp, &env); err != nil {
		return nil, err
	}
	return env.Item, nil
}

func (c *Client) delete(ctx context.Context, path string) error {
	resp, err := c.conn.Delete(ctx, path)
	if err != nil {
		return err
	}
	return connection.Decode(resp, nil)
}
