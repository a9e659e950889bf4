package planka

import "context"

// Users lists all users on the instance.
func (c *Client) Users(ctx context.Context) ([]Item, error) {
	return c.getItems(ctx, "/api/users")
}

// User fetches a single user.
func (c *Client) User(ctx context.Context, userID string) (Item, error) {
	return c.getItem(ctx, "/api/users/"+userID)
}

// CreateUser creates a user. username is optional and omitted from
// the request when empty.
func (c *Client) CreateUser(ctx context.Context, email, password, name, username string) (Item, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"name":     name,
	}
	if username != "" {
		body["username"] = username
	}
	return c.postItem(ctx, "/api/users", body)
}

// UserUpdate holds the optional fields of a user update.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdateUser patches a user with only the fields set in upd.
func (c *Client) UpdateUser(ctx context.Context, userID string, upd UserUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/users/"+userID, upd)
}

// DeleteUser deletes a user.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.delete(ctx, "/api/users/"+userID)
}
