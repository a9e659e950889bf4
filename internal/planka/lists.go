package planka

import "context"

// CreateList creates a list on a board.
func (c *Client) CreateList(ctx context.Context, boardID, name string, position float64) (Item, error) {
	return c.postItem(ctx, "/api/boards/"+boardID+"/lists", map[string]any{
		"name":     name,
		"position": position,
	})
}

// List fetches a list; the raw body is returned unmodified.
func (c *Client) List(ctx context.Context, listID string) (Item, error) {
	return c.getRaw(ctx, "/api/lists/"+listID)
}

// ListUpdate holds the optional fields of a list update.
type ListUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Position *float64 `json:"position,omitempty"`
}

// UpdateList patches a list with only the fields set in upd.
func (c *Client) UpdateList(ctx context.Context, listID string, upd ListUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/lists/"+listID, upd)
}

// DeleteList deletes a list and the cards on it.
func (c *Client) DeleteList(ctx context.Context, listID string) error {
	return c.delete(ctx, "/api/lists/"+listID)
}

// SortList asks the server to sort the list's cards.
func (c *Client) SortList(ctx context.Context, listID string) (Item, error) {
	return c.postRaw(ctx, "/api/lists/"+listID+"/sort", nil)
}
