package planka

import "context"

// CreateLabel creates a label on a board.
func (c *Client) CreateLabel(ctx context.Context, boardID, name, color string, position float64) (Item, error) {
	return c.postItem(ctx, "/api/boards/"+boardID+"/labels", map[string]any{
		"name":     name,
		"color":    color,
		"position": position,
	})
}

// LabelUpdate holds the optional fields of a label update.
type LabelUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Color    *string  `json:"color,omitempty"`
	Position *float64 `json:"position,omitempty"`
}

// UpdateLabel patches a label with only the fields set in upd.
func (c *Client) UpdateLabel(ctx context.Context, labelID string, upd LabelUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/labels/"+labelID, upd)
}

// DeleteLabel deletes a label from its board.
func (c *Client) DeleteLabel(ctx context.Context, labelID string) error {
	return c.delete(ctx, "/api/labels/"+labelID)
}

// AddCardLabel attaches an existing label to a card.
func (c *Client) AddCardLabel(ctx context.Context, cardID, labelID string) (Item, error) {
	return c.postItem(ctx, "/api/cards/"+cardID+"/card-labels", map[string]any{
		"labelId": labelID,
	})
}

// RemoveCardLabel detaches a label from a card. The server addresses
// the association by labelId, not by a separate association ID.
func (c *Client) RemoveCardLabel(ctx context.Context, cardID, labelID string) error {
	return c.delete(ctx, "/api/cards/"+cardID+"/card-labels/labelId:"+labelID)
}
