package planka

import "context"

// CardCreate holds the optional fields accepted at card creation.
type CardCreate struct {
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// CreateCard creates a card on a list. Only fields set in opts are
// sent alongside the required name and position.
func (c *Client) CreateCard(ctx context.Context, listID, name string, position float64, opts CardCreate) (Item, error) {
	body := map[string]any{
		"name":     name,
		"position": position,
	}
	if opts.Description != nil {
		body["description"] = *opts.Description
	}
	if opts.DueDate != nil {
		body["dueDate"] = *opts.DueDate
	}
	return c.postItem(ctx, "/api/lists/"+listID+"/cards", body)
}

// Cards lists the cards on a list.
func (c *Client) Cards(ctx context.Context, listID string) ([]Item, error) {
	return c.getItems(ctx, "/api/lists/"+listID+"/cards")
}

// Card fetches a single card.
func (c *Client) Card(ctx context.Context, cardID string) (Item, error) {
	return c.getItem(ctx, "/api/cards/"+cardID)
}

// CardUpdate holds the optional fields of a card update. Unset fields
// are left unchanged server-side; they never appear in the request.
type CardUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	ListID      *string  `json:"listId,omitempty"`
	Position    *float64 `json:"position,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
}

// UpdateCard patches a card with only the fields set in upd.
func (c *Client) UpdateCard(ctx context.Context, cardID string, upd CardUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/cards/"+cardID, upd)
}

// MoveCard moves a card to another list at the given position. It is
// an update of listId and position, nothing more.
func (c *Client) MoveCard(ctx context.Context, cardID, listID string, position float64) (Item, error) {
	return c.UpdateCard(ctx, cardID, CardUpdate{
		ListID:   String(listID),
		Position: Float64(position),
	})
}

// DuplicateCard copies a card within its list at the given position.
func (c *Client) DuplicateCard(ctx context.Context, cardID string, position float64) (Item, error) {
	return c.postItem(ctx, "/api/cards/"+cardID+"/duplicate", map[string]any{
		"position": position,
	})
}

// DeleteCard deletes a card.
func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.delete(ctx, "/api/cards/"+cardID)
}

// CardActions lists the activity recorded on a card.
func (c *Client) CardActions(ctx context.Context, cardID string) ([]Item, error) {
	return c.getItems(ctx, "/api/cards/"+cardID+"/actions")
}
