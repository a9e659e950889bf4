package planka

import "context"

// CreateComment adds a comment to a card.
func (c *Client) CreateComment(ctx context.Context, cardID, text string) (Item, error) {
	return c.postItem(ctx, "/api/cards/"+cardID+"/comments", map[string]any{
		"text": text,
	})
}

// Comments lists the comments on a card.
func (c *Client) Comments(ctx context.Context, cardID string) ([]Item, error) {
	return c.getItems(ctx, "/api/cards/"+cardID+"/comments")
}

// UpdateComment replaces a comment's text.
func (c *Client) UpdateComment(ctx context.Context, commentID, text string) (Item, error) {
	return c.patchItem(ctx, "/api/comments/"+commentID, map[string]any{
		"text": text,
	})
}

// DeleteComment deletes a comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.delete(ctx, "/api/comments/"+commentID)
}
