package planka

import (
	"context"

	"github.com/plankutil/planka-cli/internal/cli/connection"
)

// attachmentField is the multipart form field the server reads the
// file content from.
const attachmentField = "file"

// CreateAttachment uploads a local file to a card as an attachment.
// A file that cannot be opened surfaces as a local error before any
// request is made; server rejections surface as API errors.
func (c *Client) CreateAttachment(ctx context.Context, cardID, filePath string) (Item, error) {
	resp, err := c.conn.Upload(ctx, "/api/cards/"+cardID+"/attachments", attachmentField, filePath)
	if err != nil {
		return nil, err
	}
	var env itemEnvelope
	if err := connection.Decode(resp, &env); err != nil {
		return nil, err
	}
	return env.Item, nil
}

// AttachmentUpdate holds the optional fields of an attachment update.
type AttachmentUpdate struct {
	Name *string `json:"name,omitempty"`
}

// UpdateAttachment patches an attachment with only the fields set in
// upd.
func (c *Client) UpdateAttachment(ctx context.Context, attachmentID string, upd AttachmentUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/attachments/"+attachmentID, upd)
}

// DeleteAttachment deletes an attachment.
func (c *Client) DeleteAttachment(ctx context.Context, attachmentID string) error {
	return c.delete(ctx, "/api/attachments/"+attachmentID)
}
