package planka

import "context"

// Notifications lists the current user's notifications.
func (c *Client) Notifications(ctx context.Context) ([]Item, error) {
	return c.getItems(ctx, "/api/notifications")
}

// Notification fetches a single notification.
func (c *Client) Notification(ctx context.Context, notificationID string) (Item, error) {
	return c.getItem(ctx, "/api/notifications/"+notificationID)
}

// NotificationUpdate holds the optional fields of a notification
// update.
type NotificationUpdate struct {
	IsRead *bool `json:"isRead,omitempty"`
}

// UpdateNotification patches a notification with only the fields set
// in upd.
func (c *Client) UpdateNotification(ctx context.Context, notificationID string, upd NotificationUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/notifications/"+notificationID, upd)
}

// ReadAllNotifications marks every notification as read.
func (c *Client) ReadAllNotifications(ctx context.Context) (Item, error) {
	return c.postRaw(ctx, "/api/notifications/read-all", nil)
}
