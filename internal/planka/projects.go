package planka

import "context"

// Projects lists all projects visible to the current user.
func (c *Client) Projects(ctx context.Context) ([]Item, error) {
	return c.getItems(ctx, "/api/projects")
}

// Project fetches a project. The raw body is returned because it may
// carry an `included` map of related boards.
func (c *Client) Project(ctx context.Context, projectID string) (Item, error) {
	return c.getRaw(ctx, "/api/projects/"+projectID)
}

// CreateProject creates a project with the given name.
func (c *Client) CreateProject(ctx context.Context, name string) (Item, error) {
	return c.postItem(ctx, "/api/projects", map[string]any{"name": name})
}

// ProjectUpdate holds the optional fields of a project update.
type ProjectUpdate struct {
	Name *string `json:"name,omitempty"`
}

// UpdateProject patches a project with only the fields set in upd.
func (c *Client) UpdateProject(ctx context.Context, projectID string, upd ProjectUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/projects/"+projectID, upd)
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, projectID string) error {
	return c.delete(ctx, "/api/projects/"+projectID)
}

// ServerConfig fetches the instance configuration exposed by the
// server at /api/config.
func (c *Client) ServerConfig(ctx context.Context) (Item, error) {
	return c.getRaw(ctx, "/api/config")
}
