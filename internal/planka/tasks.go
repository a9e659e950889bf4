package planka

import "context"

// CreateTaskList creates a task list (checklist) on a card.
func (c *Client) CreateTaskList(ctx context.Context, cardID, name string, position float64) (Item, error) {
	return c.postItem(ctx, "/api/cards/"+cardID+"/task-lists", map[string]any{
		"name":     name,
		"position": position,
	})
}

// TaskList fetches a task list; the raw body is returned unmodified.
func (c *Client) TaskList(ctx context.Context, taskListID string) (Item, error) {
	return c.getRaw(ctx, "/api/task-lists/"+taskListID)
}

// TaskListUpdate holds the optional fields of a task list update.
type TaskListUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Position *float64 `json:"position,omitempty"`
}

// UpdateTaskList patches a task list with only the fields set in upd.
func (c *Client) UpdateTaskList(ctx context.Context, taskListID string, upd TaskListUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/task-lists/"+taskListID, upd)
}

// DeleteTaskList deletes a task list and its tasks.
func (c *Client) DeleteTaskList(ctx context.Context, taskListID string) error {
	return c.delete(ctx, "/api/task-lists/"+taskListID)
}

// CreateTask creates a task inside a task list.
func (c *Client) CreateTask(ctx context.Context, taskListID, name string, position float64) (Item, error) {
	return c.postItem(ctx, "/api/task-lists/"+taskListID+"/tasks", map[string]any{
		"name":     name,
		"position": position,
	})
}

// TaskUpdate holds the optional fields of a task update.
type TaskUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Position    *float64 `json:"position,omitempty"`
	IsCompleted *bool    `json:"isCompleted,omitempty"`
}

// UpdateTask patches a task with only the fields set in upd.
func (c *Client) UpdateTask(ctx context.Context, taskID string, upd TaskUpdate) (Item, error) {
	return c.patchItem(ctx, "/api/tasks/"+taskID, upd)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.delete(ctx, "/api/tasks/"+taskID)
}
