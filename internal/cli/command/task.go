package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// TaskListCommand returns the tasklist subcommand group.
func TaskListCommand() *cli.Command {
	return &cli.Command{
		Name:    "tasklist",
		Aliases: []string{"tl"},
		Usage:   "Manage task lists (checklists) on cards",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a task list on a card",
				ArgsUsage: "CARD_ID NAME",
				Flags:     []cli.Flag{positionFlag()},
				Action:    taskListCreate,
			},
			{
				Name:      "get",
				Usage:     "Get task list details",
				ArgsUsage: "TASKLIST_ID",
				Action:    taskListGet,
			},
			{
				Name:      "update",
				Usage:     "Update a task list",
				ArgsUsage: "TASKLIST_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New task list name",
					},
					&cli.Float64Flag{
						Name:  "position",
						Usage: "New position on the card",
					},
				},
				Action: taskListUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a task list and its tasks",
				ArgsUsage: "TASKLIST_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    taskListDelete,
			},
		},
	}
}

// TaskCommand returns the task subcommand group.
func TaskCommand() *cli.Command {
	return &cli.Command{
		Name:  "task",
		Usage: "Manage tasks inside task lists",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a task in a task list",
				ArgsUsage: "TASKLIST_ID NAME",
				Flags:     []cli.Flag{positionFlag()},
				Action:    taskCreate,
			},
			{
				Name:      "complete",
				Usage:     "Mark a task as completed",
				ArgsUsage: "TASK_ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "undo",
						Usage: "Mark as not completed instead",
					},
				},
				Action: taskComplete,
			},
			{
				Name:      "update",
				Usage:     "Update a task",
				ArgsUsage: "TASK_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New task name",
					},
					&cli.Float64Flag{
						Name:  "position",
						Usage: "New position within the task list",
					},
				},
				Action: taskUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a task",
				ArgsUsage: "TASK_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    taskDelete,
			},
		},
	}
}

func taskListCreate(c *cli.Context) error {
	cardID := c.Args().Get(0)
	name := c.Args().Get(1)
	if cardID == "" || name == "" {
		return fmt.Errorf("card ID and task list name required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	taskList, err := client.CreateTaskList(ctx, cardID, name, c.Float64("position"))
	if err != nil {
		return err
	}

	return printItem(c, taskList)
}

func taskListGet(c *cli.Context) error {
	taskListID := c.Args().First()
	if taskListID == "" {
		return fmt.Errorf("task list ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	taskList, err := client.TaskList(ctx, taskListID)
	if err != nil {
		return err
	}

	return printItem(c, taskList)
}

func taskListUpdate(c *cli.Context) error {
	taskListID := c.Args().First()
	if taskListID == "" {
		return fmt.Errorf("task list ID required")
	}

	var upd planka.TaskListUpdate
	if c.IsSet("name") {
		upd.Name = planka.String(c.String("name"))
	}
	if c.IsSet("position") {
		upd.Position = planka.Float64(c.Float64("position"))
	}
	if upd.Name == nil && upd.Position == nil {
		fmt.Println("No updates provided.")
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	taskList, err := client.UpdateTaskList(ctx, taskListID, upd)
	if err != nil {
		return err
	}

	return printItem(c, taskList)
}

func taskListDelete(c *cli.Context) error {
	taskListID := c.Args().First()
	if taskListID == "" {
		return fmt.Errorf("task list ID required")
	}

	if !confirm(c, "task list '"+taskListID+"' and its tasks") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteTaskList(ctx, taskListID); err != nil {
		return err
	}

	fmt.Printf("Task list %s deleted.\n", taskListID)
	return nil
}

func taskCreate(c *cli.Context) error {
	taskListID := c.Args().Get(0)
	name := c.Args().Get(1)
	if taskListID == "" || name == "" {
		return fmt.Errorf("task list ID and task name required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	task, err := client.CreateTask(ctx, taskListID, name, c.Float64("position"))
	if err != nil {
		return err
	}

	return printItem(c, task)
}

func taskComplete(c *cli.Context) error {
	taskID := c.Args().First()
	if taskID == "" {
		return fmt.Errorf("task ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	task, err := client.UpdateTask(ctx, taskID, planka.TaskUpdate{
		IsCompleted: planka.Bool(!c.Bool("undo")),
	})
	if err != nil {
		return err
	}

	return printItem(c, task)
}

func taskUpdate(c *cli.Context) error {
	taskID := c.Args().First()
	if taskID == "" {
		return fmt.Errorf("task ID required")
	}

	var upd planka.TaskUpdate
	if c.IsSet("name") {
		upd.Name = planka.String(c.String("name"))
	}
	if c.IsSet("position") {
		upd.Position = planka.Float64(c.Float64("position"))
	}
	if upd.Name == nil && upd.Position == nil {
		fmt.Println("No updates provided.")
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	task, err := client.UpdateTask(ctx, taskID, upd)
	if err != nil {
		return err
	}

	return printItem(c, task)
}

func taskDelete(c *cli.Context) error {
	taskID := c.Args().First()
	if taskID == "" {
		return fmt.Errorf("task ID required")
	}

	if !confirm(c, "task '"+taskID+"'") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteTask(ctx, taskID); err != nil {
		return err
	}

	fmt.Printf("Task %s deleted.\n", taskID)
	return nil
}
