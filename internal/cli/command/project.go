package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// ProjectCommand returns the project subcommand group.
func ProjectCommand() *cli.Command {
	return &cli.Command{
		Name:    "project",
		Aliases: []string{"proj"},
		Usage:   "Manage projects",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List projects",
				Action: projectList,
			},
			{
				Name:      "get",
				Usage:     "Get project details",
				ArgsUsage: "PROJECT_ID",
				Action:    projectGet,
			},
			{
				Name:      "create",
				Usage:     "Create a project",
				ArgsUsage: "NAME",
				Action:    projectCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a project",
				ArgsUsage: "PROJECT_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New project name",
					},
				},
				Action: projectUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a project",
				ArgsUsage: "PROJECT_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    projectDelete,
			},
		},
	}
}

func projectList(c *cli.Context) error {
	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	projects, err := client.Projects(ctx)
	if err != nil {
		return err
	}

	return printItems(c, projects,
		[]string{"ID", "NAME"},
		[]string{"id", "name"})
}

func projectGet(c *cli.Context) error {
	projectID := c.Args().First()
	if projectID == "" {
		return fmt.Errorf("project ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	project, err := client.Project(ctx, projectID)
	if err != nil {
		return err
	}

	return printItem(c, project)
}

func projectCreate(c *cli.Context) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("project name required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	project, err := client.CreateProject(ctx, name)
	if err != nil {
		return err
	}

	return printItem(c, project)
}

func projectUpdate(c *cli.Context) error {
	projectID := c.Args().First()
	if projectID == "" {
		return fmt.Errorf("project ID required")
	}

	var upd planka.ProjectUpdate
	if c.IsSet("name") {
		upd.Name = planka.String(c.String("name"))
	}
	if upd.Name == nil {
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

	project, err := client.UpdateProject(ctx, projectID, upd)
	if err != nil {
		return err
	}

	return printItem(c, project)
}

func projectDelete(c *cli.Context) error {
	projectID := c.Args().First()
	if projectID == "" {
		return fmt.Errorf("project ID required")
	}

	if !confirm(c, "project '"+projectID+"'") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteProject(ctx, projectID); err != nil {
		return err
	}

	fmt.Printf("Project %s deleted.\n", projectID)
	return nil
}
