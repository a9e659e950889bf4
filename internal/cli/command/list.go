package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// ListCommand returns the list subcommand group.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Manage lists",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Get list details",
				ArgsUsage: "LIST_ID",
				Action:    listGet,
			},
			{
				Name:      "create",
				Usage:     "Create a list on a board",
				ArgsUsage: "BOARD_ID NAME",
				Flags:     []cli.Flag{positionFlag()},
				Action:    listCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a list",
				ArgsUsage: "LIST_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New list name",
					},
					&cli.Float64Flag{
						Name:  "position",
						Usage: "New position among sibling lists",
					},
				},
				Action: listUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a list and its cards",
				ArgsUsage: "LIST_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    listDelete,
			},
			{
				Name:      "sort",
				Usage:     "Sort the cards on a list server-side",
				ArgsUsage: "LIST_ID",
				Action:    listSort,
			},
			{
				Name:      "cards",
				Usage:     "List the cards on a list",
				ArgsUsage: "LIST_ID",
				Action:    listCards,
			},
		},
	}
}

func listGet(c *cli.Context) error {
	listID := c.Args().First()
	if listID == "" {
		return fmt.Errorf("list ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	list, err := client.List(ctx, listID)
	if err != nil {
		return err
	}

	return printItem(c, list)
}

func listCreate(c *cli.Context) error {
	boardID := c.Args().Get(0)
	name := c.Args().Get(1)
	if boardID == "" || name == "" {
		return fmt.Errorf("board ID and list name required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	list, err := client.CreateList(ctx, boardID, name, c.Float64("position"))
	if err != nil {
		return err
	}

	return printItem(c, list)
}

func listUpdate(c *cli.Context) error {
	listID := c.Args().First()
	if listID == "" {
		return fmt.Errorf("list ID required")
	}

	var upd planka.ListUpdate
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

	list, err := client.UpdateList(ctx, listID, upd)
	if err != nil {
		return err
	}

	return printItem(c, list)
}

func listDelete(c *cli.Context) error {
	listID := c.Args().First()
	if listID == "" {
		return fmt.Errorf("list ID required")
	}

	if !confirm(c, "list '"+listID+"' and its cards") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteList(ctx, listID); err != nil {
		return err
	}

	fmt.Printf("List %s deleted.\n", listID)
	return nil
}

func listSort(c *cli.Context) error {
	listID := c.Args().First()
	if listID == "" {
		return fmt.Errorf("list ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if _, err := client.SortList(ctx, listID); err != nil {
		return err
	}

	fmt.Printf("List %s sorted.\n", listID)
	return nil
}

func listCards(c *cli.Context) error {
	listID := c.Args().First()
	if listID == "" {
		return fmt.Errorf("list ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	cards, err := client.Cards(ctx, listID)
	if err != nil {
		return err
	}

	return printItems(c, cards,
		[]string{"ID", "NAME", "POSITION", "DUE"},
		[]string{"id", "name", "position", "dueDate"})
}
