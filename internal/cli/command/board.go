package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/cli/output"
	"github.com/plankutil/planka-cli/internal/planka"
)

// BoardCommand returns the board subcommand group.
func BoardCommand() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Manage boards",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Show a board with its lists and cards",
				ArgsUsage: "BOARD_ID",
				Action:    boardGet,
			},
			{
				Name:      "create",
				Usage:     "Create a board in a project",
				ArgsUsage: "PROJECT_ID NAME",
				Flags:     []cli.Flag{positionFlag()},
				Action:    boardCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a board",
				ArgsUsage: "BOARD_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New board name",
					},
					&cli.Float64Flag{
						Name:  "position",
						Usage: "New position among sibling boards",
					},
				},
				Action: boardUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a board",
				ArgsUsage: "BOARD_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    boardDelete,
			},
			{
				Name:      "activity",
				Usage:     "Show recent board activity",
				ArgsUsage: "BOARD_ID",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum entries to show",
					},
				},
				Action: boardActivity,
			},
			{
				Name:  "member",
				Usage: "Manage board members",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Add a user to a board",
						ArgsUsage: "BOARD_ID USER_ID",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "role",
								Value: planka.DefaultBoardRole,
								Usage: "Membership role: editor, viewer",
							},
						},
						Action: boardMemberAdd,
					},
					{
						Name:      "update",
						Usage:     "Update a board membership",
						ArgsUsage: "MEMBERSHIP_ID",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "role",
								Usage: "Membership role: editor, viewer",
							},
							&cli.BoolFlag{
								Name:  "can-comment",
								Usage: "Allow commenting for viewers",
							},
						},
						Action: boardMemberUpdate,
					},
					{
						Name:      "remove",
						Usage:     "Remove a board membership",
						ArgsUsage: "MEMBERSHIP_ID",
						Flags:     []cli.Flag{forceFlag()},
						Action:    boardMemberRemove,
					},
				},
			},
		},
	}
}

func boardGet(c *cli.Context) error {
	boardID := c.Args().First()
	if boardID == "" {
		return fmt.Errorf("board ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	board, err := client.Board(ctx, boardID)
	if err != nil {
		return err
	}

	if !tableOutput(c) {
		return printItem(c, board)
	}
	return renderBoard(board)
}

// renderBoard prints the board's lists in position order, each with
// its cards as an indented table.
func renderBoard(board planka.Item) error {
	if item, ok := board["item"].(map[string]any); ok {
		fmt.Printf("Board: %s\n", output.Cell(item["name"]))
	}

	lists := planka.GroupBoard(board)
	if len(lists) == 0 {
		fmt.Println("(no lists)")
		return nil
	}

	for _, l := range lists {
		fmt.Printf("\n%s (%d cards)\n", l.Name, len(l.Cards))
		if len(l.Cards) == 0 {
			continue
		}
		table := &output.Table{Headers: []string{"  ID", "NAME", "DUE"}}
		for _, card := range l.Cards {
			table.AddRow("  "+output.Cell(card["id"]), output.Cell(card["name"]), output.Cell(card["dueDate"]))
		}
		if err := table.Render(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

func boardCreate(c *cli.Context) error {
	projectID := c.Args().Get(0)
	name := c.Args().Get(1)
	if projectID == "" || name == "" {
		return fmt.Errorf("project ID and board name required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	board, err := client.CreateBoard(ctx, projectID, name, c.Float64("position"))
	if err != nil {
		return err
	}

	return printItem(c, board)
}

func boardUpdate(c *cli.Context) error {
	boardID := c.Args().First()
	if boardID == "" {
		return fmt.Errorf("board ID required")
	}

	var upd planka.BoardUpdate
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

	board, err := client.UpdateBoard(ctx, boardID, upd)
	if err != nil {
		return err
	}

	return printItem(c, board)
}

func boardDelete(c *cli.Context) error {
	boardID := c.Args().First()
	if boardID == "" {
		return fmt.Errorf("board ID required")
	}

	if !confirm(c, "board '"+boardID+"'") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteBoard(ctx, boardID); err != nil {
		return err
	}

	fmt.Printf("Board %s deleted.\n", boardID)
	return nil
}

func boardActivity(c *cli.Context) error {
	boardID := c.Args().First()
	if boardID == "" {
		return fmt.Errorf("board ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	actions, err := client.BoardActions(ctx, boardID)
	if err != nil {
		return err
	}

	if limit := c.Int("limit"); limit > 0 && len(actions) > limit {
		actions = actions[:limit]
	}

	return printItems(c, actions,
		[]string{"ID", "TYPE", "USER", "CREATED"},
		[]string{"id", "type", "userId", "createdAt"})
}

func boardMemberAdd(c *cli.Context) error {
	boardID := c.Args().Get(0)
	userID := c.Args().Get(1)
	if boardID == "" || userID == "" {
		return fmt.Errorf("board ID and user ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	membership, err := client.AddBoardMember(ctx, boardID, userID, c.String("role"))
	if err != nil {
		return err
	}

	return printItem(c, membership)
}

func boardMemberUpdate(c *cli.Context) error {
	membershipID := c.Args().First()
	if membershipID == "" {
		return fmt.Errorf("membership ID required")
	}

	var upd planka.BoardMembershipUpdate
	if c.IsSet("role") {
		upd.Role = planka.String(c.String("role"))
	}
	if c.IsSet("can-comment") {
		upd.CanComment = planka.Bool(c.Bool("can-comment"))
	}
	if upd.Role == nil && upd.CanComment == nil {
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

	membership, err := client.UpdateBoardMembership(ctx, membershipID, upd)
	if err != nil {
		return err
	}

	return printItem(c, membership)
}

func boardMemberRemove(c *cli.Context) error {
	membershipID := c.Args().First()
	if membershipID == "" {
		return fmt.Errorf("membership ID required")
	}

	if !confirm(c, "board membership '"+membershipID+"'") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.RemoveBoardMembership(ctx, membershipID); err != nil {
		return err
	}

	fmt.Printf("Board membership %s removed.\n", membershipID)
	return nil
}
