package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// CardCommand returns the card subcommand group.
func CardCommand() *cli.Command {
	return &cli.Command{
		Name:  "card",
		Usage: "Manage cards",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "Get card details",
				ArgsUsage: "CARD_ID",
				Action:    cardGet,
			},
			{
				Name:      "create",
				Usage:     "Create a card on a list",
				ArgsUsage: "LIST_ID NAME",
				Flags: []cli.Flag{
					positionFlag(),
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "Card description",
					},
					&cli.StringFlag{
						Name:  "due-date",
						Usage: "Due date (ISO 8601)",
					},
				},
				Action: cardCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a card",
				ArgsUsage: "CARD_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New card name",
					},
					&cli.StringFlag{
						Name:    "description",
						Aliases: []string{"d"},
						Usage:   "New description",
					},
					&cli.Float64Flag{
						Name:  "position",
						Usage: "New position within the list",
					},
					&cli.StringFlag{
						Name:  "due-date",
						Usage: "New due date (ISO 8601)",
					},
				},
				Action: cardUpdate,
			},
			{
				Name:      "move",
				Usage:     "Move a card to another list",
				ArgsUsage: "CARD_ID LIST_ID",
				Flags:     []cli.Flag{positionFlag()},
				Action:    cardMove,
			},
			{
				Name:      "duplicate",
				Usage:     "Duplicate a card",
				ArgsUsage: "CARD_ID",
				Flags:     []cli.Flag{positionFlag()},
				Action:    cardDuplicate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a card",
				ArgsUsage: "CARD_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    cardDelete,
			},
			{
				Name:      "activity",
				Usage:     "Show card activity",
				ArgsUsage: "CARD_ID",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "Maximum entries to show",
					},
				},
				Action: cardActivity,
			},
			{
				Name:  "member",
				Usage: "Manage card members",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Assign a user to a card",
						ArgsUsage: "CARD_ID USER_ID",
						Action:    cardMemberAdd,
					},
					{
						Name:      "remove",
						Usage:     "Unassign a user from a card",
						ArgsUsage: "CARD_ID USER_ID",
						Action:    cardMemberRemove,
					},
				},
			},
			{
				Name:  "label",
				Usage: "Manage card labels",
				Subcommands: []*cli.Command{
					{
						Name:      "add",
						Usage:     "Attach a label to a card",
						ArgsUsage: "CARD_ID LABEL_ID",
						Action:    cardLabelAdd,
					},
					{
						Name:      "remove",
						Usage:     "Detach a label from a card",
						ArgsUsage: "CARD_ID LABEL_ID",
						Action:    cardLabelRemove,
					},
				},
			},
		},
	}
}

func cardGet(c *cli.Context) error {
	cardID := c.Args().First()
	if cardID == "" {
		return fmt.Errorf("card ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	card, err := client.Card(ctx, cardID)
	if err != nil {
		return err
	}

	return printItem(c, card)
}

func cardCreate(c *cli.Context) error {
	listID := c.Args().Get(0)
	name := c.Args().Get(1)
	if listID == "" || name == "" {
		return fmt.Errorf("list ID and card name required")
	}

	var opts planka.CardCreate
	if c.IsSet("description") {
		opts.Description = planka.String(c.String("description"))
	}
	if c.IsSet("due-date") {
		opts.DueDate = planka.String(c.String("due-date"))
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	card, err := client.CreateCard(ctx, listID, name, c.Float64("position"), opts)
	if err != nil {
		return err
	}

	return printItem(c, card)
}

func cardUpdate(c *cli.Context) error {
	cardID := c.Args().First()
	if cardID == "" {
		return fmt.Errorf("card ID required")
	}

	var upd planka.CardUpdate
	if c.IsSet("name") {
		upd.Name = planka.String(c.String("name"))
	}
	if c.IsSet("description") {
		upd.Description = planka.String(c.String("description"))
	}
	if c.IsSet("position") {
		upd.Position = planka.Float64(c.Float64("position"))
	}
	if c.IsSet("due-date") {
		upd.DueDate = planka.String(c.String("due-date"))
	}
	if upd.Name == nil && upd.Description == nil && upd.Position == nil && upd.DueDate == nil {
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

	card, err := client.UpdateCard(ctx, cardID, upd)
	if err != nil {
		return err
	}

	return printItem(c, card)
}

func cardMove(c *cli.Context) error {
	cardID := c.Args().Get(0)
	listID := c.Args().Get(1)
	if cardID == "" || listID == "" {
		return fmt.Errorf("card ID and list ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	card, err := client.MoveCard(ctx, cardID, listID, c.Float64("position"))
	if err != nil {
		return err
	}

	return printItem(c, card)
}

func cardDuplicate(c *cli.Context) error {
	cardID := c.Args().First()
	if cardID == "" {
		return fmt.Errorf("card ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	card, err := client.DuplicateCard(ctx, cardID, c.Float64("position"))
	if err != nil {
		return err
	}

	return printItem(c, card)
}

func cardDelete(c *cli.Context) error {
	cardID := c.Args().First()
	if cardID == "" {
		return fmt.Errorf("card ID required")
	}

	if !confirm(c, "card '"+cardID+"'") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteCard(ctx, cardID); err != nil {
		return err
	}

	fmt.Printf("Card %s deleted.\n", cardID)
	return nil
}

func cardActivity(c *cli.Context) error {
	cardID := c.Args().First()
	if cardID == "" {
		return fmt.Errorf("card ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	actions, err := client.CardActions(ctx, cardID)
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

func cardMemberAdd(c *cli.Context) error {
	cardID := c.Args().Get(0)
	userID := c.Args().Get(1)
	if cardID == "" || userID == "" {
		return fmt.Errorf("card ID and user ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	membership, err := client.AddCardMember(ctx, cardID, userID)
	if err != nil {
		return err
	}

	return printItem(c, membership)
}

func cardMemberRemove(c *cli.Context) error {
	cardID := c.Args().Get(0)
	userID := c.Args().Get(1)
	if cardID == "" || userID == "" {
		return fmt.Errorf("card ID and user ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.RemoveCardMember(ctx, cardID, userID); err != nil {
		return err
	}

	fmt.Printf("User %s unassigned from card %s.\n", userID, cardID)
	return nil
}

func cardLabelAdd(c *cli.Context) error {
	cardID := c.Args().Get(0)
	labelID := c.Args().Get(1)
	if cardID == "" || labelID == "" {
		return fmt.Errorf("card ID and label ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	cardLabel, err := client.AddCardLabel(ctx, cardID, labelID)
	if err != nil {
		return err
	}

	return printItem(c, cardLabel)
}

func cardLabelRemove(c *cli.Context) error {
	cardID := c.Args().Get(0)
	labelID := c.Args().Get(1)
	if cardID == "" || labelID == "" {
		return fmt.Errorf("card ID and label ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.RemoveCardLabel(ctx, cardID, labelID); err != nil {
		return err
	}

	fmt.Printf("Label %s removed from card %s.\n", labelID, cardID)
	return nil
}
