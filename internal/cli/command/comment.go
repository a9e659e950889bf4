package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// CommentCommand returns the comment subcommand group.
func CommentCommand() *cli.Command {
	return &cli.Command{
		Name:  "comment",
		Usage: "Manage card comments",
		Subcommands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "List the comments on a card",
				ArgsUsage: "CARD_ID",
				Action:    commentList,
			},
			{
				Name:      "add",
				Usage:     "Add a comment to a card",
				ArgsUsage: "CARD_ID TEXT",
				Action:    commentAdd,
			},
			{
				Name:      "update",
				Usage:     "Replace a comment's text",
				ArgsUsage: "COMMENT_ID TEXT",
				Action:    commentUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a comment",
				ArgsUsage: "COMMENT_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    commentDelete,
			},
		},
	}
}

func commentList(c *cli.Context) error {
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

	comments, err := client.Comments(ctx, cardID)
	if err != nil {
		return err
	}

	return printItems(c, comments,
		[]string{"ID", "USER", "TEXT", "CREATED"},
		[]string{"id", "userId", "text", "createdAt"})
}

func commentAdd(c *cli.Context) error {
	cardID := c.Args().Get(0)
	text := c.Args().Get(1)
	if cardID == "" || text == "" {
		return fmt.Errorf("card ID and comment text required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	comment, err := client.CreateComment(ctx, cardID, text)
	if err != nil {
		return err
	}

	return printItem(c, comment)
}

func commentUpdate(c *cli.Context) error {
	commentID := c.Args().Get(0)
	text := c.Args().Get(1)
	if commentID == "" || text == "" {
		return fmt.Errorf("comment ID and text required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	comment, err := client.UpdateComment(ctx, commentID, text)
	if err != nil {
		return err
	}

	return printItem(c, comment)
}

func commentDelete(c *cli.Context) error {
	commentID := c.Args().First()
	if commentID == "" {
		return fmt.Errorf("comment ID required")
	}

	if !confirm(c, "comment '"+commentID+"'") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	fmt.Printf("Comment %s deleted.\n", commentID)
	return nil
}
