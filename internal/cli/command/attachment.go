package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// AttachmentCommand returns the attachment subcommand group.
func AttachmentCommand() *cli.Command {
	return &cli.Command{
		Name:    "attachment",
		Aliases: []string{"att"},
		Usage:   "Manage card attachments",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Upload a file to a card",
				ArgsUsage: "CARD_ID FILE",
				Action:    attachmentAdd,
			},
			{
				Name:      "update",
				Usage:     "Rename an attachment",
				ArgsUsage: "ATTACHMENT_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New attachment name",
					},
				},
				Action: attachmentUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete an attachment",
				ArgsUsage: "ATTACHMENT_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    attachmentDelete,
			},
		},
	}
}

func attachmentAdd(c *cli.Context) error {
	cardID := c.Args().Get(0)
	filePath := c.Args().Get(1)
	if cardID == "" || filePath == "" {
		return fmt.Errorf("card ID and file path required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	attachment, err := client.CreateAttachment(ctx, cardID, filePath)
	if err != nil {
		return err
	}

	return printItem(c, attachment)
}

func attachmentUpdate(c *cli.Context) error {
	attachmentID := c.Args().First()
	if attachmentID == "" {
		return fmt.Errorf("attachment ID required")
	}

	var upd planka.AttachmentUpdate
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

	attachment, err := client.UpdateAttachment(ctx, attachmentID, upd)
	if err != nil {
		return err
	}

	return printItem(c, attachment)
}

func attachmentDelete(c *cli.Context) error {
	attachmentID := c.Args().First()
	if attachmentID == "" {
		return fmt.Errorf("attachment ID required")
	}

	if !confirm(c, "attachment '"+attachmentID+"'") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteAttachment(ctx, attachmentID); err != nil {
		return err
	}

	fmt.Printf("Attachment %s deleted.\n", attachmentID)
	return nil
}
