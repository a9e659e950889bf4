package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// defaultLabelColor is used when label create is not given a color.
const defaultLabelColor = "berry-red"

// LabelCommand returns the label subcommand group.
func LabelCommand() *cli.Command {
	return &cli.Command{
		Name:  "label",
		Usage: "Manage board labels",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a label on a board",
				ArgsUsage: "BOARD_ID NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "color",
						Value: defaultLabelColor,
						Usage: "Label color name",
					},
					positionFlag(),
				},
				Action: labelCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a label",
				ArgsUsage: "LABEL_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New label name",
					},
					&cli.StringFlag{
						Name:  "color",
						Usage: "New label color",
					},
					&cli.Float64Flag{
						Name:  "position",
						Usage: "New position among sibling labels",
					},
				},
				Action: labelUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a label",
				ArgsUsage: "LABEL_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    labelDelete,
			},
		},
	}
}

func labelCreate(c *cli.Context) error {
	boardID := c.Args().Get(0)
	name := c.Args().Get(1)
	if boardID == "" || name == "" {
		return fmt.Errorf("board ID and label name required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	label, err := client.CreateLabel(ctx, boardID, name, c.String("color"), c.Float64("position"))
	if err != nil {
		return err
	}

	return printItem(c, label)
}

func labelUpdate(c *cli.Context) error {
	labelID := c.Args().First()
	if labelID == "" {
		return fmt.Errorf("label ID required")
	}

	var upd planka.LabelUpdate
	if c.IsSet("name") {
		upd.Name = planka.String(c.String("name"))
	}
	if c.IsSet("color") {
		upd.Color = planka.String(c.String("color"))
	}
	if c.IsSet("position") {
		upd.Position = planka.Float64(c.Float64("position"))
	}
	if upd.Name == nil && upd.Color == nil && upd.Position == nil {
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

	label, err := client.UpdateLabel(ctx, labelID, upd)
	if err != nil {
		return err
	}

	return printItem(c, label)
}

func labelDelete(c *cli.Context) error {
	labelID := c.Args().First()
	if labelID == "" {
		return fmt.Errorf("label ID required")
	}

	if !confirm(c, "label '"+labelID+"'") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteLabel(ctx, labelID); err != nil {
		return err
	}

	fmt.Printf("Label %s deleted.\n", labelID)
	return nil
}
