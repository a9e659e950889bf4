package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// UserCommand returns the user subcommand group.
func UserCommand() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage users (admin only)",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List users",
				Action: userList,
			},
			{
				Name:      "get",
				Usage:     "Get user details",
				ArgsUsage: "USER_ID",
				Action:    userGet,
			},
			{
				Name:  "create",
				Usage: "Create a user",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Usage:    "Email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Usage:    "Initial password",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "username",
						Usage: "Username (optional)",
					},
				},
				Action: userCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a user",
				ArgsUsage: "USER_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New display name",
					},
					&cli.StringFlag{
						Name:  "username",
						Usage: "New username",
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "New email address",
					},
					&cli.StringFlag{
						Name:  "password",
						Usage: "New password",
					},
				},
				Action: userUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a user",
				ArgsUsage: "USER_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    userDelete,
			},
		},
	}
}

func userList(c *cli.Context) error {
	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	users, err := client.Users(ctx)
	if err != nil {
		return err
	}

	return printItems(c, users,
		[]string{"ID", "NAME", "USERNAME", "EMAIL"},
		[]string{"id", "name", "username", "email"})
}

func userGet(c *cli.Context) error {
	userID := c.Args().First()
	if userID == "" {
		return fmt.Errorf("user ID required")
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	user, err := client.User(ctx, userID)
	if err != nil {
		return err
	}

	return printItem(c, user)
}

func userCreate(c *cli.Context) error {
	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	user, err := client.CreateUser(ctx,
		c.String("email"),
		c.String("password"),
		c.String("name"),
		c.String("username"))
	if err != nil {
		return err
	}

	return printItem(c, user)
}

func userUpdate(c *cli.Context) error {
	userID := c.Args().First()
	if userID == "" {
		return fmt.Errorf("user ID required")
	}

	var upd planka.UserUpdate
	if c.IsSet("name") {
		upd.Name = planka.String(c.String("name"))
	}
	if c.IsSet("username") {
		upd.Username = planka.String(c.String("username"))
	}
	if c.IsSet("email") {
		upd.Email = planka.String(c.String("email"))
	}
	if c.IsSet("password") {
		upd.Password = planka.String(c.String("password"))
	}
	if upd.Name == nil && upd.Username == nil && upd.Email == nil && upd.Password == nil {
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

	user, err := client.UpdateUser(ctx, userID, upd)
	if err != nil {
		return err
	}

	return printItem(c, user)
}

func userDelete(c *cli.Context) error {
	userID := c.Args().First()
	if userID == "" {
		return fmt.Errorf("user ID required")
	}

	if !confirm(c, "user '"+userID+"'") {
		return nil
	}

	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	if err := client.DeleteUser(ctx, userID); err != nil {
		return err
	}

	fmt.Printf("User %s deleted.\n", userID)
	return nil
}
