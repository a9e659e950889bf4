package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the local CLI configuration",
				Action: configShow,
			},
			{
				Name:      "set-url",
				Usage:     "Store the server URL",
				ArgsUsage: "URL",
				Action:    configSetURL,
			},
			{
				Name:   "clear",
				Usage:  "Remove the local configuration file",
				Action: configClear,
			},
			{
				Name:   "server",
				Usage:  "Show the server's instance configuration",
				Action: configServer,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	st := Store(c)

	cfg, err := st.Load()
	if err != nil {
		return err
	}

	fmt.Printf("Config file: %s\n\n", st.Path())

	if cfg.URL == "" && cfg.Token == "" {
		fmt.Println("(No configuration stored)")
		return nil
	}

	item := planka.Item{
		"url":   cfg.URL,
		"token": maskToken(cfg.Token),
	}
	return printItem(c, item)
}

func configSetURL(c *cli.Context) error {
	url := c.Args().First()
	if url == "" {
		return fmt.Errorf("server URL required")
	}

	st := Store(c)
	if err := st.SetURL(url); err != nil {
		return err
	}

	fmt.Printf("Server URL stored in %s\n", st.Path())
	return nil
}

func configClear(c *cli.Context) error {
	st := Store(c)
	if err := st.Clear(); err != nil {
		return err
	}
	fmt.Println("Configuration cleared.")
	return nil
}

func configServer(c *cli.Context) error {
	client, err := EnsureClient(c)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	cfg, err := client.ServerConfig(ctx)
	if err != nil {
		return err
	}

	return printItem(c, cfg)
}

// maskToken hides all but a short prefix of a stored token so config
// show never prints a usable credential.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return "********"
	}
	return token[:8] + "..."
}
