package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/planka"
)

// LoginCommand returns the login command.
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Authenticate against a Planka server and store the token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "Server URL (prompted when omitted)",
			},
			&cli.StringFlag{
				Name:    "username",
				Aliases: []string{"u"},
				Usage:   "Email or username (prompted when omitted)",
			},
			&cli.StringFlag{
				Name:    "password",
				Aliases: []string{"p"},
				Usage:   "Password (prompted when omitted)",
			},
		},
		Action: login,
	}
}

// LogoutCommand returns the logout command.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:   "logout",
		Usage:  "Revoke the stored token and clear local credentials",
		Action: logout,
	}
}

func login(c *cli.Context) error {
	st := Store(c)
	reader := bufio.NewReader(os.Stdin)

	url := c.String("url")
	if url == "" {
		url = c.String("server")
	}
	if url == "" {
		stored, err := st.URL()
		if err != nil {
			return err
		}
		url = prompt(reader, "Server URL", stored)
	}
	if url == "" {
		return fmt.Errorf("server URL required")
	}

	username := c.String("username")
	if username == "" {
		username = prompt(reader, "Email or username", "")
	}
	if username == "" {
		return fmt.Errorf("email or username required")
	}

	password := c.String("password")
	if password == "" {
		password = prompt(reader, "Password", "")
	}
	if password == "" {
		return fmt.Errorf("password required")
	}

	flags := ParseGlobalFlags(c)
	client := planka.New(url, "", logger(flags))
	defer client.Close()

	ctx, cancel := requestCtx()
	defer cancel()

	token, err := client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := st.SetURL(client.BaseURL()); err != nil {
		return err
	}
	if err := st.SetToken(token); err != nil {
		return err
	}

	fmt.Println("Login successful.")
	fmt.Printf("Credentials stored in %s\n", st.Path())
	return nil
}

func logout(c *cli.Context) error {
	st := Store(c)

	// Best-effort server-side revocation; the local token is cleared
	// even when the server is unreachable.
	if client, err := EnsureClient(c); err == nil {
		defer client.Close()
		ctx, cancel := requestCtx()
		defer cancel()
		if err := client.Logout(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not revoke token server-side: %v\n", err)
		}
	}

	if err := st.Clear(); err != nil {
		return err
	}

	fmt.Println("Logged out.")
	return nil
}

// prompt reads one line from the reader, showing def as the value kept
// on an empty answer.
func prompt(reader *bufio.Reader, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}
