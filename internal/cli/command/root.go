package command

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"github.com/plankutil/planka-cli/internal/cli/config"
	"github.com/plankutil/planka-cli/internal/cli/connection"
	"github.com/plankutil/planka-cli/internal/cli/output"
	"github.com/plankutil/planka-cli/internal/infra/buildinfo"
	"github.com/plankutil/planka-cli/internal/planka"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "planka-cli",
		Usage:   "Planka command-line management tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			LoginCommand(),
			LogoutCommand(),
			ConfigCommand(),
			ProjectCommand(),
			BoardCommand(),
			ListCommand(),
			CardCommand(),
			LabelCommand(),
			TaskListCommand(),
			TaskCommand(),
			CommentCommand(),
			AttachmentCommand(),
			UserCommand(),
			NotificationCommand(),
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Planka server URL (e.g., https://planka.example.com)",
		},
		&cli.StringFlag{
			Name:  "token",
			Usage: "Bearer token for authentication",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file path",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	// Server connection
	Server string
	Token  string
	Config string

	// Output format
	Output string // table, json, yaml

	// Other
	Verbose bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server:  c.String("server"),
		Token:   c.String("token"),
		Config:  c.String("config"),
		Output:  c.String("output"),
		Verbose: c.Bool("verbose"),
	}
}

// Store returns the config store selected by the --config flag, or the
// per-user default location.
func Store(c *cli.Context) *config.Store {
	return config.NewStore(c.String("config"))
}

// EnsureClient resolves connection settings and returns an API client.
// It fails when no server URL is configured; a missing token is left
// for the server to reject so unauthenticated endpoints still work.
func EnsureClient(c *cli.Context) (*planka.Client, error) {
	flags := ParseGlobalFlags(c)

	sess, err := config.NewStore(flags.Config).Resolve(flags.Server, flags.Token)
	if err != nil {
		return nil, err
	}
	if sess.URL == "" {
		return nil, fmt.Errorf("no server URL configured (run: planka-cli login)")
	}

	return planka.New(sess.URL, sess.Token, logger(flags)), nil
}

// logger returns the invocation logger. Debug request logging is
// enabled by --verbose; otherwise only warnings surface.
func logger(flags *GlobalFlags) hclog.Logger {
	level := hclog.Warn
	if flags.Verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "planka-cli",
		Level:  level,
		Output: os.Stderr,
	})
}

// requestCtx returns a context bounded by the per-request deadline.
func requestCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), connection.RequestTimeout)
}

// formatter returns the output formatter selected by --output.
func formatter(c *cli.Context) output.Formatter {
	return output.NewFormatter(output.Format(c.String("output")))
}

// tableOutput reports whether the selected format renders as a table.
// Unknown formats fall back to the table view.
func tableOutput(c *cli.Context) bool {
	switch output.Format(c.String("output")) {
	case output.FormatJSON, output.FormatYAML:
		return false
	default:
		return true
	}
}

// printItem writes a single resource through the selected formatter.
func printItem(c *cli.Context, item planka.Item) error {
	return formatter(c).Format(os.Stdout, item)
}

// printItems writes a resource collection. In table mode only the
// named keys become columns; JSON and YAML carry the full payload.
func printItems(c *cli.Context, items []planka.Item, headers, keys []string) error {
	if !tableOutput(c) {
		return formatter(c).Format(os.Stdout, items)
	}

	table := &output.Table{Headers: headers}
	for _, item := range items {
		row := make([]string, len(keys))
		for i, k := range keys {
			row[i] = output.Cell(item[k])
		}
		table.AddRow(row...)
	}
	return table.Render(os.Stdout)
}

// confirm asks for confirmation before a destructive action unless
// --force is set. A declined prompt prints Cancelled.
func confirm(c *cli.Context, what string) bool {
	if c.Bool("force") {
		return true
	}
	fmt.Printf("Are you sure you want to delete %s? [y/N]: ", what)
	var answer string
	fmt.Scanln(&answer)
	if answer != "y" && answer != "Y" {
		fmt.Println("Cancelled.")
		return false
	}
	return true
}

// forceFlag returns the shared --force flag for destructive commands.
func forceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   "Skip confirmation",
	}
}

// positionFlag returns the shared --position flag. The default leaves
// gaps for later insertions.
func positionFlag() cli.Flag {
	return &cli.Float64Flag{
		Name:  "position",
		Usage: "Position among siblings",
		Value: planka.DefaultPosition,
	}
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
