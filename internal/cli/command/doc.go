// Package command provides CLI command definitions for planka-cli.
//
// It uses urfave/cli/v2 for command parsing. Commands are thin: they
// read flags and arguments, call the API client and hand the decoded
// payload to an output formatter. Connection settings are resolved
// per invocation from flags, PLANKA_* environment variables and the
// persisted config file, in that order of priority.
package command
