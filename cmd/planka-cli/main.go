// Package main provides the entry point for planka-cli.
//
// planka-cli is a command-line client for Planka project boards:
// projects, boards, lists, cards and the things attached to them.
package main

import (
	"fmt"
	"os"

	"github.com/plankutil/planka-cli/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
