package main

import (
	"os"

	"github.com/idilsaglam/studycards/internal/cli"
)

func main() {
	// Flags and subcommands are parsed by the cobra tree; no args starts the TUI.
	os.Exit(cli.Execute(os.Args[1:]))
}
