package main

import (
	"os"

	"github.com/kbc2qif/kbc2qif/internal/commands"
)

func main() {
	// The command logs its own failures.
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
