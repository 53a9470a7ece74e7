package main

import (
	"os"

	"github.com/SrRenks/febraban-code/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
