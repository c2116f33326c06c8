package main

import (
	"os"

	"github.com/truecash-dev/truecash/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
