package main

import (
	"os"

	"github.com/rabix/sb-credentials/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
