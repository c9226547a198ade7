package main

import (
	"os"

	"github.com/aristath/plutus/cmd/plutus/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
