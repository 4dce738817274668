package main

import (
	"os"

	"github.com/logsleuth/logsleuth/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
