package main

import (
	"os"

	"pearpass-host/cmd/pearpassd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
