package main

import (
	"os"

	"github.com/rustyeddy/stratbot/cmd/stratbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
