package main

import (
	"os"

	"github.com/moltapp/tradescope/cmd/tradescope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
