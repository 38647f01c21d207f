package main

import (
	"os"

	"github.com/amedev/sheetscout/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
