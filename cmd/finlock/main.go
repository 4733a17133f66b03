package main

import (
	"os"

	"github.com/amezhanin/finlock/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
