package main

import (
	"os"

	"github.com/jeffleon2/draftea-dashboard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
