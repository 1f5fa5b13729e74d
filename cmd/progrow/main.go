package main

import (
	"os"

	"github.com/pablasso/progrow/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
