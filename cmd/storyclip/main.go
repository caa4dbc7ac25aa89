package main

import (
	"os"

	"github.com/maheshrk/storyclip/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
