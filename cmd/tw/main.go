// Package main provides tw, a personal task manager with recurring tasks.
package main

import (
	"os"

	"taskwheel/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args, os.Environ(), nil))
}
