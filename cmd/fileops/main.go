package main

import (
	"os"

	"github.com/jmgilman/go/internal/cli"
)

// Set via ldflags.
var version = "dev"

func main() {
	os.Exit(cli.Run(version, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
