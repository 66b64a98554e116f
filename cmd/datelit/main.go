package main

import (
	"fmt"
	"os"

	"datelit/internal/cli"
	"datelit/internal/config"
)

func main() {
	// Defaults here; the root command layers DATELIT_* environment and flags on top
	root := cli.NewRootCommand(config.NewConfig(), os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.NewErrorHandler().ExitCode(err))
	}
}
