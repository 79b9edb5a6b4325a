package main

import (
	"fmt"
	"os"

	"flist/internal/cli/commands"
)

var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
