package main

import (
	"os"

	"github.com/arthur-debert/cio/cmd/cio"
)

func main() {
	rootCmd := cio.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		cio.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
