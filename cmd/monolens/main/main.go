package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/monolens/cmd/monolens"
)

func main() {
	rootCmd := monolens.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
