package main

import (
	"os"

	"github.com/Rana718/bookstock/cmd"
	"github.com/fatih/color"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}
