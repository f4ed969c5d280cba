// Package main is the entry point for the portfolio backend.
package main

import (
	"os"

	"github.com/brightlane-studio/portfolio-backend/cmd/portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
