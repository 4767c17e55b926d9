// Package main provides the entry point for the plangen CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Cron inherits no shell environment; a .env at the vault root
	// fills the gap. Existing variables win.
	_ = godotenv.Load()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
