package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env file so TPX3_* overrides can be set per working
	// directory. Absence is not an error.
	_ = godotenv.Load()

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
