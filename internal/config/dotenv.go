package config

import (
	"os"

	"github.com/joho/godotenv"
)

// loadDotenv loads the ".env" file from the working directory into the
// process environment when the file exists. Variables already set in
// the environment keep their values (godotenv does not override).
func loadDotenv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}

	_ = godotenv.Load()
}
