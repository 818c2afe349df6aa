package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
)

// TestMain picks up CHROME_PATH and the S3 settings from a local .env when one exists.
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}
