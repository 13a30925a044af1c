package main

import (
	"io"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-parser/internal/logger"
)

// TestMain loads .env if available and silences logging for in-process tests
func TestMain(m *testing.M) {
	// Try to load .env file - ignore error if it doesn't exist (CI environment)
	_ = godotenv.Load()
	logger.Setup(false, io.Discard)

	os.Exit(m.Run())
}
