package main

import (
	"fmt"
	"os"

	"github.com/osse101/aion2-tracker/internal/bootstrap"
	"github.com/osse101/aion2-tracker/internal/config"
)

// initLogger sets up logging and returns a func that closes the session log.
func initLogger(cfg *config.Config) func() {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	return func() {
		if logFile != nil {
			_ = logFile.Close()
		}
	}
}
