// Package main is the entry point for the linfit CLI.
package main

import (
	"log/slog"
	"os"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("linfit failed", "error", err)
		os.Exit(1)
	}
}
