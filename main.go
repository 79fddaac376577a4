package main

import (
	"context"
	"log/slog"
	"os"

	"crime-stats/cli"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env in the working directory
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Error("Failed to load .env file", slog.Any("error", err))
		os.Exit(1)
	}

	if err := cli.Run(context.Background(), os.Args); err != nil {
		slog.Error("crime-stats failed", slog.Any("error", err))
		os.Exit(1)
	}
}
