package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ahjin-guild/dialectmap/internal/client/api"
	"github.com/ahjin-guild/dialectmap/internal/client/cli"
	"github.com/ahjin-guild/dialectmap/internal/client/iocli"
	"github.com/ahjin-guild/dialectmap/internal/config"
	"github.com/ahjin-guild/dialectmap/internal/store"
	"github.com/ahjin-guild/dialectmap/internal/store/imagefs"
	"github.com/ahjin-guild/dialectmap/internal/store/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg := config.Load()

	// Глобальные флаги; флаг имеет приоритет над окружением
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.BaseURL, "Corpus API URL")
	dbPath := flag.String("db", cfg.DBPath, "Path to local database")
	imagesDir := flag.String("images", cfg.ImagesDir, "Path to local image directory")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	ctx := context.Background()

	// Открываем локальное хранилище
	db, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	images, err := imagefs.New(*imagesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open image directory: %v\n", err)
		os.Exit(1)
	}

	storeService := store.NewService(logger, db, db, images)

	apiClient := api.NewClient(api.Config{
		BaseURL: *serverURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})

	c := cli.New(iocli.NewStdio(), storeService, apiClient)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("Dialect Map Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
