package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/ahjin-guild/dialectmap/internal/client/api"
	"github.com/ahjin-guild/dialectmap/internal/config"
	"github.com/ahjin-guild/dialectmap/internal/smoke"
)

func main() {
	cfg := config.Load()

	all := flag.Bool("all", false, "Run all checks")
	connection := flag.Bool("connection", false, "Run connection checks")
	auth := flag.Bool("auth", false, "Run auth checks (needs CORPUS_TEST_PHONE / CORPUS_TEST_PASSWORD)")
	local := flag.Bool("local", false, "Run local store checks")
	serverURL := flag.String("server", cfg.BaseURL, "Corpus API URL")

	flag.Parse()

	// Без флагов гоняем все
	if !*all && !*connection && !*auth && !*local {
		*all = true
	}

	apiClient := api.NewClient(api.Config{
		BaseURL: *serverURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})

	var checks []smoke.Check
	if *all || *connection {
		checks = append(checks, smoke.ConnectionChecks(apiClient)...)
	}
	if *all || *auth {
		checks = append(checks, smoke.AuthChecks(apiClient)...)
	}
	if *all || *local {
		checks = append(checks, smoke.LocalChecks()...)
	}

	fmt.Printf("Running %d check(s) against %s\n\n", len(checks), *serverURL)

	runner := smoke.NewRunner(os.Stdout)
	if !runner.Run(context.Background(), checks) {
		os.Exit(1)
	}
}
