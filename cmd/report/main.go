// Package main runs one daily report cycle: fetch quotes and hiring counts,
// compute deltas against persisted references, and email the report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"market-pulse/internal/config"
	"market-pulse/internal/domain"
	"market-pulse/internal/mailer"
	"market-pulse/internal/orchestrator"
	"market-pulse/internal/reference"
	"market-pulse/internal/reporting"
	"market-pulse/internal/sources"
	"market-pulse/internal/sources/linkedin"
	"market-pulse/internal/sources/yahoo"
	"market-pulse/internal/storage"
	"market-pulse/internal/storage/file"
	"market-pulse/internal/storage/migrations"
	"market-pulse/internal/storage/postgres"
	"market-pulse/internal/watchlist"
)

func main() {
	watchlistPath := flag.String("watchlist", "", "Optional JSON watchlist file (defaults to the built-in set)")
	dryRun := flag.Bool("dry-run", false, "Compute and print the report without sending email")
	flag.Parse()

	// Handle shutdown signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal %v, cancelling run...\n", sig)
		cancel()
	}()

	// Configuration failures are the only condition that produces no report
	// at all; they abort before any fetch.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sectors := watchlist.Default()
	if *watchlistPath != "" {
		sectors, err = watchlist.LoadFile(*watchlistPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	backend, cleanup, err := createStateBackend(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	var publisher orchestrator.Publisher
	if !*dryRun {
		publisher = mailer.New(mailer.Options{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SenderEmail,
			Password: cfg.SenderPassword,
			From:     cfg.SenderEmail,
			To:       cfg.RecipientEmail,
		})
	}

	orch := orchestrator.New(orchestrator.Options{
		Sectors:      sectors,
		Prices:       yahoo.New(),
		Hiring:       linkedin.NewClient(),
		Keeper:       reference.NewKeeper(backend),
		Publisher:    publisher,
		IntervalDays: cfg.HiringIntervalDays,
		Pace:         sources.SleepPacer(cfg.HiringFetchDelay),
	})

	result, err := orch.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Run error: %v\n", err)
		os.Exit(1)
	}

	printSummary(result, sectors)
	if *dryRun {
		fmt.Println(reporting.RenderMarkdown(result.Report))
	}
}

// createStateBackend picks the state backend: PostgreSQL when a DSN is
// configured, the JSON state file otherwise.
func createStateBackend(ctx context.Context, cfg *config.Config) (storage.StateStore, func(), error) {
	if cfg.PostgresDSN == "" {
		return file.NewStateStore(cfg.StatePath), func() {}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("apply migrations: %w", err)
	}
	return postgres.NewStateStore(pool), pool.Close, nil
}

func printSummary(result *orchestrator.RunResult, sectors []domain.Sector) {
	total := 0
	for _, s := range sectors {
		total += len(s.Entities)
	}

	fmt.Println("Run completed:")
	fmt.Printf("  Quotes fetched: %d/%d\n", result.PricesFetched, total)
	if result.HiringRefreshed {
		fmt.Printf("  Hiring counts fetched: %d/%d\n", result.HiringFetched, total)
	} else {
		fmt.Println("  Hiring pass: skipped (cadence gate closed)")
	}
	fmt.Printf("  New baselines captured: %d\n", result.BaselinesCaptured)
	if len(result.Errors) > 0 {
		fmt.Printf("  Soft errors: %d\n", len(result.Errors))
		for _, e := range result.Errors {
			fmt.Printf("    - %s\n", e)
		}
	}
}
