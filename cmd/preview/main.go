// Package main renders a demo report offline: stub sources, in-memory state,
// no network and no email. Useful for iterating on the renderers.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"market-pulse/internal/domain"
	"market-pulse/internal/orchestrator"
	"market-pulse/internal/reference"
	"market-pulse/internal/reporting"
	"market-pulse/internal/sources/stub"
	"market-pulse/internal/storage/memory"
	"market-pulse/internal/watchlist"
)

func main() {
	outputDir := flag.String("output-dir", "out", "Output directory for generated files")
	flag.Parse()

	ctx := context.Background()
	sectors := watchlist.Default()
	prices, hiring := stub.Demo(sectors)

	// Seed references below today's stub observations so the preview shows
	// non-zero deltas instead of an all-baseline first run.
	backend := memory.NewStateStore()
	backend.Seed(seededState(sectors, prices, hiring))

	orch := orchestrator.New(orchestrator.Options{
		Sectors: sectors,
		Prices:  prices,
		Hiring:  hiring,
		Keeper:  reference.NewKeeper(backend),
	}).WithClock(func() time.Time {
		return time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC)
	})

	result, err := orch.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running preview: %v\n", err)
		os.Exit(1)
	}

	if err := writeOutputs(*outputDir, result.Report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing outputs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Preview report generated successfully:")
	fmt.Printf("  - %s/REPORT.md\n", *outputDir)
	fmt.Printf("  - %s/REPORT.html\n", *outputDir)
	fmt.Printf("  - %s/PRICES.csv\n", *outputDir)
	fmt.Printf("  - %s/HIRING.csv\n", *outputDir)
}

// seededState builds a pre-existing state whose references sit 10% below the
// stub prices and 20% below the stub hiring counts.
func seededState(sectors []domain.Sector, prices *stub.PriceSource, hiring *stub.HiringSource) *domain.PersistedState {
	state := domain.NewPersistedState()
	ninety := decimal.NewFromInt(90).Div(decimal.NewFromInt(100))

	for _, sector := range sectors {
		for _, e := range sector.Entities {
			if obs, ok := prices.Quotes[e.Ticker]; ok {
				state.PriceBaselines[e.Ticker] = obs.Price.Mul(ninety)
			}
			if count, ok := hiring.Counts[e.Company]; ok {
				state.HiringBaselines[e.Ticker] = count * 80 / 100
			}
		}
	}
	return state
}

func writeOutputs(dir string, report *reporting.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	outputs := map[string]string{
		"REPORT.md":   reporting.RenderMarkdown(report),
		"REPORT.html": reporting.RenderHTML(report),
		"PRICES.csv":  reporting.RenderPriceCSV(report),
		"HIRING.csv":  reporting.RenderHiringCSV(report),
	}
	for name, content := range outputs {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
