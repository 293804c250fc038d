// Command electionsim runs the rank-based election simulation over a
// pair of tab-separated survey exports and prints the final tally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/abtinsr/rank-based-elections/infrastructure/middleware"
	"github.com/abtinsr/rank-based-elections/infrastructure/report"
	"github.com/abtinsr/rank-based-elections/infrastructure/survey"
	"github.com/abtinsr/rank-based-elections/internal/application"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to the simulation config file")
		date       = flag.String("date", "", "Survey date override (defaults to the configured date)")
		blocs      = flag.Bool("blocs", false, "Also print bloc-level totals")
		verbose    = flag.Bool("v", false, "Log each elimination round")
	)
	flag.Parse()

	cfg, err := application.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *date != "" {
		cfg.Date = *date
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	metrics := middleware.NewElectionMetrics(prometheus.DefaultRegisterer)
	observer := middleware.NewOTelRoundObserver(metrics)

	simulator, err := application.NewSimulator(cfg.SimulatorConfig(), logger, observer)
	if err != nil {
		log.Fatalf("Failed to create simulator: %v", err)
	}

	loader := survey.NewLoader(
		survey.NewTSVBestPartySource(cfg.BestPartyPath),
		survey.NewTSVNextBestPartySource(cfg.NextBestPartyPath),
	)

	ctx := context.Background()
	table, err := loader.Load(ctx, cfg.Date)
	if err != nil {
		log.Fatalf("Failed to load survey data: %v", err)
	}

	tally, err := simulator.Simulate(ctx, table)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	rendered, err := report.RenderTally(tally)
	if err != nil {
		log.Fatalf("Failed to render tally: %v", err)
	}
	fmt.Printf("Final tally for %s:\n\n%s", cfg.Date, rendered)

	if *blocs {
		blocTotals, err := report.RenderBlocTotals(tally)
		if err != nil {
			log.Fatalf("Failed to render bloc totals: %v", err)
		}
		fmt.Printf("\nBloc totals:\n\n%s", blocTotals)
	}
}
