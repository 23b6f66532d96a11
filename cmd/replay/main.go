package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/syntra-foundation/syntra-core/internal/config"
	"github.com/syntra-foundation/syntra-core/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	configPath := flag.String("config", config.EnvOr("SYNTRA_CONFIG", ""), "path to config YAML")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--config path]")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	fix, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	results, summary, err := replay.Run(context.Background(), cfg, fix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(2)
	}

	os.Exit(printResults(fix, results, summary))
}

// #endregion main

// #region output

func printResults(fix *replay.Fixture, results []replay.TurnResult, summary replay.Summary) int {
	if fix.Description != "" {
		fmt.Printf("Fixture: %s\n\n", fix.Description)
	}

	fmt.Printf("%-4s  %-18s  %-18s  %-10s  %-6s  %s\n",
		"Turn", "Tone", "Classification", "Confidence", "Drift", "Match")
	fmt.Printf("%-4s  %-18s  %-18s  %-10s  %-6s  %s\n",
		"----", "------------------", "------------------", "----------", "------", "-----")

	for _, r := range results {
		match := "OK"
		if !r.Matched {
			match = "DIFF (" + r.Reason + ")"
		}
		fmt.Printf("%-4d  %-18s  %-18s  %-10.2f  %-6.3f  %s\n",
			r.Index, r.Tone, r.Classification, r.Confidence, r.DriftMagnitude, match)
	}

	fmt.Printf("\nSummary: %d total, %d match, %d diverge\n",
		summary.TotalTurns, summary.Matched, summary.Mismatched)
	fmt.Printf("Final autonomy: %.3f  cumulative drift: %.3f\n",
		summary.FinalAutonomy, summary.FinalDrift)
	for tag, n := range summary.ByClassification {
		fmt.Printf("  %-18s %d\n", tag, n)
	}

	if summary.Mismatched > 0 {
		return 1
	}
	return 0
}

// #endregion output
