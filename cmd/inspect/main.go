package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/syntra-foundation/syntra-core/internal/trace"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to trace db")
	last := flag.Int("last", 20, "show N most recent turns")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/trace.db [--last N] [--json]")
		os.Exit(2)
	}

	store, err := trace.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := run(store, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region output

func run(store *trace.Store, last int, jsonOut bool) error {
	records, err := store.Recent(last)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no turns found")
		return nil
	}

	counts, err := store.CountByClassification()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(struct {
			Turns  []trace.TurnRecord `json:"turns"`
			Counts map[string]int     `json:"classification_counts"`
		}{records, counts})
	}

	fmt.Printf("%-10s  %-12s  %-18s  %-18s  %-6s  %-6s  %s\n",
		"Turn", "Emotion", "Tone", "Classification", "Conf", "Drift", "Time")
	fmt.Printf("%-10s  %-12s  %-18s  %-18s  %-6s  %-6s  %s\n",
		"----------", "------------", "------------------", "------------------", "------", "------", "--------------------")

	for _, r := range records {
		fmt.Printf("%-10s  %-12s  %-18s  %-18s  %-6.2f  %-6.3f  %s\n",
			shortID(r.TurnID), r.Emotion, r.Tone, r.Classification,
			r.Confidence, r.DriftMagnitude, r.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}

	fmt.Printf("\nClassification counts:\n")
	for tag, n := range counts {
		fmt.Printf("  %-18s %d\n", tag, n)
	}
	return nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
