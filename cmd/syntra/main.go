package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/syntra-foundation/syntra-core/internal/backend"
	"github.com/syntra-foundation/syntra-core/internal/config"
	"github.com/syntra-foundation/syntra-core/internal/gate"
	"github.com/syntra-foundation/syntra-core/internal/logging"
	"github.com/syntra-foundation/syntra-core/internal/trace"
)

// #region main
func main() {
	configPath := flag.String("config", config.EnvOr("SYNTRA_CONFIG", ""), "path to config YAML")
	dbPath := flag.String("db", config.EnvOr("SYNTRA_DB", ""), "path to trace db (empty uses config, none disables tracing)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	logger := logging.New(cfg.Logging)
	defer logger.Sync()

	opts := []gate.Option{gate.WithLogger(logger)}
	if cfg.Backend.Enabled {
		client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Model)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		err := client.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Warn("generation backend unavailable, staying on heuristic path", zap.Error(err))
		} else {
			opts = append(opts, gate.WithGenerator(client))
		}
	}

	g, err := gate.New(cfg, opts...)
	if err != nil {
		log.Fatalf("build pipeline: %v", err)
	}

	tracePath := *dbPath
	if tracePath == "" {
		tracePath = cfg.TracePath
	}
	var store *trace.Store
	if tracePath != "" {
		store, err = trace.NewStore(tracePath)
		if err != nil {
			log.Fatalf("open trace db: %v", err)
		}
		defer store.Close()
	}

	fmt.Println("Syntra ready.")
	if tracePath != "" {
		fmt.Printf("  trace: %s\n", tracePath)
	}
	fmt.Println("Type a message (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		resp, err := g.Evaluate(ctx, input)
		cancel()
		if err != nil {
			log.Printf("turn error: %v", err)
			continue
		}

		fmt.Printf("\n%s\n\n", resp.Text)
		fmt.Printf("[%s] tone=%s confidence=%.2f drift=%.3f class=%s autonomy=%.2f\n",
			resp.TurnID[:8], resp.Tone, resp.Confidence,
			resp.Diagnostics.DriftMagnitude, resp.Diagnostics.Classification,
			resp.Diagnostics.AutonomyLevel)

		if store != nil {
			err := store.Record(trace.TurnRecord{
				TurnID:            resp.TurnID,
				Input:             input,
				Emotion:           resp.Diagnostics.Emotion,
				Framework:         resp.Diagnostics.Framework,
				Domain:            resp.Diagnostics.Domain,
				ConsciousnessType: resp.Diagnostics.ConsciousnessType,
				Tone:              string(resp.Tone),
				Classification:    resp.Diagnostics.Classification,
				Confidence:        resp.Confidence,
				DriftMagnitude:    resp.Diagnostics.DriftMagnitude,
				Autonomy:          resp.Diagnostics.AutonomyLevel,
			})
			if err != nil {
				log.Printf("trace error: %v", err)
			}
		}
	}
}

// #endregion main
