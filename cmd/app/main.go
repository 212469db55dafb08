package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/LootRoller_Go/internal/config"
	"github.com/osse101/LootRoller_Go/internal/console"
	"github.com/osse101/LootRoller_Go/internal/event"
	"github.com/osse101/LootRoller_Go/internal/logger"
	"github.com/osse101/LootRoller_Go/internal/metrics"
	"github.com/osse101/LootRoller_Go/internal/upgrade"
	"github.com/osse101/LootRoller_Go/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := logger.WithSessionID(context.Background(), logger.GenerateSessionID())
	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("Session failed", "error", err)
		os.Exit(1)
	}
}

// run wires one interactive session and blocks until the player quits.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	bus := event.NewMemoryBus()
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)
	collector.Register(bus)

	svc, err := upgrade.NewService(ctx, upgrade.Options{
		Mode:           cfg.LootMode(),
		StartItemLevel: cfg.StartItemLevel,
		Source:         utils.SeededSource(cfg.RNGSeed),
	}, bus)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	if err := console.Run(ctx, in, out, svc); err != nil {
		return err
	}

	if !cfg.MetricsSummary {
		return nil
	}
	totals, err := metrics.Totals(reg)
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	return console.NewRenderer(out).Summary(totals)
}
