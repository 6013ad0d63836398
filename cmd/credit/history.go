package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/cli"
	"github.com/Veraticus/the-credit-must-flow/internal/config"
	"github.com/Veraticus/the-credit-must-flow/internal/engine"
	"github.com/Veraticus/the-credit-must-flow/internal/importer"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/Veraticus/the-credit-must-flow/internal/seed"
)

// loadEngine resolves configuration, loads the configured history, and
// starts an engine over it. Progress goes to progressOut.
func loadEngine(ctx context.Context, progressOut io.Writer) (*engine.Engine, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	history, err := loadHistory(ctx, cfg, progressOut)
	if err != nil {
		return nil, nil, err
	}

	engineConfig := engine.DefaultConfig()
	engineConfig.Clock = cfg.Clock()
	engineConfig.Consent = cfg.Consent
	if cfg.UseDemo && len(cfg.Files) == 0 && !cfg.AsOfFixed {
		// Score the demo at the date it was recorded.
		engineConfig.Clock = func() time.Time { return seed.DemoAsOf }
	}

	e, err := engine.NewWithConfig(history, engineConfig)
	if err != nil {
		return nil, nil, err
	}

	snap := e.Snapshot()
	slog.Debug("Engine ready",
		"transactions", snap.TransactionCount,
		"in_window", snap.WindowCount,
		"overall", snap.Score.Overall)

	return e, cfg, nil
}

func loadHistory(ctx context.Context, cfg *config.Config, progressOut io.Writer) ([]model.Transaction, error) {
	var history []model.Transaction
	if cfg.UseDemo {
		history = append(history, seed.Demo()...)
	}

	if len(cfg.Files) == 0 {
		return history, nil
	}

	bar := cli.NewImportProgress(progressOut, len(cfg.Files))
	result, err := importer.New().LoadFiles(ctx, cfg.Files, func(string) {
		if addErr := bar.Add(1); addErr != nil {
			slog.Warn("Failed to update progress bar", "error", addErr)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load statements: %w", err)
	}

	slog.Info("Loaded statements",
		"files", len(cfg.Files),
		"entries", len(result.Entries),
		"duplicates", result.Duplicates)

	history = append(history, importer.ToHistory(result.Entries)...)
	importer.SortNewestFirst(history)
	return history, nil
}
