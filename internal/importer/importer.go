// Package importer loads income history from statement files. OFX/QFX,
// CSV, and JSON statements are supported and chosen by file extension.
package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/Veraticus/the-credit-must-flow/internal/ofx"
	"github.com/Veraticus/the-credit-must-flow/internal/store"
	"github.com/google/uuid"
)

// Reader parses one statement into income entries.
type Reader interface {
	ParseFile(ctx context.Context, r io.Reader) ([]model.NewTransaction, error)
}

// Importer reads statement files and merges them into one history.
type Importer struct {
	readers map[string]Reader
}

// New returns an importer that understands .ofx, .qfx, .csv, and .json.
func New() *Importer {
	ofxParser := ofx.NewParser()
	return &Importer{
		readers: map[string]Reader{
			".ofx":  ofxParser,
			".qfx":  ofxParser,
			".csv":  &CSVReader{},
			".json": &JSONReader{},
		},
	}
}

// ReaderFor returns the reader registered for path's extension.
func (i *Importer) ReaderFor(path string) (Reader, error) {
	ext := strings.ToLower(filepath.Ext(path))
	r, ok := i.readers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
	return r, nil
}

// LoadFile parses a single statement file.
func (i *Importer) LoadFile(ctx context.Context, path string) ([]model.NewTransaction, error) {
	r, err := i.ReaderFor(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Warn("Failed to close statement", "file", path, "error", closeErr)
		}
	}()

	entries, err := r.ParseFile(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

// Result summarizes a multi-file import.
type Result struct {
	Entries    []model.NewTransaction
	PerFile    map[string]int
	Duplicates int
}

// LoadFiles parses every path, dropping entries already seen in an earlier
// file. Identical lines within one file are all kept. The first failing
// file aborts the import. progress, when non-nil, is called after each file.
func (i *Importer) LoadFiles(ctx context.Context, paths []string, progress func(path string)) (*Result, error) {
	result := &Result{PerFile: make(map[string]int, len(paths))}
	earlier := make(map[string]bool)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := i.LoadFile(ctx, path)
		if err != nil {
			return nil, err
		}

		added := 0
		current := make(map[string]bool, len(entries))
		for _, entry := range entries {
			hash := entry.Hash()
			if earlier[hash] {
				result.Duplicates++
				continue
			}
			current[hash] = true
			result.Entries = append(result.Entries, entry)
			added++
		}
		for hash := range current {
			earlier[hash] = true
		}
		result.PerFile[path] = added

		slog.Debug("Imported statement",
			"file", filepath.Base(path),
			"entries", len(entries),
			"added", added,
			"duplicates", len(entries)-added)

		if progress != nil {
			progress(path)
		}
	}

	return result, nil
}

// ToHistory assigns IDs to entries and returns them newest first, ready to
// seed a store.
func ToHistory(entries []model.NewTransaction) []model.Transaction {
	history := make([]model.Transaction, 0, len(entries))
	for _, e := range entries {
		desc := strings.TrimSpace(e.Description)
		if desc == "" {
			desc = store.DefaultDescription
		}
		history = append(history, model.Transaction{
			ID:          uuid.New().String(),
			Amount:      e.Amount,
			Method:      e.Method,
			OccurredAt:  e.OccurredAt,
			Description: desc,
		})
	}
	SortNewestFirst(history)
	return history
}

// SortNewestFirst orders txns by OccurredAt, newest first, keeping the
// relative order of transactions with equal timestamps.
func SortNewestFirst(txns []model.Transaction) {
	sort.SliceStable(txns, func(a, b int) bool {
		return txns[a].OccurredAt.After(txns[b].OccurredAt)
	})
}
