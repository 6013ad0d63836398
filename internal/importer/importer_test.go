package importer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/Veraticus/the-credit-must-flow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImporter_ReaderFor(t *testing.T) {
	imp := New()

	for _, name := range []string{"jan.ofx", "JAN.QFX", "feb.csv", "mar.json"} {
		_, err := imp.ReaderFor(name)
		assert.NoError(t, err, name)
	}

	_, err := imp.ReaderFor("statement.pdf")
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestImporter_LoadFilesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "jan.csv", "date,amount,method,description\n2026-01-18,3500,mobile_money,Bridal\n2026-01-15,1200,card,Event\n")
	jsonPath := writeFile(t, dir, "jan.json", `[
		{"date": "2026-01-15", "amount": 1200, "method": "card", "description": "Event"},
		{"date": "2026-01-12", "amount": 800, "method": "cash", "description": "Lesson"}
	]`)

	var seen []string
	result, err := New().LoadFiles(context.Background(), []string{csvPath, jsonPath}, func(p string) {
		seen = append(seen, p)
	})
	require.NoError(t, err)

	assert.Len(t, result.Entries, 3)
	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, map[string]int{csvPath: 2, jsonPath: 1}, result.PerFile)
	assert.Equal(t, []string{csvPath, jsonPath}, seen)
}

func TestImporter_LoadFilesKeepsRepeatedLinesWithinAFile(t *testing.T) {
	dir := t.TempDir()
	jan := writeFile(t, dir, "jan.csv", `date,amount,method,description
2026-01-10,500,cash,Haircut
2026-01-10,500,cash,Haircut
2026-01-10,500,cash,Haircut
`)
	overlap := writeFile(t, dir, "overlap.csv", `date,amount,method,description
2026-01-10,500,cash,Haircut
2026-01-11,700,card,Braids
`)

	result, err := New().LoadFiles(context.Background(), []string{jan}, nil)
	require.NoError(t, err)
	assert.Len(t, result.Entries, 3)
	assert.Zero(t, result.Duplicates)

	result, err = New().LoadFiles(context.Background(), []string{jan, overlap}, nil)
	require.NoError(t, err)
	assert.Len(t, result.Entries, 4)
	assert.Equal(t, 1, result.Duplicates)
	assert.Equal(t, map[string]int{jan: 3, overlap: 1}, result.PerFile)
}

func TestImporter_LoadFilesDistinguishesSourceIDs(t *testing.T) {
	at := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	first := testutil.Entry(500, model.MethodCash, at)
	first.SourceID = "FIT-1"
	second := first
	second.SourceID = "FIT-2"

	imp := &Importer{readers: map[string]Reader{
		".ofx": staticReader{first, second},
	}}
	dir := t.TempDir()
	jan := writeFile(t, dir, "jan.ofx", "")
	again := writeFile(t, dir, "jan-copy.ofx", "")

	result, err := imp.LoadFiles(context.Background(), []string{jan, again}, nil)
	require.NoError(t, err)
	assert.Len(t, result.Entries, 2)
	assert.Equal(t, 2, result.Duplicates)
}

type staticReader []model.NewTransaction

func (s staticReader) ParseFile(context.Context, io.Reader) ([]model.NewTransaction, error) {
	return s, nil
}

func TestImporter_LoadFilesStopsOnError(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.csv", "date,amount,method\n2026-01-18,10,cash\n")
	bad := writeFile(t, dir, "bad.txt", "whatever")

	_, err := New().LoadFiles(context.Background(), []string{good, bad}, nil)
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)

	_, err = New().LoadFiles(context.Background(), []string{filepath.Join(dir, "missing.csv")}, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestImporter_LoadFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().LoadFiles(ctx, []string{"a.csv"}, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestToHistory(t *testing.T) {
	at := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	untitled := testutil.Entry(300, model.MethodMobileMoney, at.AddDate(0, 0, -3))
	untitled.Description = "  "
	entries := []model.NewTransaction{
		testutil.Entry(100, model.MethodCash, at.AddDate(0, 0, -5)),
		testutil.Entry(200, model.MethodCard, at.AddDate(0, 0, -1)),
		untitled,
	}

	history := ToHistory(entries)
	require.Len(t, history, 3)

	assert.Equal(t, "200", history[0].Amount.String())
	assert.Equal(t, "300", history[1].Amount.String())
	assert.Equal(t, "100", history[2].Amount.String())
	assert.Equal(t, "Transaction", history[1].Description)
	for _, txn := range history {
		assert.NotEmpty(t, txn.ID)
	}
}

func TestSortNewestFirst_Stable(t *testing.T) {
	at := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	txns := []model.Transaction{
		{ID: "a", OccurredAt: at},
		{ID: "b", OccurredAt: at.Add(time.Hour)},
		{ID: "c", OccurredAt: at},
	}

	SortNewestFirst(txns)
	assert.Equal(t, "b", txns[0].ID)
	assert.Equal(t, "a", txns[1].ID)
	assert.Equal(t, "c", txns[2].ID)
}
