// ABOUTME: Tests for the command surface
// ABOUTME: Covers startup loading, add_word side effects, and the end-to-end word lifecycle
package app

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/wordbook/internal/store"
)

var fixedNow = time.Date(2025, 6, 14, 9, 30, 0, 0, time.Local)

func openTestApp(t *testing.T, dir string) *App {
	t.Helper()
	a, err := Open(context.Background(), Options{
		DataDir: dir,
		Now:     func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return a
}

func readDates(t *testing.T, dir string) []store.DailyActivity {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, store.DatesFile))
	require.NoError(t, err)
	var days []store.DailyActivity
	require.NoError(t, json.Unmarshal(content, &days))
	return days
}

func TestOpen(t *testing.T) {
	t.Run("requires data dir", func(t *testing.T) {
		_, err := Open(context.Background(), Options{})
		assert.ErrorIs(t, err, store.ErrInvalidArgument)
	})

	t.Run("empty directory starts empty", func(t *testing.T) {
		a := openTestApp(t, t.TempDir())
		assert.Empty(t, a.GetWords())
		assert.Empty(t, a.GetDates())
	})

	t.Run("loads existing files before returning", func(t *testing.T) {
		dir := t.TempDir()
		words := `[{"id": 4, "vocabulary": "run", "meaning": "m", "translate": "t", "category": "verb", "example": null}]`
		dates := `[{"date": "2025-06-13", "add": 3, "update": 1, "quiz": 2}]`
		require.NoError(t, os.WriteFile(filepath.Join(dir, store.WordsFile), []byte(words), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, store.DatesFile), []byte(dates), 0644))

		a := openTestApp(t, dir)
		require.Len(t, a.GetWords(), 1)
		require.Len(t, a.GetDates(), 1)

		word, err := a.AddWord(context.Background(), store.WordInput{Vocabulary: "walk"})
		require.NoError(t, err)
		assert.Equal(t, uint32(5), word.ID)
		assert.Len(t, a.GetWords(), 2)
	})

	t.Run("malformed file fails startup", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, store.DatesFile), []byte("nope"), 0644))

		_, err := Open(context.Background(), Options{DataDir: dir})
		assert.ErrorIs(t, err, store.ErrParse)
	})
}

func TestWordLifecycle(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := openTestApp(t, dir)

	_, err := a.AddWord(ctx, store.WordInput{
		Vocabulary: "run",
		Meaning:    "(verb) move fast",
		Translate:  "courir",
		Category:   "verb",
	})
	require.NoError(t, err)

	words := a.GetWords()
	require.Len(t, words, 1)
	assert.Equal(t, uint32(1), words[0].ID)
	assert.Nil(t, words[0].Example)

	assert.Equal(t, []store.DailyActivity{{Date: "2025-06-14", Add: 1}}, a.GetDates())

	require.NoError(t, a.DeleteWord(ctx, 1))
	assert.Empty(t, a.GetWords())

	_, err = a.GetWordByID(1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Activity counters are not rolled back on deletion.
	assert.Equal(t, []store.DailyActivity{{Date: "2025-06-14", Add: 1}}, readDates(t, dir))

	content, err := os.ReadFile(filepath.Join(dir, store.WordsFile))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(content))
}

func TestAddWordCountsPerDay(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	now := fixedNow
	a, err := Open(ctx, Options{DataDir: dir, Now: func() time.Time { return now }})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := a.AddWord(ctx, store.WordInput{Vocabulary: "w"})
		require.NoError(t, err)
	}
	now = fixedNow.AddDate(0, 0, 1)
	_, err = a.AddWord(ctx, store.WordInput{Vocabulary: "w"})
	require.NoError(t, err)

	assert.Equal(t, []store.DailyActivity{
		{Date: "2025-06-14", Add: 3},
		{Date: "2025-06-15", Add: 1},
	}, a.GetDates())

	ids := []uint32{}
	for _, w := range a.GetWords() {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []uint32{1, 2, 3, 4}, ids)
}

func TestAddWordSurfacesPersistenceFailure(t *testing.T) {
	dir := t.TempDir()
	a := openTestApp(t, dir)

	// Replace the data directory with a file so writes fail.
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0644))

	_, err := a.AddWord(context.Background(), store.WordInput{Vocabulary: "run"})
	assert.ErrorIs(t, err, store.ErrIO)

	// The append is visible even though the command failed.
	assert.Len(t, a.GetWords(), 1)
	assert.Empty(t, a.GetDates())
}

func TestUpdateWord(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := openTestApp(t, dir)
	_, err := a.AddWord(ctx, store.WordInput{Vocabulary: "run", Category: "verb"})
	require.NoError(t, err)

	example := "She walks to work."
	require.NoError(t, a.UpdateWord(ctx, 1, store.WordInput{Vocabulary: "walk", Meaning: "m", Translate: "t", Category: "verb", Example: &example}))

	got, err := a.GetWordByID(1)
	require.NoError(t, err)
	assert.Equal(t, "walk", got.Vocabulary)
	require.NotNil(t, got.Example)
	assert.Equal(t, example, *got.Example)

	err = a.UpdateWord(ctx, 9, store.WordInput{Vocabulary: "x"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	// A fresh App sees the update.
	reopened := openTestApp(t, dir)
	assert.Equal(t, a.GetWords(), reopened.GetWords())
}

func TestAddDate(t *testing.T) {
	ctx := context.Background()

	t.Run("ignores payload counts", func(t *testing.T) {
		a := openTestApp(t, t.TempDir())
		quiz := uint32(40)

		require.NoError(t, a.AddDate(ctx, DateInput{Date: "2025-01-02", Add: 10, Update: 20, Quiz: &quiz}, "add"))
		assert.Equal(t, []store.DailyActivity{{Date: "2025-01-02", Add: 1}}, a.GetDates())

		require.NoError(t, a.AddDate(ctx, DateInput{Date: "2025-01-02"}, "add"))
		assert.Equal(t, []store.DailyActivity{{Date: "2025-01-02", Add: 2}}, a.GetDates())
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		a := openTestApp(t, t.TempDir())

		err := a.AddDate(ctx, DateInput{Date: "2025-01-02"}, "bogus")
		assert.ErrorIs(t, err, store.ErrInvalidArgument)
		assert.Empty(t, a.GetDates())
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		a := openTestApp(t, t.TempDir())

		err := a.AddDate(ctx, DateInput{Date: "02/01/2025"}, "add")
		assert.ErrorIs(t, err, store.ErrInvalidArgument)
		assert.Empty(t, a.GetDates())
	})
}

func TestSaveCommands(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := openTestApp(t, dir)

	require.NoError(t, a.SaveWords(ctx))
	require.NoError(t, a.SaveDates(ctx))

	for _, name := range []string{store.WordsFile, store.DatesFile} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.JSONEq(t, "[]", string(content))
	}
}

func TestCancelledContextDoesNotMutate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := openTestApp(t, t.TempDir())

	_, err := a.AddWord(ctx, store.WordInput{Vocabulary: "run"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, a.AddDate(ctx, DateInput{Date: "2025-01-02"}, "add"), context.Canceled)
	assert.Empty(t, a.GetWords())
	assert.Empty(t, a.GetDates())
}

func TestConcurrentAddsKeepIDsUnique(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	a := openTestApp(t, dir)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := a.AddWord(ctx, store.WordInput{Vocabulary: "w"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	seen := make(map[uint32]bool)
	for _, w := range a.GetWords() {
		assert.False(t, seen[w.ID], "duplicate id %d", w.ID)
		seen[w.ID] = true
	}
	assert.Len(t, seen, 20)
	assert.Equal(t, []store.DailyActivity{{Date: "2025-06-14", Add: 20}}, a.GetDates())

	// The file matches memory once all writers are done.
	reopened := openTestApp(t, dir)
	assert.Equal(t, a.GetWords(), reopened.GetWords())
	assert.Equal(t, a.GetDates(), reopened.GetDates())
}
