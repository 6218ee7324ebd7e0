// ABOUTME: Word and date commands invoked by the CLI and MCP transports
// ABOUTME: add_word records an add event for today after persisting the word
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/harper/wordbook/internal/store"
)

// DateInput is the add_date payload. Only Date is used to key the entry;
// the counts are accepted for compatibility and otherwise ignored.
type DateInput struct {
	Date   string
	Add    uint32
	Update uint32
	Quiz   *uint32
}

// GetWords returns every word in insertion order.
func (a *App) GetWords() []store.Word {
	return a.words.List()
}

// GetWordByID returns one word or store.ErrNotFound.
func (a *App) GetWordByID(id uint32) (store.Word, error) {
	return a.words.Get(id)
}

// SearchWords returns words matching filter.
func (a *App) SearchWords(filter store.Filter) []store.Word {
	return a.words.Search(filter)
}

// Categories returns the distinct word categories.
func (a *App) Categories() []string {
	return a.words.Categories()
}

// AddWord appends a word, persists it, and counts an add event for today.
// The word stays in memory when a later step fails; the error is still
// returned so callers can tell the command did not fully succeed.
func (a *App) AddWord(ctx context.Context, in store.WordInput) (store.Word, error) {
	if err := ctx.Err(); err != nil {
		return store.Word{}, err
	}

	word, err := a.words.Add(in)
	if err != nil {
		a.logger.Warn("word added but not saved", zap.Uint32("id", word.ID), zap.Error(err))
		return word, fmt.Errorf("failed to save words: %w", err)
	}

	if err := a.activity.Upsert(a.Today(), store.ModeAdd); err != nil {
		a.logger.Warn("word added but activity not recorded", zap.Uint32("id", word.ID), zap.Error(err))
		return word, fmt.Errorf("failed to record activity: %w", err)
	}

	return word, nil
}

// UpdateWord replaces the fields of an existing word.
func (a *App) UpdateWord(ctx context.Context, id uint32, in store.WordInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.words.Update(id, in); err != nil {
		return fmt.Errorf("failed to update word: %w", err)
	}
	return nil
}

// DeleteWord removes a word. Deleting an unknown id succeeds.
func (a *App) DeleteWord(ctx context.Context, id uint32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.words.Delete(id); err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

// SaveWords writes words.json.
func (a *App) SaveWords(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.words.Save(); err != nil {
		return fmt.Errorf("failed to save words: %w", err)
	}
	return nil
}

// GetDates returns every activity day in insertion order.
func (a *App) GetDates() []store.DailyActivity {
	return a.activity.List()
}

// DatesInRange returns activity days between since and until, sorted by date.
func (a *App) DatesInRange(since, until *time.Time) []store.DailyActivity {
	return a.activity.Range(since, until)
}

// AddDate records one event of mode on in.Date.
func (a *App) AddDate(ctx context.Context, in DateInput, mode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := time.Parse(store.DateLayout, in.Date); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", store.ErrInvalidArgument, in.Date)
	}
	m, err := store.ParseMode(mode)
	if err != nil {
		return err
	}
	if err := a.activity.Upsert(in.Date, m); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// SaveDates writes date.json.
func (a *App) SaveDates(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.activity.Save(); err != nil {
		return fmt.Errorf("failed to save dates: %w", err)
	}
	return nil
}
