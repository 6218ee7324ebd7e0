// ABOUTME: Vocabulary store: ordered word list guarded by one mutex
// ABOUTME: Every mutation rewrites words.json while the lock is held
package store

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Word is one vocabulary entry.
type Word struct {
	ID         uint32  `json:"id"`
	Vocabulary string  `json:"vocabulary"`
	Meaning    string  `json:"meaning"`
	Translate  string  `json:"translate"`
	Category   string  `json:"category"`
	Example    *string `json:"example"`
}

// WordInput carries the caller-supplied fields of a word.
type WordInput struct {
	Vocabulary string
	Meaning    string
	Translate  string
	Category   string
	Example    *string
}

// Filter narrows a word search. Empty fields match everything.
type Filter struct {
	Text     string
	Category string
}

// Words holds the vocabulary list and mirrors it to words.json.
type Words struct {
	mu     sync.Mutex
	files  *Files
	logger *zap.Logger
	words  []Word
}

// NewWords returns an empty vocabulary store backed by files.
func NewWords(files *Files, logger *zap.Logger) *Words {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Words{
		files:  files,
		logger: logger,
		words:  []Word{},
	}
}

// List returns a copy of the current words in insertion order.
func (w *Words) List() []Word {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Word, len(w.words))
	for i, word := range w.words {
		out[i] = word.clone()
	}
	return out
}

// Get returns the word with the given id.
func (w *Words) Get(id uint32) (Word, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexOf(id)
	if i < 0 {
		return Word{}, fmt.Errorf("%w: word %d", ErrNotFound, id)
	}
	return w.words[i].clone(), nil
}

// Add appends a new word and persists the list. The id is one past the id
// of the last element, or 1 for an empty list. The word stays in memory
// even when persisting fails.
func (w *Words) Add(in WordInput) (Word, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id, err := w.nextID()
	if err != nil {
		return Word{}, err
	}

	word := Word{
		ID:         id,
		Vocabulary: in.Vocabulary,
		Meaning:    in.Meaning,
		Translate:  in.Translate,
		Category:   in.Category,
		Example:    copyString(in.Example),
	}
	w.words = append(w.words, word)

	if err := w.saveLocked(); err != nil {
		return word.clone(), err
	}
	return word.clone(), nil
}

// Update replaces every field of the word with the given id except the id.
func (w *Words) Update(id uint32, in WordInput) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	i := w.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: word %d", ErrNotFound, id)
	}

	w.words[i] = Word{
		ID:         id,
		Vocabulary: in.Vocabulary,
		Meaning:    in.Meaning,
		Translate:  in.Translate,
		Category:   in.Category,
		Example:    copyString(in.Example),
	}
	return w.saveLocked()
}

// Delete removes the first word with the given id. A missing id is not an
// error; the list is persisted either way.
func (w *Words) Delete(id uint32) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if i := w.indexOf(id); i >= 0 {
		w.words = append(w.words[:i], w.words[i+1:]...)
	}
	return w.saveLocked()
}

// Search returns words matching the filter, in insertion order.
func (w *Words) Search(filter Filter) []Word {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []Word
	for _, word := range w.words {
		if matchesFilter(&word, filter) {
			out = append(out, word.clone())
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func (w *Words) Categories() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	seen := make(map[string]bool)
	var out []string
	for _, word := range w.words {
		if word.Category == "" || seen[word.Category] {
			continue
		}
		seen[word.Category] = true
		out = append(out, word.Category)
	}
	return out
}

// Save writes the full list to words.json.
func (w *Words) Save() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.saveLocked()
}

// Load replaces the in-memory list with the contents of words.json. A
// missing file leaves the list as it is.
func (w *Words) Load() error {
	var words []Word
	found, err := w.files.loadJSON(WordsFile, &words)
	if err != nil {
		return err
	}
	if !found {
		w.logger.Debug("no words file yet", zap.String("path", w.files.Path(WordsFile)))
		return nil
	}
	if words == nil {
		words = []Word{}
	}

	w.mu.Lock()
	w.words = words
	w.mu.Unlock()

	w.logger.Info("loaded words from storage", zap.Int("count", len(words)))
	return nil
}

func (w *Words) saveLocked() error {
	if err := w.files.saveJSON(WordsFile, w.words); err != nil {
		return err
	}
	w.logger.Debug("saved words", zap.Int("count", len(w.words)))
	return nil
}

// nextID follows the last element, so a list ending at the largest id
// cannot grow.
func (w *Words) nextID() (uint32, error) {
	if len(w.words) == 0 {
		return 1, nil
	}
	last := w.words[len(w.words)-1].ID
	if last == math.MaxUint32 {
		return 0, fmt.Errorf("%w: no id after %d", ErrInvalidArgument, last)
	}
	return last + 1, nil
}

func (w *Words) indexOf(id uint32) int {
	for i := range w.words {
		if w.words[i].ID == id {
			return i
		}
	}
	return -1
}

func (word Word) clone() Word {
	word.Example = copyString(word.Example)
	return word
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// matchesFilter checks if a word matches the search filter.
func matchesFilter(word *Word, filter Filter) bool {
	if filter.Category != "" && !strings.EqualFold(word.Category, filter.Category) {
		return false
	}

	if filter.Text != "" {
		text := strings.ToLower(filter.Text)
		fields := []string{word.Vocabulary, word.Meaning, word.Translate}
		if word.Example != nil {
			fields = append(fields, *word.Example)
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field), text) {
				return true
			}
		}
		return false
	}

	return true
}
