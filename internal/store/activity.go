// ABOUTME: Activity store: per-day add/update/quiz counters keyed by date
// ABOUTME: Upserts merge into the existing day and rewrite date.json under the lock
package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DateLayout is the format of DailyActivity.Date.
const DateLayout = "2006-01-02"

// Mode names the counter an activity event increments.
type Mode string

const (
	ModeAdd    Mode = "add"
	ModeUpdate Mode = "update"
	ModeQuiz   Mode = "quiz"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAdd, ModeUpdate, ModeQuiz:
		return m, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidArgument, s)
	}
}

// DailyActivity counts the events recorded on one day.
type DailyActivity struct {
	Date   string  `json:"date"`
	Add    uint32  `json:"add"`
	Update uint32  `json:"update"`
	Quiz   *uint32 `json:"quiz"`
}

// Activity holds the per-day counters and mirrors them to date.json.
type Activity struct {
	mu     sync.Mutex
	files  *Files
	logger *zap.Logger
	days   []DailyActivity
}

// NewActivity returns an empty activity store backed by files.
func NewActivity(files *Files, logger *zap.Logger) *Activity {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Activity{
		files:  files,
		logger: logger,
		days:   []DailyActivity{},
	}
}

// List returns a copy of the counters in insertion order.
func (a *Activity) List() []DailyActivity {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]DailyActivity, len(a.days))
	for i, day := range a.days {
		out[i] = day.clone()
	}
	return out
}

// Range returns the days between since and until (inclusive, either may be
// nil) sorted by date.
func (a *Activity) Range(since, until *time.Time) []DailyActivity {
	var lo, hi string
	if since != nil {
		lo = since.Format(DateLayout)
	}
	if until != nil {
		hi = until.Format(DateLayout)
	}

	a.mu.Lock()
	var out []DailyActivity
	for _, day := range a.days {
		if lo != "" && day.Date < lo {
			continue
		}
		if hi != "" && day.Date > hi {
			continue
		}
		out = append(out, day.clone())
	}
	a.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Upsert records one event of the given mode on date. An existing day has
// the named counter incremented. A new day starts at add=1, update=0; a quiz
// event also starts its quiz counter at 1.
func (a *Activity) Upsert(date string, mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if i := a.indexOf(date); i >= 0 {
		day := &a.days[i]
		switch mode {
		case ModeAdd:
			day.Add++
		case ModeUpdate:
			day.Update++
		case ModeQuiz:
			if day.Quiz == nil {
				one := uint32(1)
				day.Quiz = &one
			} else {
				*day.Quiz++
			}
		}
	} else {
		day := DailyActivity{Date: date, Add: 1, Update: 0}
		if mode == ModeQuiz {
			one := uint32(1)
			day.Quiz = &one
		}
		a.days = append(a.days, day)
	}

	return a.saveLocked()
}

// Save writes all counters to date.json.
func (a *Activity) Save() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saveLocked()
}

// Load replaces the in-memory counters with the contents of date.json. A
// missing file leaves them as they are.
func (a *Activity) Load() error {
	var days []DailyActivity
	found, err := a.files.loadJSON(DatesFile, &days)
	if err != nil {
		return err
	}
	if !found {
		a.logger.Debug("no dates file yet", zap.String("path", a.files.Path(DatesFile)))
		return nil
	}
	if days == nil {
		days = []DailyActivity{}
	}

	a.mu.Lock()
	a.days = days
	a.mu.Unlock()

	a.logger.Info("loaded dates from storage", zap.Int("count", len(days)))
	return nil
}

func (a *Activity) saveLocked() error {
	if err := a.files.saveJSON(DatesFile, a.days); err != nil {
		return err
	}
	a.logger.Debug("saved dates", zap.Int("count", len(a.days)))
	return nil
}

func (a *Activity) indexOf(date string) int {
	for i := range a.days {
		if a.days[i].Date == date {
			return i
		}
	}
	return -1
}

func (d DailyActivity) clone() DailyActivity {
	if d.Quiz != nil {
		q := *d.Quiz
		d.Quiz = &q
	}
	return d
}
