// Package daybook is the service layer tying the parse cache, the log
// store, and the aggregators into the operation surface exposed to the CLI
// and the REPL.
package daybook

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/daybook/internal/core/cache"
	"github.com/colonyops/daybook/internal/core/daylog"
	"github.com/colonyops/daybook/internal/core/logging"
	"github.com/colonyops/daybook/internal/core/stats"
	"github.com/colonyops/daybook/internal/core/todo"
)

// weekWindow is the trailing calendar window used by week-time.
const weekWindow = 7

// IndexError reports an operation referencing a list position that does not
// exist.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("no item at index %d (list has %d items)", e.Index, e.Len)
}

// Service owns the session state: the parse cache and the log store. Every
// mutating operation runs load, mutate, save, reload so the returned list
// always reflects what was just written to disk.
type Service struct {
	store *daylog.Store
	cache *cache.Cache[todo.Log]
	log   zerolog.Logger
}

// NewService creates a service over the given store and cache.
func NewService(store *daylog.Store, c *cache.Cache[todo.Log]) *Service {
	return &Service{
		store: store,
		cache: c,
		log:   logging.Component("daybook"),
	}
}

// List returns the current day's working list.
func (s *Service) List() (todo.Log, error) {
	return s.store.ResolveToday()
}

// Snapshot writes the current working list to today's dated log. Run at
// startup so the day file exists from the first session of the day onward.
func (s *Service) Snapshot() error {
	items, err := s.store.ResolveToday()
	if err != nil {
		return err
	}
	return s.store.Save(items)
}

// mutate runs fn over the current list, saves the result, and reloads it
// for display.
func (s *Service) mutate(fn func(items todo.Log) (todo.Log, error)) (todo.Log, error) {
	items, err := s.store.ResolveToday()
	if err != nil {
		return nil, err
	}

	items, err = fn(items)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(items); err != nil {
		return nil, err
	}

	return s.store.ResolveToday()
}

func checkIndex(items todo.Log, idx int) error {
	if idx < 0 || idx >= len(items) {
		return &IndexError{Index: idx, Len: len(items)}
	}
	return nil
}

// Complete marks the item at idx as finished.
func (s *Service) Complete(idx int) (todo.Log, error) {
	return s.mutate(func(items todo.Log) (todo.Log, error) {
		if err := checkIndex(items, idx); err != nil {
			return nil, err
		}
		items[idx].Finish()
		return items, nil
	})
}

// Uncomplete clears the finished flag of the item at idx.
func (s *Service) Uncomplete(idx int) (todo.Log, error) {
	return s.mutate(func(items todo.Log) (todo.Log, error) {
		if err := checkIndex(items, idx); err != nil {
			return nil, err
		}
		items[idx].Uncomplete()
		return items, nil
	})
}

// Toggle flips the finished flag of the item at idx.
func (s *Service) Toggle(idx int) (todo.Log, error) {
	return s.mutate(func(items todo.Log) (todo.Log, error) {
		if err := checkIndex(items, idx); err != nil {
			return nil, err
		}
		items[idx].Finished = !items[idx].Finished
		return items, nil
	})
}

// SetDuration sets a new duration on the item at idx without touching its
// completion flag.
func (s *Service) SetDuration(idx, minutes int) (todo.Log, error) {
	return s.mutate(func(items todo.Log) (todo.Log, error) {
		if err := checkIndex(items, idx); err != nil {
			return nil, err
		}
		items[idx].Duration = minutes
		return items, nil
	})
}

// FinishWithDuration sets the actual time spent on the item at idx and
// marks it finished.
func (s *Service) FinishWithDuration(idx, minutes int) (todo.Log, error) {
	return s.mutate(func(items todo.Log) (todo.Log, error) {
		if err := checkIndex(items, idx); err != nil {
			return nil, err
		}
		items[idx].FinishWithDuration(minutes)
		return items, nil
	})
}

// Duplicate inserts an independent clone immediately after the item at idx.
func (s *Service) Duplicate(idx int) (todo.Log, error) {
	return s.duplicate(idx, false)
}

// DuplicateDone inserts a clone immediately after the item at idx and marks
// the clone finished. Used for repeatable tasks that were done again.
func (s *Service) DuplicateDone(idx int) (todo.Log, error) {
	return s.duplicate(idx, true)
}

func (s *Service) duplicate(idx int, finish bool) (todo.Log, error) {
	return s.mutate(func(items todo.Log) (todo.Log, error) {
		if err := checkIndex(items, idx); err != nil {
			return nil, err
		}

		clone := items[idx].Clone()
		if finish {
			clone.Finish()
		}

		items = append(items, todo.Item{})
		copy(items[idx+2:], items[idx+1:])
		items[idx+1] = clone
		return items, nil
	})
}

// New parses raw as an item line without its leading "# " and appends the
// result to the list.
func (s *Service) New(raw string) (todo.Log, error) {
	item, err := todo.ParseLine("# " + strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}

	return s.mutate(func(items todo.Log) (todo.Log, error) {
		return append(items, item), nil
	})
}

// Delete removes the item at idx.
func (s *Service) Delete(idx int) (todo.Log, error) {
	return s.mutate(func(items todo.Log) (todo.Log, error) {
		if err := checkIndex(items, idx); err != nil {
			return nil, err
		}
		return append(items[:idx], items[idx+1:]...), nil
	})
}

// TimeToday returns completed and scheduled minutes for the current day.
func (s *Service) TimeToday() (done, total int, err error) {
	items, err := s.store.ResolveToday()
	if err != nil {
		return 0, 0, err
	}
	done, total = stats.Totals(items)
	return done, total, nil
}

// TimeWeek returns completed and scheduled minutes over the trailing seven
// calendar dates including today. days counts the log files actually
// present, not a fixed seven.
func (s *Service) TimeWeek() (done, total, days int, err error) {
	logs, err := s.store.Window(weekWindow)
	if err != nil {
		return 0, 0, 0, err
	}
	done, total, days = stats.TotalsOver(logs)
	return done, total, days, nil
}

// TimeCumulative returns completed and scheduled minutes over every dated
// log in the working directory.
func (s *Service) TimeCumulative() (done, total, days int, err error) {
	logs, err := s.store.ReadAll()
	if err != nil {
		return 0, 0, 0, err
	}
	done, total, days = stats.TotalsOver(logs)
	return done, total, days, nil
}

// TagsToday groups today's finished items by tag.
func (s *Service) TagsToday() (counts, minutes *stats.TagTable, err error) {
	items, err := s.store.ResolveToday()
	if err != nil {
		return nil, nil, err
	}
	counts, minutes = stats.Tags(items)
	return counts, minutes, nil
}

// TagsCumulative groups the finished items of every dated log by tag.
func (s *Service) TagsCumulative() (counts, minutes *stats.TagTable, err error) {
	logs, err := s.store.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	counts, minutes = stats.TagsOver(logs)
	return counts, minutes, nil
}

// CacheStats returns the session's parse-cache hit/miss counters.
func (s *Service) CacheStats() cache.Stats {
	return s.cache.Stats()
}
