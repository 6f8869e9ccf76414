// Package daylog persists day snapshots of the todo list, one dated file
// per calendar day alongside the user's master task list.
package daylog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/colonyops/daybook/internal/core/cache"
	"github.com/colonyops/daybook/internal/core/logging"
	"github.com/colonyops/daybook/internal/core/todo"
)

// logPattern matches dated log files in the working directory.
const logPattern = "*_log.txt"

// Filename returns the dated log filename for a calendar date.
func Filename(date time.Time) string {
	return date.Format("2006-01-02") + "_log.txt"
}

// Store resolves and rewrites dated log files in a single working
// directory. Reads go through a parse cache; every save invalidates the
// target file's entry before writing so the next read re-parses.
type Store struct {
	dir        string
	masterPath string
	cache      *cache.Cache[todo.Log]
	log        zerolog.Logger
	now        func() time.Time
}

// NewStore creates a store over dir, falling back to masterPath whenever
// today's dated log does not exist yet.
func NewStore(dir, masterPath string, c *cache.Cache[todo.Log]) *Store {
	return &Store{
		dir:        dir,
		masterPath: masterPath,
		cache:      c,
		log:        logging.Component("daylog"),
		now:        time.Now,
	}
}

// TodayPath returns the path of today's dated log file.
func (s *Store) TodayPath() string {
	return filepath.Join(s.dir, Filename(s.now()))
}

// Read parses the file at path through the cache.
func (s *Store) Read(path string) (todo.Log, error) {
	return s.cache.FetchOrCompute(path, func() (todo.Log, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read todo file: %w", err)
		}
		return todo.ParseText(string(data))
	})
}

// ResolveToday returns the current working list: today's dated log when it
// exists, the master file otherwise. A missing master file with no dated
// log for today leaves nothing to fall back to and is an error.
func (s *Store) ResolveToday() (todo.Log, error) {
	path := s.TodayPath()
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("stat today's log: %w", err)
		}
		s.log.Debug().Str("master", s.masterPath).Msg("no log for today, reading master list")
		path = s.masterPath
	}
	return s.Read(path)
}

// Save rewrites today's dated log with the full rendering of items. The
// cache entry is invalidated first so a hit recorded before this write can
// never be served after it.
func (s *Store) Save(items todo.Log) error {
	path := s.TodayPath()
	s.cache.Invalidate(path)

	if err := os.WriteFile(path, []byte(Serialize(items)), 0o644); err != nil {
		return fmt.Errorf("write todo log: %w", err)
	}

	s.log.Debug().Str("path", path).Int("items", len(items)).Msg("saved todo log")
	return nil
}

// Serialize renders items to file form, one "# "-prefixed line per item in
// order. Display numbering is never written to disk.
func Serialize(items todo.Log) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString("# ")
		b.WriteString(todo.Render(item))
		b.WriteString("\n")
	}
	return b.String()
}

// LogFiles returns the paths of every dated log file in the working
// directory, sorted by name, which for ISO-dated files is date order.
func (s *Store) LogFiles() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("scan log dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ok, err := doublestar.Match(logPattern, e.Name())
		if err != nil {
			return nil, fmt.Errorf("match log pattern: %w", err)
		}
		if ok {
			paths = append(paths, filepath.Join(s.dir, e.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// ReadAll parses every dated log file in the working directory.
func (s *Store) ReadAll() ([]todo.Log, error) {
	paths, err := s.LogFiles()
	if err != nil {
		return nil, err
	}

	logs := make([]todo.Log, 0, len(paths))
	for _, path := range paths {
		items, err := s.Read(path)
		if err != nil {
			return nil, err
		}
		logs = append(logs, items)
	}
	return logs, nil
}

// Window parses the logs of the most recent days calendar dates including
// today. Dates with no file on disk are skipped, so the result may hold
// fewer than days entries.
func (s *Store) Window(days int) ([]todo.Log, error) {
	today := s.now()

	var logs []todo.Log
	for i := days - 1; i >= 0; i-- {
		path := filepath.Join(s.dir, Filename(today.AddDate(0, 0, -i)))
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("stat log file: %w", err)
		}

		items, err := s.Read(path)
		if err != nil {
			return nil, err
		}
		logs = append(logs, items)
	}
	return logs, nil
}
