// Package stats computes completion, time, and tag aggregates over one or
// many day logs.
package stats

import (
	"errors"

	"github.com/colonyops/daybook/internal/core/todo"
)

var (
	// ErrNoItems is returned when a percentage is requested over an empty
	// list. Callers display "n/a" rather than dividing by zero.
	ErrNoItems = errors.New("no items to compute percentages over")
	// ErrNoTime is returned when every item has a zero duration, leaving no
	// time denominator.
	ErrNoTime = errors.New("no scheduled time to compute percentages over")
)

// UntaggedKey groups completed items that carry no tag.
const UntaggedKey = "[untagged]"

// Completion returns the percentage of completed tasks and of completed
// minutes. Both denominators must be positive; an empty list fails with
// ErrNoItems and an all-zero-duration list with ErrNoTime.
func Completion(items todo.Log) (taskPct, timePct float64, err error) {
	if len(items) == 0 {
		return 0, 0, ErrNoItems
	}

	done, total := Totals(items)
	if total == 0 {
		return 0, 0, ErrNoTime
	}

	completed := 0
	for _, item := range items {
		if item.Finished {
			completed++
		}
	}

	taskPct = float64(completed) * 100 / float64(len(items))
	timePct = float64(done) * 100 / float64(total)
	return taskPct, timePct, nil
}

// Totals sums completed minutes and scheduled minutes over items.
func Totals(items todo.Log) (done, total int) {
	for _, item := range items {
		done += item.Time()
		total += item.Duration
	}
	return done, total
}

// TotalsOver sums Totals pointwise across logs. days is the number of logs,
// one per calendar day present on disk.
func TotalsOver(logs []todo.Log) (done, total, days int) {
	for _, items := range logs {
		d, t := Totals(items)
		done += d
		total += t
	}
	return done, total, len(logs)
}

// TagTable maps tags to counts or minutes, preserving the order in which
// tags were first seen.
type TagTable struct {
	keys   []string
	values map[string]int
}

func newTagTable() *TagTable {
	return &TagTable{values: make(map[string]int)}
}

func (t *TagTable) add(key string, n int) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] += n
}

// Keys returns the tags in first-occurrence order.
func (t *TagTable) Keys() []string {
	return t.keys
}

// Get returns the value accumulated for key.
func (t *TagTable) Get(key string) int {
	return t.values[key]
}

// Len returns the number of distinct tags in the table.
func (t *TagTable) Len() int {
	return len(t.keys)
}

// Tags groups the finished items by tag, returning a count table and a
// minutes table. Unfinished items are excluded; the empty tag is grouped
// under UntaggedKey.
func Tags(items todo.Log) (counts, minutes *TagTable) {
	counts = newTagTable()
	minutes = newTagTable()

	for _, item := range items {
		if !item.Finished {
			continue
		}
		tag := item.Tag
		if tag == "" {
			tag = UntaggedKey
		}
		counts.add(tag, 1)
		minutes.add(tag, item.Duration)
	}
	return counts, minutes
}

// TagsOver flattens logs and groups their finished items by tag.
func TagsOver(logs []todo.Log) (counts, minutes *TagTable) {
	var flat todo.Log
	for _, items := range logs {
		flat = append(flat, items...)
	}
	return Tags(flat)
}
