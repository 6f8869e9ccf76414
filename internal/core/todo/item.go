// Package todo defines the todo item domain model and the line grammar
// used by master task lists and dated log files.
package todo

// Item represents a single task: a name, a duration in minutes, a
// completion flag, and an optional grouping tag.
type Item struct {
	Name     string
	Duration int
	Finished bool
	Tag      string
}

// Time returns the minutes this item contributes to completed time:
// the full duration when finished, zero otherwise.
func (i Item) Time() int {
	if i.Finished {
		return i.Duration
	}
	return 0
}

// Finish marks the item as completed.
func (i *Item) Finish() {
	i.Finished = true
}

// Uncomplete clears the completion flag.
func (i *Item) Uncomplete() {
	i.Finished = false
}

// FinishWithDuration sets a new duration and marks the item as completed.
// Used when the actual time spent differs from the planned time.
func (i *Item) FinishWithDuration(minutes int) {
	i.Duration = minutes
	i.Finished = true
}

// Clone returns an independent copy of the item.
func (i Item) Clone() Item {
	return i
}

// Log is an ordered day snapshot of items. Order is significant: it defines
// display indexes and where duplicated items are inserted.
type Log []Item
