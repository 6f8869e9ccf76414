package daybook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/colonyops/daybook/internal/core/stats"
	"github.com/colonyops/daybook/internal/core/styles"
	"github.com/colonyops/daybook/internal/core/todo"
)

func hours(minutes int) float64 {
	return float64(minutes) / 60
}

// RenderList renders the working list with display indexes, followed by the
// completion percentages. The numbering exists only in this view; it is
// never written to disk.
func RenderList(items todo.Log) string {
	var b strings.Builder

	for i, item := range items {
		b.WriteString(styles.Index.Render(fmt.Sprintf("(%d) ", i)))
		line := "# " + todo.Render(item)
		if item.Finished {
			line = styles.Done.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	taskPct, timePct, err := stats.Completion(items)
	switch {
	case errors.Is(err, stats.ErrNoItems):
		b.WriteString(styles.Muted.Render("no items") + "\n")
	case errors.Is(err, stats.ErrNoTime):
		b.WriteString(styles.Muted.Render("n/a tasks done (no scheduled time)") + "\n")
	default:
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%.2f%% tasks done", taskPct)) + "\n")
		b.WriteString(styles.Muted.Render(fmt.Sprintf("%.2f%% time done", timePct)) + "\n")
	}

	return b.String()
}

// RenderTimeToday renders the single-day time totals.
func RenderTimeToday(done, total int) string {
	return fmt.Sprintf("Today's time: %dm / %.2fhr (%dm scheduled)", done, hours(done), total)
}

// RenderTimeOver renders multi-day time totals with a per-day average.
// label names the range, e.g. "Cumulative" or "Weekly".
func RenderTimeOver(label string, done, days int) string {
	if days == 0 {
		return styles.Muted.Render("no logs yet")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s time: %dm / %.2fhr over %d day(s)\n", label, done, hours(done), days)
	fmt.Fprintf(&b, "%.2f hours per day avg.", hours(done)/float64(days))
	return b.String()
}

// RenderTags renders a tag table under the given header, one right-aligned
// row per tag in first-occurrence order.
func RenderTags(header string, counts, minutes *stats.TagTable) string {
	var b strings.Builder
	b.WriteString(styles.Header.Render(header) + "\n")

	if counts.Len() == 0 {
		b.WriteString(styles.Muted.Render("nothing completed yet") + "\n")
		return b.String()
	}

	for _, tag := range counts.Keys() {
		mins := minutes.Get(tag)
		label := fmt.Sprintf("%d %s(s)", counts.Get(tag), tag)
		fmt.Fprintf(&b, "%25s: %dm / %.2fhr\n", label, mins, hours(mins))
	}
	return b.String()
}
