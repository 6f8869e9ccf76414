package daybook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/daybook/internal/core/stats"
	"github.com/colonyops/daybook/internal/core/todo"
)

func TestRenderList(t *testing.T) {
	items := todo.Log{
		{Name: "a", Duration: 10, Finished: true},
		{Name: "b", Duration: 30, Tag: "work"},
	}

	out := RenderList(items)

	assert.Contains(t, out, "(0) ")
	assert.Contains(t, out, "# DONE a (10m)")
	assert.Contains(t, out, "(1) ")
	assert.Contains(t, out, "# b (30m) %work")
	assert.Contains(t, out, "50.00% tasks done")
	assert.Contains(t, out, "25.00% time done")
}

func TestRenderList_Empty(t *testing.T) {
	out := RenderList(nil)

	assert.Contains(t, out, "no items")
	assert.NotContains(t, out, "%")
}

func TestRenderList_NoScheduledTime(t *testing.T) {
	out := RenderList(todo.Log{{Name: "a", Finished: true}})

	assert.Contains(t, out, "n/a tasks done (no scheduled time)")
	assert.NotContains(t, out, "tasks done\n100")
}

func TestRenderTimeToday(t *testing.T) {
	assert.Equal(t, "Today's time: 90m / 1.50hr (120m scheduled)", RenderTimeToday(90, 120))
}

func TestRenderTimeOver(t *testing.T) {
	out := RenderTimeOver("Weekly", 180, 3)

	assert.Contains(t, out, "Weekly time: 180m / 3.00hr over 3 day(s)")
	assert.Contains(t, out, "1.00 hours per day avg.")
}

func TestRenderTimeOver_NoLogs(t *testing.T) {
	assert.Contains(t, RenderTimeOver("Cumulative", 0, 0), "no logs yet")
}

func TestRenderTags(t *testing.T) {
	items := todo.Log{
		{Name: "a", Duration: 30, Finished: true, Tag: "work"},
		{Name: "b", Duration: 30, Finished: true, Tag: "work"},
		{Name: "c", Duration: 15, Finished: true},
	}
	counts, minutes := stats.Tags(items)

	out := RenderTags("Todays tags:", counts, minutes)

	assert.Contains(t, out, "Todays tags:")
	assert.Contains(t, out, "2 work(s): 60m / 1.00hr")
	assert.Contains(t, out, "1 [untagged](s): 15m / 0.25hr")
}

func TestRenderTags_Empty(t *testing.T) {
	counts, minutes := stats.Tags(nil)

	out := RenderTags("Todays tags:", counts, minutes)
	assert.Contains(t, out, "nothing completed yet")
}
