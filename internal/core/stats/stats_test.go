package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/daybook/internal/core/todo"
)

func TestCompletion(t *testing.T) {
	items := todo.Log{
		{Name: "a", Duration: 10, Finished: true},
		{Name: "b", Duration: 20, Finished: true},
		{Name: "c", Duration: 30},
		{Name: "d", Duration: 40},
	}

	taskPct, timePct, err := Completion(items)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, taskPct, 0.001)
	assert.InDelta(t, 30.0, timePct, 0.001)
}

func TestCompletion_Bounds(t *testing.T) {
	none := todo.Log{{Name: "a", Duration: 10}, {Name: "b", Duration: 5}}
	taskPct, timePct, err := Completion(none)
	require.NoError(t, err)
	assert.Zero(t, taskPct)
	assert.Zero(t, timePct)

	all := todo.Log{{Name: "a", Duration: 10, Finished: true}}
	taskPct, timePct, err = Completion(all)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, taskPct, 0.001)
	assert.InDelta(t, 100.0, timePct, 0.001)
}

func TestCompletion_EmptyList(t *testing.T) {
	_, _, err := Completion(nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestCompletion_NoScheduledTime(t *testing.T) {
	items := todo.Log{{Name: "a", Finished: true}, {Name: "b"}}

	_, _, err := Completion(items)
	assert.ErrorIs(t, err, ErrNoTime)
}

func TestTotals(t *testing.T) {
	items := todo.Log{
		{Name: "a", Duration: 10, Finished: true},
		{Name: "b", Duration: 5},
		{Name: "c", Duration: 7, Finished: true},
	}

	done, total := Totals(items)
	assert.Equal(t, 17, done, "only finished items contribute completed minutes")
	assert.Equal(t, 22, total)
}

func TestTotalsOver(t *testing.T) {
	logs := []todo.Log{
		{{Name: "a", Duration: 10, Finished: true}},
		{{Name: "b", Duration: 20}},
		{},
	}

	done, total, days := TotalsOver(logs)
	assert.Equal(t, 10, done)
	assert.Equal(t, 30, total)
	assert.Equal(t, 3, days, "an empty log still counts as a day")
}

func TestTags(t *testing.T) {
	items := todo.Log{
		{Name: "A", Duration: 10, Finished: true},
		{Name: "B", Duration: 5, Finished: true, Tag: "x"},
		{Name: "C", Duration: 7, Tag: "x"},
	}

	counts, minutes := Tags(items)

	require.Equal(t, []string{UntaggedKey, "x"}, counts.Keys())
	assert.Equal(t, 1, counts.Get(UntaggedKey))
	assert.Equal(t, 1, counts.Get("x"), "unfinished items are excluded")
	assert.Equal(t, 10, minutes.Get(UntaggedKey))
	assert.Equal(t, 5, minutes.Get("x"))
}

func TestTags_FirstSeenOrder(t *testing.T) {
	items := todo.Log{
		{Name: "a", Duration: 1, Finished: true, Tag: "beta"},
		{Name: "b", Duration: 2, Finished: true, Tag: "alpha"},
		{Name: "c", Duration: 3, Finished: true, Tag: "beta"},
	}

	counts, minutes := Tags(items)

	assert.Equal(t, []string{"beta", "alpha"}, counts.Keys())
	assert.Equal(t, 2, counts.Get("beta"))
	assert.Equal(t, 4, minutes.Get("beta"))
	assert.Equal(t, 2, counts.Len())
}

func TestTags_NothingFinished(t *testing.T) {
	counts, minutes := Tags(todo.Log{{Name: "a", Duration: 5, Tag: "x"}})

	assert.Zero(t, counts.Len())
	assert.Zero(t, minutes.Len())
}

func TestTagsOver(t *testing.T) {
	logs := []todo.Log{
		{{Name: "a", Duration: 10, Finished: true, Tag: "work"}},
		{{Name: "b", Duration: 20, Finished: true, Tag: "work"}, {Name: "c", Duration: 5, Finished: true}},
	}

	counts, minutes := TagsOver(logs)

	assert.Equal(t, []string{"work", UntaggedKey}, counts.Keys())
	assert.Equal(t, 2, counts.Get("work"))
	assert.Equal(t, 30, minutes.Get("work"))
	assert.Equal(t, 5, minutes.Get(UntaggedKey))
}
