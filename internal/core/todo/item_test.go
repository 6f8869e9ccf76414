package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_Time(t *testing.T) {
	item := Item{Name: "task", Duration: 30}
	assert.Equal(t, 0, item.Time(), "unfinished items contribute no time")

	item.Finish()
	assert.Equal(t, 30, item.Time())

	item.Uncomplete()
	assert.Equal(t, 0, item.Time())
}

func TestItem_FinishWithDuration(t *testing.T) {
	item := Item{Name: "task", Duration: 30}
	item.FinishWithDuration(45)

	assert.True(t, item.Finished)
	assert.Equal(t, 45, item.Duration)
}

func TestItem_Clone(t *testing.T) {
	item := Item{Name: "task", Duration: 30, Finished: true, Tag: "work"}
	clone := item.Clone()

	assert.Equal(t, item, clone)

	clone.Uncomplete()
	clone.Name = "changed"
	assert.True(t, item.Finished, "mutating the clone must not touch the source")
	assert.Equal(t, "task", item.Name)
}
