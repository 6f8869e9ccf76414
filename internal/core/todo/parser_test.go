package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	lines := []string{
		"my todo list for the day",
		"",
		"# listen to podcast (15m)",
		"# DONE watch an episode of a tv show (20m) %tv-show",
		"anything not starting with # is a comment",
	}

	items, err := Parse(lines)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, Item{Name: "listen to podcast", Duration: 15}, items[0])
	assert.Equal(t, Item{Name: "watch an episode of a tv show", Duration: 20, Finished: true, Tag: "tv-show"}, items[1])
}

func TestParse_BlockComment(t *testing.T) {
	items, err := Parse([]string{
		"### ",
		"# ignored (1m)",
		"###",
		"# Real (2m)",
	})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Real", items[0].Name)
}

func TestParse_BlockCommentToggleMidLine(t *testing.T) {
	// The toggle is recognized by first token, not exact line content.
	items, err := Parse([]string{
		"### everything below is stale",
		"# stale (5m)",
		"### end of stale section",
		"# live (5m)",
	})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "live", items[0].Name)
}

func TestParse_UnterminatedBlockCommentSwallowsRest(t *testing.T) {
	items, err := Parse([]string{
		"# kept (5m)",
		"###",
		"# swallowed (10m)",
		"# also swallowed (15m)",
	})
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "kept", items[0].Name)
}

func TestParse_MalformedItemLineFails(t *testing.T) {
	_, err := Parse([]string{
		"# fine (5m)",
		"# broken item with no duration",
	})

	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, " (", ferr.Expected)
}

func TestParse_MalformedCommentNeverFails(t *testing.T) {
	items, err := Parse([]string{
		"#not-an-item because the token is not a bare hash",
		"## also just a comment",
		"(45m) stray duration",
	})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseText(t *testing.T) {
	items, err := ParseText("# one (1m)\n\n# DONE two (2m)\n")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "two", items[1].Name)
}
