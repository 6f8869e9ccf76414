package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Item
	}{
		{
			name: "pending item with tag",
			line: "# Write report (45m) %work",
			want: Item{Name: "Write report", Duration: 45, Finished: false, Tag: "work"},
		},
		{
			name: "done item without tag",
			line: "# DONE Read book (30m)",
			want: Item{Name: "Read book", Duration: 30, Finished: true, Tag: ""},
		},
		{
			name: "zero duration",
			line: "# stretch (0m)",
			want: Item{Name: "stretch", Duration: 0},
		},
		{
			name: "name with inner parens after duration boundary",
			line: "# call mom (15m) %family",
			want: Item{Name: "call mom", Duration: 15, Tag: "family"},
		},
		{
			name: "extra whitespace",
			line: "#   DONE   deep work   (90m)   %focus",
			want: Item{Name: "deep work", Duration: 90, Finished: true, Tag: "focus"},
		},
		{
			name: "trailing space no tag",
			line: "# walk the dog (20m) ",
			want: Item{Name: "walk the dog", Duration: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string // FormatError.Expected
	}{
		{name: "missing hash", line: "Write report (45m)", expected: "#"},
		{name: "empty line", line: "", expected: "#"},
		{name: "missing duration boundary", line: "# Bad line missing duration", expected: " ("},
		{name: "unclosed duration", line: "# task (45m", expected: ")"},
		{name: "missing m suffix", line: "# task (45)", expected: "m"},
		{name: "negative duration", line: "# task (-5m)", expected: "non-negative minute count"},
		{name: "garbage duration", line: "# task (lots m)", expected: "non-negative minute count"},
		{name: "trailing junk without percent", line: "# task (5m) work", expected: "%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			require.Error(t, err)

			var ferr *FormatError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, tt.expected, ferr.Expected)
		})
	}
}

func TestParseLine_EOLDistinctFromWrongChar(t *testing.T) {
	_, err := ParseLine("")
	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.True(t, ferr.EOL)
	assert.Contains(t, ferr.Error(), "line ended")

	_, err = ParseLine("x")
	require.ErrorAs(t, err, &ferr)
	assert.False(t, ferr.EOL)
	assert.Contains(t, ferr.Error(), `got "x"`)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "pending with tag",
			item: Item{Name: "Write report", Duration: 45, Tag: "work"},
			want: "Write report (45m) %work",
		},
		{
			name: "done without tag",
			item: Item{Name: "Read book", Duration: 30, Finished: true},
			want: "DONE Read book (30m) ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.item))
		})
	}
}

func TestRoundTrip(t *testing.T) {
	items := []Item{
		{Name: "Write report", Duration: 45, Tag: "work"},
		{Name: "Read book", Duration: 30, Finished: true},
		{Name: "stretch", Duration: 0},
		{Name: "DONE-ish naming", Duration: 5, Finished: true, Tag: "odd"},
	}

	for _, item := range items {
		got, err := ParseLine("# " + Render(item))
		require.NoError(t, err, "round-trip %v", item)
		assert.Equal(t, item, got)
	}
}

func TestParseDuration(t *testing.T) {
	n, err := ParseDuration("45m")
	require.NoError(t, err)
	assert.Equal(t, 45, n)

	_, err = ParseDuration("45")
	assert.Error(t, err)

	_, err = ParseDuration("")
	assert.Error(t, err)
}
