package daybook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/colonyops/daybook/internal/core/config"
)

// SyntaxGuide documents the todo file format, rendered by the doc command
// and the REPL help screen.
const SyntaxGuide = `# Daybook file format

A todo file is a list of lines. Lines are classified by their first
whitespace-delimited token:

- ` + "`###`" + ` starts or ends a block comment
- ` + "`#`" + ` denotes a todo item: a name followed by a duration like ` + "`(15m)`" + `,
  optionally tagged with a trailing ` + "`%tag`" + `
- ` + "`# DONE`" + ` marks a completed item, same shape otherwise
- anything else is a comment

Examples:

` + "```" + `
# listen to podcast (15m)
# DONE watch an episode of a tv show (20m) %tv-show
` + "```" + `

Each day's state is saved to ` + "`<date>_log.txt`" + ` in the working
directory. The file is fully rewritten on every change; editing it by hand
between commands is safe.
`

// KeywordHelp renders the operation table with the aliases currently bound
// in cfg, one line per canonical operation.
func KeywordHelp(cfg *config.Config) string {
	usage := map[string]string{
		config.OpList:           "list todo items",
		config.OpToggle:         "{num}: flip an item's completion flag",
		config.OpComplete:       "{num}: complete an item",
		config.OpUncomplete:     "{num}: un-complete an item",
		config.OpSetDuration:    "{num} {time}m: change an item's duration",
		config.OpFinishDuration: "{num} {time}m: complete an item with the actual time spent",
		config.OpDuplicate:      "{num}: insert a copy after an item",
		config.OpDuplicateDone:  "{num}: insert a completed copy after an item",
		config.OpNew:            "{line}: add an item, e.g. new read a chapter (30m) %books",
		config.OpDelete:         "{num}: delete an item",
		config.OpTime:           "show time spent today",
		config.OpWeekTime:       "show time for the last 7 days",
		config.OpCumulativeTime: "show time for all days",
		config.OpTags:           "show completed tags for today",
		config.OpCumulativeTags: "show completed tags for all days",
		config.OpCacheStats:     "show parse cache info",
		config.OpHelp:           "show this help",
		config.OpQuit:           "quit",
	}

	var b strings.Builder
	for _, op := range config.Ops() {
		aliases := append([]string{}, cfg.Keywords[op]...)
		sort.Strings(aliases)

		name := op
		if len(aliases) > 0 {
			name = fmt.Sprintf("%s (%s)", op, strings.Join(aliases, ", "))
		}
		fmt.Fprintf(&b, "  %-28s %s\n", name, usage[op])
	}
	return b.String()
}
