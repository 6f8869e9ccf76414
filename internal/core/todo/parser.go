package todo

import "strings"

// Parse decodes the lines of a todo file into an ordered Log.
//
// Classification is by the first whitespace-delimited token of each line:
//
//	###   toggles a block comment
//	#     starts an item line (grammar errors here are fatal)
//
// Blank lines, lines inside a block comment, and lines starting with any
// other token are comments and never fail.
//
// An unterminated block comment swallows the remainder of the input. That
// matches the established file format; files in the wild rely on a single
// trailing ### to comment out everything below it.
func Parse(lines []string) (Log, error) {
	var (
		items     Log
		inComment bool
	)

	for _, line := range lines {
		tokens := strings.Fields(line)

		switch {
		case len(tokens) == 0:
			continue
		case tokens[0] == "###":
			inComment = !inComment
		case inComment:
			continue
		case tokens[0] == "#":
			item, err := ParseLine(line)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}

	return items, nil
}

// ParseText splits raw file contents into lines and parses them.
func ParseText(text string) (Log, error) {
	return Parse(strings.Split(text, "\n"))
}
