package todo

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// FormatError reports a line that does not satisfy the item grammar. It
// carries the literal the parser expected and what it found instead so the
// message pinpoints the first offending character.
type FormatError struct {
	Line     string // the offending input line
	Expected string // literal or token the parser expected
	Got      string // what was found; ignored when EOL is set
	EOL      bool   // input ended before the expected literal
}

func (e *FormatError) Error() string {
	if e.EOL {
		return fmt.Sprintf("parse %q: expected %q but line ended", e.Line, e.Expected)
	}
	return fmt.Sprintf("parse %q: expected %q but got %q", e.Line, e.Expected, e.Got)
}

// ParseLine parses a single item line of the form
//
//	# [DONE] <name> (<duration>m) [%<tag>]
//
// and returns the decoded item. The returned error is a *FormatError when
// the line violates the grammar.
func ParseLine(line string) (Item, error) {
	rest, err := skipLiteral(line, "#")
	if err != nil {
		return Item{}, err
	}
	rest = skipSpaces(rest)

	// DONE is optional; an absent marker is the normal case, not a failure.
	rest, done := matchLiteral(rest, "DONE")
	rest = skipSpaces(rest)

	name, rest, found := strings.Cut(rest, " (")
	if !found {
		return Item{}, &FormatError{Line: line, Expected: " (", EOL: true}
	}
	name = strings.TrimRightFunc(name, unicode.IsSpace)

	durText, rest, found := strings.Cut(rest, ")")
	if !found {
		return Item{}, &FormatError{Line: line, Expected: ")", EOL: true}
	}

	minutes, err := parseDuration(line, durText)
	if err != nil {
		return Item{}, err
	}

	rest = skipSpaces(rest)

	tag := ""
	if rest != "" {
		rest, err = skipLiteral2(line, rest, "%")
		if err != nil {
			return Item{}, err
		}
		tag = strings.TrimSpace(rest)
	}

	return Item{Name: name, Duration: minutes, Finished: done, Tag: tag}, nil
}

// Render is the inverse of ParseLine up to whitespace trimming. The output
// carries no leading "# "; callers writing file lines or echoing items add
// their own prefix.
func Render(i Item) string {
	tag := ""
	if i.Tag != "" {
		tag = "%" + i.Tag
	}
	if i.Finished {
		return fmt.Sprintf("DONE %s (%dm) %s", i.Name, i.Duration, tag)
	}
	return fmt.Sprintf("%s (%dm) %s", i.Name, i.Duration, tag)
}

// ParseDuration decodes a standalone duration token like "45m", as typed
// in commands that take a time argument.
func ParseDuration(text string) (int, error) {
	return parseDuration(text, text)
}

// parseDuration decodes a duration token like "45m". The m suffix is
// mandatory and the count must be a non-negative integer.
func parseDuration(line, text string) (int, error) {
	if !strings.HasSuffix(text, "m") {
		return 0, &FormatError{Line: line, Expected: "m", Got: lastChar(text), EOL: text == ""}
	}
	n, err := strconv.Atoi(strings.TrimSuffix(text, "m"))
	if err != nil || n < 0 {
		return 0, &FormatError{Line: line, Expected: "non-negative minute count", Got: text}
	}
	return n, nil
}

// skipLiteral consumes the expected literal from the start of line, failing
// with a *FormatError on the first character that does not match.
func skipLiteral(line, literal string) (string, error) {
	return skipLiteral2(line, line, literal)
}

// skipLiteral2 is skipLiteral over a partially consumed line; the full line
// is kept for error context.
func skipLiteral2(line, rest, literal string) (string, error) {
	for i := 0; i < len(literal); i++ {
		if len(rest) == 0 {
			return "", &FormatError{Line: line, Expected: string(literal[i]), EOL: true}
		}
		if rest[0] != literal[i] {
			return "", &FormatError{Line: line, Expected: string(literal[i]), Got: string(rest[0])}
		}
		rest = rest[1:]
	}
	return rest, nil
}

// matchLiteral consumes the literal if present and reports whether it
// matched. It never fails.
func matchLiteral(rest, literal string) (string, bool) {
	if after, ok := strings.CutPrefix(rest, literal); ok {
		return after, true
	}
	return rest, false
}

func skipSpaces(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

func lastChar(s string) string {
	if s == "" {
		return ""
	}
	return string(s[len(s)-1])
}
