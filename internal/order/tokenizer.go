package order

import (
	"iter"
	"regexp"
	"strconv"
	"strings"
)

// Grammar: <name>：<item>[$]<digits>, anything after the digit run ignored.
var lineRe = regexp.MustCompile(`(.+?)：(.+?)\$?(\d+)`)

// ParseLine matches one transcript line against the order grammar.
// Lines without the full-width colon or without a trailing digit run
// do not match; that is a filter, not an error.
func ParseLine(line string) (Line, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Line{}, false
	}

	price, err := strconv.Atoi(m[3])
	if err != nil {
		return Line{}, false
	}

	return Line{
		Name:  strings.TrimSpace(m[1]),
		Item:  strings.TrimSpace(m[2]),
		Price: price,
	}, true
}

// Tokenize walks a transcript line by line, yielding every line that
// matches the grammar. The sequence is lazy and single-use.
func Tokenize(text string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for raw := range strings.Lines(text) {
			line, ok := ParseLine(raw)
			if !ok {
				continue
			}
			if !yield(line) {
				return
			}
		}
	}
}
