package search

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
)

// Func is the shape shared by Search and SearchCaseInsensitive.
type Func func(query, content string) iter.Seq[string]

// For returns SearchCaseInsensitive when ignoreCase is set, Search otherwise.
func For(ignoreCase bool) Func {
	if ignoreCase {
		return SearchCaseInsensitive
	}
	return Search
}

// Lines yields the lines of content in order. Lines are separated by '\n'; a
// final line without a terminating newline is still yielded, and a
// terminating newline does not produce an extra empty line. A single trailing
// '\r' is stripped from each line so CRLF input behaves like LF input.
func Lines(content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := content
		for len(rest) > 0 {
			var line string
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				line, rest = rest[:i], rest[i+1:]
			} else {
				line, rest = rest, ""
			}
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}

// Search yields every line of content that contains query, compared
// byte for byte. An empty query matches every line.
func Search(query, content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range Lines(content) {
			if strings.Contains(line, query) && !yield(line) {
				return
			}
		}
	}
}

// SearchCaseInsensitive is Search with both query and line case-folded
// before comparison. The yielded lines keep their original case.
func SearchCaseInsensitive(query, content string) iter.Seq[string] {
	return func(yield func(string) bool) {
		fold := cases.Fold()
		folded := fold.String(query)
		for line := range Lines(content) {
			if strings.Contains(fold.String(line), folded) && !yield(line) {
				return
			}
		}
	}
}
