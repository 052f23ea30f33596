package org

import "strings"

// Combinators (C3): low-level, lossless building blocks shared by the
// element and object parsers. Every one of these returns the exact bytes
// it consumed so callers can package them as tokens — no combinator here
// ever elides or normalizes a byte.

// lineEnd returns the index just past the end of the first line in s
// (including its terminator, if any) and the terminator's own length.
// CRLF counts as one terminator; a lone CR is not a terminator.
func lineEnd(s string) (end int, termLen int) {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return len(s), 0
	}
	if i > 0 && s[i-1] == '\r' {
		return i + 1, 2
	}
	return i + 1, 1
}

// splitLine consumes up to and including the next line terminator,
// returning the line's content (terminator excluded), the terminator
// bytes themselves, and the rest of the input.
func splitLine(s string) (content, term, rest string) {
	end, termLen := lineEnd(s)
	content = s[:end-termLen]
	term = s[end-termLen : end]
	rest = s[end:]
	return
}

// isBlankLine reports whether s (a single line's content, no terminator)
// contains only horizontal whitespace.
func isBlankLine(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}

// blankLines consumes a run of lines containing only whitespace, emitting
// one BLANK_LINE token per line (holding the line's content, terminator
// excluded) plus one NEW_LINE token per terminator so losslessness holds.
// Returns the tokens in source order and the unconsumed remainder.
func blankLines(s string) (toks []GreenElement, rest string) {
	rest = s
	for len(rest) > 0 {
		content, term, next := splitLine(rest)
		if !isBlankLine(content) || (content == "" && term == "" && rest == "") {
			break
		}
		if content == "" && term == "" {
			// Trailing content with no terminator and nothing left: only
			// treat as a blank line if there actually was something to
			// consume (avoid infinite loop at EOF on "").
			break
		}
		toks = append(toks, tokBLANK_LINE(content))
		if term != "" {
			toks = append(toks, tokNEW_LINE(term))
		}
		rest = next
		if term == "" {
			break
		}
	}
	return toks, rest
}

// eolOrEOF reports whether position 0 of s is a line terminator or s is
// empty — the combinator used to bound constructs that must end a line.
func eolOrEOF(s string) bool {
	return len(s) == 0 || s[0] == '\n' || (len(s) >= 2 && s[0] == '\r' && s[1] == '\n')
}

// trimLineEnd splits trailing horizontal whitespace and the line
// terminator from content on the current line. Returns the trimmed
// content, the trailing whitespace, and the terminator (each may be "").
func trimLineEnd(line string) (content, trailingWS, term string) {
	content, term, _ = splitLine(line + "\n")
	if !strings.Contains(line, "\n") {
		// line had no terminator of its own; drop the synthetic one.
		term = ""
		content = line
	}
	end := len(content)
	for end > 0 && (content[end-1] == ' ' || content[end-1] == '\t') {
		end--
	}
	return content[:end], content[end:], term
}

// balancedBrackets scans s (which must start with '[') for the matching
// ']', accounting for nested "[...]". Returns the index of the matching
// ']' in s, or -1 if unbalanced before a newline or EOF.
func balancedBrackets(s string) int {
	if len(s) == 0 || s[0] != '[' {
		return -1
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		case '\n':
			return -1
		}
	}
	return -1
}

// lineStartsIter yields byte offsets of every line start in s (offset 0
// plus the byte right after every '\n').
func lineStartsIter(s string) []int {
	starts := []int{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// lineEndsIter yields byte offsets of every line terminator start in s
// (i.e. the offset of '\r' in a CRLF pair, or of the lone '\n').
func lineEndsIter(s string) []int {
	var ends []int
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			if i > 0 && s[i-1] == '\r' {
				ends = append(ends, i-1)
			} else {
				ends = append(ends, i)
			}
		}
	}
	return ends
}
