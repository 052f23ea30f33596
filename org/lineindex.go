package org

import "sort"

// LineIndex maps byte offsets to (line, column) and back in O(log N),
// for editor-facing tools (C10). Built once per document from the
// original text; line/column are both 1-based.
type LineIndex struct {
	starts []int // byte offset of the first byte of each line
}

// NewLineIndex precomputes line-start offsets for text. A "\r\n" pair
// counts as one terminator; a lone "\r" is not a terminator, matching
// the line-splitting rule used throughout the parser.
func NewLineIndex(text string) *LineIndex {
	return &LineIndex{starts: lineStartsIter(text)}
}

// Position converts an absolute byte offset to a 1-based (line, column)
// pair. Column counts bytes from the line start; callers needing
// UTF-16 or Unicode-code-point columns per an editor protocol convert
// from that using the line's own text.
func (idx *LineIndex) Position(offset int) (line, column int) {
	i := sort.Search(len(idx.starts), func(i int) bool { return idx.starts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, offset - idx.starts[i] + 1
}

// Offset converts a 1-based (line, column) pair back to an absolute
// byte offset.
func (idx *LineIndex) Offset(line, column int) int {
	if line < 1 {
		line = 1
	}
	if line > len(idx.starts) {
		line = len(idx.starts)
	}
	return idx.starts[line-1] + column - 1
}

// LineStart returns the byte offset of the first byte of the given
// 1-based line.
func (idx *LineIndex) LineStart(line int) int {
	if line < 1 || line > len(idx.starts) {
		return -1
	}
	return idx.starts[line-1]
}

// LineCount reports the number of lines in the indexed text.
func (idx *LineIndex) LineCount() int { return len(idx.starts) }
