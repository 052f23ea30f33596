package org

import "testing"

func TestLineIndex_PositionAndOffset(t *testing.T) {
	text := "first\nsecond\nthird"
	idx := NewLineIndex(text)
	if idx.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", idx.LineCount())
	}
	line, col := idx.Position(0)
	if line != 1 || col != 1 {
		t.Errorf("expected (1,1) at offset 0, got (%d,%d)", line, col)
	}
	offsetOfS := len("first\n")
	line, col = idx.Position(offsetOfS)
	if line != 2 || col != 1 {
		t.Errorf("expected (2,1) at offset %d, got (%d,%d)", offsetOfS, line, col)
	}
	if got := idx.Offset(2, 1); got != offsetOfS {
		t.Errorf("expected Offset(2,1) = %d, got %d", offsetOfS, got)
	}
	if got := idx.LineStart(3); got != len("first\nsecond\n") {
		t.Errorf("expected line 3 to start at %d, got %d", len("first\nsecond\n"), got)
	}
}

func TestLineIndex_CRLF(t *testing.T) {
	text := "a\r\nb\r\nc"
	idx := NewLineIndex(text)
	if idx.LineCount() != 3 {
		t.Fatalf("expected 3 lines for CRLF text, got %d", idx.LineCount())
	}
	line, _ := idx.Position(len("a\r\n"))
	if line != 2 {
		t.Errorf("expected line 2 right after the first CRLF terminator, got %d", line)
	}
}
