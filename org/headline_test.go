package org

import "testing"

func TestHeadline_TODOKeywordAndPriority(t *testing.T) {
	doc := Parse("* TODO [#A] Ship the release :work:\n")
	hs := doc.Headlines()
	if len(hs) != 1 {
		t.Fatalf("expected 1 headline, got %d", len(hs))
	}
	h := hs[0]
	kw, ok := h.TODOKeyword()
	if !ok || kw != "TODO" {
		t.Errorf("expected TODO keyword, got %q ok=%v", kw, ok)
	}
	pr, ok := h.Priority()
	if !ok || pr != "A" {
		t.Errorf("expected priority A, got %q ok=%v", pr, ok)
	}
	tags := h.Tags()
	if len(tags) != 1 || tags[0] != "work" {
		t.Errorf("expected tags [work], got %v", tags)
	}
	if h.Level() != 1 {
		t.Errorf("expected level 1, got %d", h.Level())
	}
}

func TestHeadline_UnrecognizedKeywordStaysInTitle(t *testing.T) {
	// "MAYBE" isn't configured as a TODO keyword, so it's just title text.
	doc := Parse("* MAYBE do this\n")
	h := doc.Headlines()[0]
	if _, ok := h.TODOKeyword(); ok {
		t.Errorf("did not expect a TODO keyword for an unconfigured word")
	}
	title := h.Title()
	if title == nil || title.Text() != "MAYBE do this" {
		t.Errorf("expected title %q, got %v", "MAYBE do this", title)
	}
}

func TestHeadline_PropertiesDrawer(t *testing.T) {
	doc := Parse("* Task\n:PROPERTIES:\n:CUSTOM_ID: task-1\n:EFFORT: 1:00\n:END:\nbody\n")
	h := doc.Headlines()[0]
	props, ok := h.Properties()
	if !ok {
		t.Fatalf("expected a property drawer")
	}
	if v, ok := props.Get("CUSTOM_ID"); !ok || v != "task-1" {
		t.Errorf("expected CUSTOM_ID=task-1, got %q ok=%v", v, ok)
	}
	m := props.ToMap()
	if m["EFFORT"] != "1:00" {
		t.Errorf("expected EFFORT=1:00 in map, got %v", m)
	}
}

func TestHeadline_Planning(t *testing.T) {
	doc := Parse("* Task\nDEADLINE: <2026-08-01 Sat> SCHEDULED: <2026-07-31 Fri>\n")
	h := doc.Headlines()[0]
	pl, ok := h.Planning()
	if !ok {
		t.Fatalf("expected a planning line")
	}
	if _, ok := pl.Deadline(); !ok {
		t.Errorf("expected a DEADLINE timestamp")
	}
	if _, ok := pl.Scheduled(); !ok {
		t.Errorf("expected a SCHEDULED timestamp")
	}
	if _, ok := pl.Closed(); ok {
		t.Errorf("did not expect a CLOSED timestamp")
	}
}

func TestHeadline_LevelClampingDoesNotAffectParsing(t *testing.T) {
	doc := Parse("******* Deeply nested\n")
	h := doc.Headlines()[0]
	if h.Level() != 7 {
		t.Errorf("expected raw level 7 preserved by the parser, got %d", h.Level())
	}
}
