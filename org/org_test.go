package org

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// assertRoundTrip parses text and checks that re-serializing it via
// ToOrg reproduces it byte-for-byte (Invariant 1). On mismatch it
// prints a unified diff rather than the raw strings, since a one-byte
// whitespace loss is otherwise easy to miss in a test failure log.
func assertRoundTrip(t *testing.T, text string) *Document {
	t.Helper()
	doc := Parse(text)
	got := doc.ToOrg()
	if got == text {
		return doc
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(text),
		B:        difflib.SplitLines(got),
		FromFile: "input",
		ToFile:   "ToOrg()",
		Context:  2,
	}
	out, _ := difflib.GetUnifiedDiffString(diff)
	t.Fatalf("round trip mismatch:\n%s", out)
	return nil
}

func TestRoundTrip_PlainParagraph(t *testing.T) {
	assertRoundTrip(t, "Hello, *world*.\nSecond line.\n")
}

func TestRoundTrip_Headlines(t *testing.T) {
	assertRoundTrip(t, `* TODO [#A] Buy milk                                          :errand:home:
DEADLINE: <2026-08-01 Sat>
:PROPERTIES:
:EFFORT: 0:30
:END:
Don't forget the receipt.

** DONE Pay rent
   CLOSED: [2026-07-28 Tue 09:00]
`)
}

func TestRoundTrip_IndentedDrawer(t *testing.T) {
	assertRoundTrip(t, "* Heading\n   :LOGBOOK:\n   some text\n   :END:   \n")
}

func TestRoundTrip_List(t *testing.T) {
	assertRoundTrip(t, "- [X] done item\n- [ ] todo item\n  - nested :: descriptive term\n1. first\n2. second\n")
}

func TestRoundTrip_Table(t *testing.T) {
	assertRoundTrip(t, "| a | b |\n|---+---|\n| 1 | 2 |\n")
}

func TestRoundTrip_Keywords(t *testing.T) {
	assertRoundTrip(t, "#+TITLE: A title\n#+PROPERTY: header-args :results output\n\nParagraph text.\n")
}

func TestRoundTrip_Block(t *testing.T) {
	assertRoundTrip(t, "#+BEGIN_SRC go :results output\nfmt.Println(\"hi\")\n#+END_SRC\n")
}

func TestRoundTrip_Clock(t *testing.T) {
	assertRoundTrip(t, "*  Task\n   CLOCK: [2026-07-30 Thu 09:00]--[2026-07-30 Thu 10:00] =>  1:00\n")
}

func TestRoundTrip_Malformed(t *testing.T) {
	// An unterminated block never panics or errors; it degrades to a
	// plain paragraph and the bytes are still preserved exactly.
	assertRoundTrip(t, "#+BEGIN_SRC go\nfmt.Println(1)\n")
}

func TestParse_HeadlinesAccessor(t *testing.T) {
	doc := Parse("* One\nbody\n* Two\n** Nested\n")
	hs := doc.Headlines()
	if len(hs) != 2 {
		t.Fatalf("expected 2 top-level headlines, got %d", len(hs))
	}
	if title := hs[0].Title(); title == nil || title.Text() != "One" {
		t.Errorf("expected title %q, got %v", "One", title)
	}
	children := hs[1].Children()
	if len(children) != 1 {
		t.Fatalf("expected 1 nested headline under Two, got %d", len(children))
	}
	if title := children[0].Title(); title == nil || title.Text() != "Nested" {
		t.Errorf("expected nested title %q, got %v", "Nested", title)
	}
}

func TestParse_NeverFails(t *testing.T) {
	inputs := []string{
		"",
		"***\n",
		"#+BEGIN_SRC\n",
		":END:\n",
		"[fn:\n",
		"| not a | table\n",
	}
	for _, in := range inputs {
		doc := Parse(in)
		if doc.ToOrg() != in {
			t.Errorf("round trip failed for %q: got %q", in, doc.ToOrg())
		}
	}
}
