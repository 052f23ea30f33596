package org

import "testing"

func firstList(t *testing.T, doc *Document) List {
	t.Helper()
	for _, c := range doc.Root().ChildNodes() {
		if l, ok := findList(c); ok {
			return l
		}
	}
	t.Fatal("no list found in document")
	return List{}
}

func findList(n *SyntaxNode) (List, bool) {
	if l, ok := AsList(n); ok {
		return l, true
	}
	for _, c := range n.ChildNodes() {
		if l, ok := findList(c); ok {
			return l, true
		}
	}
	return List{}, false
}

func TestList_Unordered(t *testing.T) {
	doc := Parse("- one\n- two\n- three\n")
	l := firstList(t, doc)
	if l.IsOrdered() {
		t.Errorf("expected an unordered list")
	}
	if got := len(l.Items()); got != 3 {
		t.Errorf("expected 3 items, got %d", got)
	}
}

func TestList_Ordered(t *testing.T) {
	doc := Parse("1. one\n2. two\n")
	l := firstList(t, doc)
	if !l.IsOrdered() {
		t.Errorf("expected an ordered list")
	}
}

func TestList_CheckboxesRoundTrip(t *testing.T) {
	assertRoundTrip(t, "- [ ] todo\n- [X] done\n- [-] partial\n")
}

func TestList_DescriptiveTerm(t *testing.T) {
	doc := Parse("- term :: definition text\n")
	l := firstList(t, doc)
	if !l.IsDescriptive() {
		t.Errorf("expected a descriptive list")
	}
	items := l.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	tag := items[0].ChildOfKind(KindListItemTag)
	if tag == nil || tag.Text() != "term" {
		t.Errorf("expected tag %q, got %v", "term", tag)
	}
}

func TestList_CounterCookie(t *testing.T) {
	doc := Parse("1. [@5] fifth\n2. sixth\n")
	l := firstList(t, doc)
	items := l.Items()
	counter := items[0].ChildOfKind(KindListItemCounter)
	if counter == nil || counter.Text() != "[@5]" {
		t.Errorf("expected counter cookie %q, got %v", "[@5]", counter)
	}
}

func TestList_IndentedRoundTrip(t *testing.T) {
	assertRoundTrip(t, "  - indented one\n  - indented two\n")
}
