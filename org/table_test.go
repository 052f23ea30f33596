package org

import (
	"strings"
	"testing"
)

func firstTable(t *testing.T, doc *Document) *SyntaxNode {
	t.Helper()
	var found *SyntaxNode
	var walkFind func(n *SyntaxNode)
	walkFind = func(n *SyntaxNode) {
		if found != nil {
			return
		}
		if n.Kind() == KindOrgTable {
			found = n
			return
		}
		for _, c := range n.ChildNodes() {
			walkFind(c)
		}
	}
	walkFind(doc.Root())
	if found == nil {
		t.Fatal("no table found in document")
	}
	return found
}

func TestTable_CellSplitting(t *testing.T) {
	doc := Parse("| a | bb | ccc |\n")
	tbl := firstTable(t, doc)
	rows := tbl.ChildNodes()
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	cells := rows[0].ChildNodes()
	var texts []string
	for _, c := range cells {
		if c.Kind() == KindOrgTableCell {
			texts = append(texts, strings.TrimSpace(c.Text()))
		}
	}
	want := []string{"a", "bb", "ccc"}
	if len(texts) != len(want) {
		t.Fatalf("expected %d cells, got %d: %v", len(want), len(texts), texts)
	}
	for i, w := range want {
		if texts[i] != w {
			t.Errorf("cell %d: expected %q, got %q", i, w, texts[i])
		}
	}
}

func TestTable_RuleRowSeparatesHeadFromBody(t *testing.T) {
	doc := Parse("| h1 | h2 |\n|----+----|\n| v1 | v2 |\n")
	tbl := firstTable(t, doc)
	rows := tbl.ChildNodes()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Kind() != KindOrgTableStandardRow {
		t.Errorf("expected row 0 to be a standard row, got %v", rows[0].Kind())
	}
	if rows[1].Kind() != KindOrgTableRuleRow {
		t.Errorf("expected row 1 to be a rule row, got %v", rows[1].Kind())
	}
	if rows[2].Kind() != KindOrgTableStandardRow {
		t.Errorf("expected row 2 to be a standard row, got %v", rows[2].Kind())
	}
}

func TestTable_RoundTripPreservesPadding(t *testing.T) {
	assertRoundTrip(t, "|  a  |   b |\n| 123 | 4   |\n")
}

func TestTable_CellRecognizesInlineObjects(t *testing.T) {
	doc := Parse("| *bold* | [[https://example.com][link]] |\n")
	tbl := firstTable(t, doc)
	cells := tbl.ChildNodes()[0].ChildNodes()
	var found []*SyntaxNode
	for _, c := range cells {
		if c.Kind() == KindOrgTableCell {
			found = append(found, c)
		}
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(found))
	}
	if b := findFirst(found[0], KindBold); b == nil {
		t.Errorf("expected the first cell to contain a recognized BOLD node, got children %v", found[0].ChildNodes())
	}
	if l := findFirst(found[1], KindLink); l == nil {
		t.Errorf("expected the second cell to contain a recognized LINK node, got children %v", found[1].ChildNodes())
	}
}
