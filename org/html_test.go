package org

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// countTags parses an HTML fragment with golang.org/x/net/html and
// counts elements by tag name, rather than string-matching the
// generated markup directly.
func countTags(t *testing.T, doc string) map[string]int {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("output is not parseable HTML: %v", err)
	}
	counts := map[string]int{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			counts[n.Data]++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return counts
}

func TestHTML_HeadlineLevels(t *testing.T) {
	doc := Parse("* One\n** Two\n*** Three\n")
	out, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	counts := countTags(t, out)
	if counts["h1"] != 1 || counts["h2"] != 1 || counts["h3"] != 1 {
		t.Errorf("expected one h1/h2/h3 each, got %v", counts)
	}
}

func TestHTML_HeadlineLevelClamp(t *testing.T) {
	doc := Parse("******* Too deep\n")
	out, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	counts := countTags(t, out)
	if counts["h6"] != 1 {
		t.Errorf("expected a level-7 headline to clamp to h6, got %v", counts)
	}
	if counts["h7"] != 0 {
		t.Errorf("did not expect an h7 tag, got %v", counts)
	}
}

func TestHTML_ListAndTable(t *testing.T) {
	doc := Parse("- one\n- two\n\n| a | b |\n|---+---|\n| 1 | 2 |\n")
	out, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	counts := countTags(t, out)
	if counts["ul"] != 1 || counts["li"] != 2 {
		t.Errorf("expected 1 ul with 2 li, got %v", counts)
	}
	if counts["table"] != 1 || counts["thead"] != 1 || counts["tbody"] != 1 {
		t.Errorf("expected a table split into thead/tbody, got %v", counts)
	}
}

func TestHTML_TableNoRuleHasNoHead(t *testing.T) {
	doc := Parse("| a | b |\n| c | d |\n| e | f |\n")
	out, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	counts := countTags(t, out)
	if counts["thead"] != 0 {
		t.Errorf("expected no thead in a table with no rule row, got %v", counts)
	}
	if counts["tbody"] != 1 || counts["tr"] != 3 {
		t.Errorf("expected all 3 rows in a single tbody, got %v", counts)
	}
}

func TestHTML_TableMultipleHeaderRowsBeforeRule(t *testing.T) {
	doc := Parse("| a | b |\n| c | d |\n|---+---|\n| e | f |\n")
	out, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	counts := countTags(t, out)
	if counts["thead"] != 1 || counts["tbody"] != 1 {
		t.Errorf("expected one thead and one tbody, got %v", counts)
	}
	if counts["tr"] != 3 {
		t.Errorf("expected 3 total rows, got %v", counts)
	}
}

func TestHTML_ImageLink(t *testing.T) {
	doc := Parse("[[file:diagram.png]]\n")
	out, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	if !strings.Contains(out, `<img src="file:diagram.png">`) {
		t.Errorf("expected an <img> tag in output, got %s", out)
	}
}

func TestHTML_EscapesText(t *testing.T) {
	doc := Parse("1 < 2 & 3 > 1\n")
	out, err := doc.ToHTML()
	if err != nil {
		t.Fatalf("ToHTML failed: %v", err)
	}
	if strings.Contains(out, "1 < 2") {
		t.Errorf("expected < to be escaped, got %s", out)
	}
	if !strings.Contains(out, "&lt;") || !strings.Contains(out, "&amp;") {
		t.Errorf("expected escaped entities in output, got %s", out)
	}
}
