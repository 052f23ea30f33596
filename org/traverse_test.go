package org

import "testing"

func TestTraverse_EnterLeaveBalance(t *testing.T) {
	doc := Parse("* Heading\nSome *bold* text.\n- item one\n- item two\n")
	depth := 0
	maxDepth := 0
	Traverse(doc.Root(), func(ev Event, ctx *Context) {
		switch ev.Kind {
		case Enter:
			depth++
			if depth > maxDepth {
				maxDepth = depth
			}
		case Leave:
			depth--
		}
	})
	if depth != 0 {
		t.Errorf("expected Enter/Leave to balance back to 0, got %d", depth)
	}
	if maxDepth < 3 {
		t.Errorf("expected nested containers to produce depth >= 3, got %d", maxDepth)
	}
}

func TestTraverse_VisitsPlainText(t *testing.T) {
	doc := Parse("Some *bold* text follows.\n")
	var texts []string
	Traverse(doc.Root(), func(ev Event, ctx *Context) {
		if ev.Kind == Single && ev.Token != nil {
			texts = append(texts, ev.Token.Text())
		}
	})
	found := false
	for _, s := range texts {
		if s == "text follows." || s == " text follows." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a trailing plain-text token among %v", texts)
	}
}

func TestTraverse_SkipPreventsDescent(t *testing.T) {
	doc := Parse("* Heading with *bold* title\nbody text\n")
	var sawBoldInsideTitle, visitedBold bool
	Traverse(doc.Root(), func(ev Event, ctx *Context) {
		if ev.Node != nil && ev.Node.Kind() == KindBold {
			visitedBold = true
		}
		if ev.Kind == Enter && ev.Node.Kind() == KindHeadlineTitle {
			ctx.Skip()
			for _, c := range ev.Node.ChildNodes() {
				if c.Kind() == KindBold {
					sawBoldInsideTitle = true
				}
			}
		}
	})
	if !sawBoldInsideTitle {
		t.Errorf("expected the title to contain a BOLD child even though traversal skipped into it")
	}
	if visitedBold {
		t.Errorf("expected Skip on the title to keep traversal out of its BOLD child")
	}
}

func TestTraverse_LeafEventKindsFireSingle(t *testing.T) {
	doc := Parse("A rule follows.\n-----\n")
	sawSingleRule := false
	Traverse(doc.Root(), func(ev Event, ctx *Context) {
		if ev.Node != nil && ev.Node.Kind() == KindRule {
			if ev.Kind != Single {
				t.Errorf("expected KindRule to fire as a Single event, got %v", ev.Kind)
			}
			sawSingleRule = true
		}
	})
	if !sawSingleRule {
		t.Errorf("expected to observe a RULE node")
	}
}
