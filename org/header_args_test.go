package org

import (
	"reflect"
	"testing"
)

func TestSourceBlock_LanguageAndOwnParameters(t *testing.T) {
	doc := Parse("#+BEGIN_SRC go :results output :exports code\nfmt.Println(1)\n#+END_SRC\n")
	n := findFirst(doc.Root(), KindSourceBlock)
	if n == nil {
		t.Fatal("expected a source block")
	}
	sb, ok := AsSourceBlock(n)
	if !ok {
		t.Fatal("AsSourceBlock failed")
	}
	if lang, ok := sb.Language(); !ok || lang != "go" {
		t.Errorf("expected language %q, got %q ok=%v", "go", lang, ok)
	}
	want := map[string]string{"results": "output", "exports": "code"}
	if got := sb.Parameters(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected parameters %v, got %v", want, got)
	}
}

func TestResolveHeaderArgs_BlockOverridesHeadlineOverridesDocument(t *testing.T) {
	doc := Parse(`#+PROPERTY: header-args :results silent :exports both
* Task
:PROPERTIES:
:header-args: :results output
:END:
#+BEGIN_SRC go :exports none
fmt.Println(1)
#+END_SRC
`)
	n := findFirst(doc.Root(), KindSourceBlock)
	if n == nil {
		t.Fatal("expected a source block")
	}
	args := ResolveHeaderArgs(n)
	if args["results"] != "output" {
		t.Errorf("expected the headline's header-args to override the document default for results, got %q", args["results"])
	}
	if args["exports"] != "none" {
		t.Errorf("expected the block's own :exports to win over both ancestors, got %q", args["exports"])
	}
}

func TestResolveHeaderArgs_NoAncestors(t *testing.T) {
	doc := Parse("#+BEGIN_SRC go :results output\nfmt.Println(1)\n#+END_SRC\n")
	n := findFirst(doc.Root(), KindSourceBlock)
	args := ResolveHeaderArgs(n)
	want := map[string]string{"results": "output"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("expected %v, got %v", want, args)
	}
}
