package org

import "testing"

func findFirst(n *SyntaxNode, kind SyntaxKind) *SyntaxNode {
	if n.Kind() == kind {
		return n
	}
	for _, c := range n.ChildNodes() {
		if found := findFirst(c, kind); found != nil {
			return found
		}
	}
	return nil
}

func TestTimestamp_ActiveSimple(t *testing.T) {
	doc := Parse("A meeting <2026-07-30 Thu 14:00>.\n")
	n := findFirst(doc.Root(), KindTimestampActive)
	if n == nil {
		t.Fatal("expected an active timestamp")
	}
	ts, ok := AsTimestamp(n)
	if !ok {
		t.Fatal("AsTimestamp failed")
	}
	if !ts.IsActive() || ts.IsInactive() || ts.IsRange() {
		t.Errorf("expected a simple active timestamp, got active=%v inactive=%v range=%v",
			ts.IsActive(), ts.IsInactive(), ts.IsRange())
	}
	if ts.YearStart() != "2026" || ts.MonthStart() != "07" || ts.DayStart() != "30" {
		t.Errorf("unexpected date fields: %s-%s-%s", ts.YearStart(), ts.MonthStart(), ts.DayStart())
	}
	if ts.HourStart() != "14" || ts.MinuteStart() != "00" {
		t.Errorf("unexpected time fields: %s:%s", ts.HourStart(), ts.MinuteStart())
	}
	start, ok := ts.Start()
	if !ok {
		t.Fatal("expected Start to resolve")
	}
	if start.Y != 2026 || start.M != 7 || start.D != 30 || start.H != 14 {
		t.Errorf("unexpected Start(): %+v", start)
	}
}

func TestTimestamp_ShortRangeEnd(t *testing.T) {
	doc := Parse("<2026-07-30 Thu 14:00-15:30>\n")
	n := findFirst(doc.Root(), KindTimestampActive)
	if n == nil {
		t.Fatal("expected an active timestamp")
	}
	ts, _ := AsTimestamp(n)
	if !ts.IsRange() {
		t.Errorf("expected a short-range timestamp")
	}
	if ts.HourEnd() != "15" || ts.MinuteEnd() != "30" {
		t.Errorf("unexpected end time fields: %s:%s", ts.HourEnd(), ts.MinuteEnd())
	}
	end, ok := ts.End()
	if !ok {
		t.Fatal("expected End to resolve")
	}
	if end.Y != 2026 || end.M != 7 || end.D != 30 || end.H != 15 || end.Min != 30 {
		t.Errorf("unexpected End(): %+v", end)
	}
	start, ok := ts.Start()
	if !ok {
		t.Fatal("expected Start to resolve")
	}
	if start.H != 14 {
		t.Errorf("unexpected Start(): %+v", start)
	}
}

func TestTimestamp_Range(t *testing.T) {
	doc := Parse("<2026-07-30 Thu>--<2026-08-02 Sun>\n")
	n := findFirst(doc.Root(), KindTimestampActive)
	if n == nil {
		t.Fatal("expected an active timestamp")
	}
	ts, _ := AsTimestamp(n)
	if !ts.IsRange() {
		t.Errorf("expected a range timestamp")
	}
	if ts.DayStart() != "30" || ts.DayEnd() != "02" {
		t.Errorf("unexpected range days: %s..%s", ts.DayStart(), ts.DayEnd())
	}
}

func TestTimestamp_Inactive(t *testing.T) {
	doc := Parse("Logged [2026-07-01 Wed].\n")
	n := findFirst(doc.Root(), KindTimestampInactive)
	if n == nil {
		t.Fatal("expected an inactive timestamp")
	}
	ts, _ := AsTimestamp(n)
	if !ts.IsInactive() {
		t.Errorf("expected an inactive timestamp")
	}
}

func TestLink_PlainNoDescription(t *testing.T) {
	doc := Parse("See [[https://example.com/page]] for more.\n")
	n := findFirst(doc.Root(), KindLink)
	if n == nil {
		t.Fatal("expected a link")
	}
	l, ok := AsLink(n)
	if !ok {
		t.Fatal("AsLink failed")
	}
	if l.Path() != "https://example.com/page" {
		t.Errorf("unexpected path %q", l.Path())
	}
	if l.HasDescription() {
		t.Errorf("did not expect a description")
	}
	if l.IsImage() {
		t.Errorf("a .com/page path should not be classified as an image")
	}
}

func TestLink_WithDescription(t *testing.T) {
	doc := Parse("[[https://example.com][the site]]\n")
	n := findFirst(doc.Root(), KindLink)
	l, _ := AsLink(n)
	if !l.HasDescription() {
		t.Fatalf("expected a description")
	}
	if got := l.Description().Text(); got != "the site" {
		t.Errorf("expected description %q, got %q", "the site", got)
	}
}

func TestLink_ImageWithoutDescription(t *testing.T) {
	doc := Parse("[[file:diagram.png]]\n")
	n := findFirst(doc.Root(), KindLink)
	l, _ := AsLink(n)
	if !l.IsImage() {
		t.Errorf("expected a .png link with no description to be classified as an image")
	}
}

func TestEntity_Lookup(t *testing.T) {
	doc := Parse(`Use \alpha today.` + "\n")
	n := findFirst(doc.Root(), KindEntity)
	if n == nil {
		t.Fatal("expected an entity")
	}
	e, ok := AsEntity(n)
	if !ok {
		t.Fatal("AsEntity failed")
	}
	if e.Name() != "alpha" {
		t.Errorf("expected name %q, got %q", "alpha", e.Name())
	}
	if e.HTML() != "&alpha;" {
		t.Errorf("expected HTML %q, got %q", "&alpha;", e.HTML())
	}
}

func TestClock_Duration(t *testing.T) {
	doc := Parse("* Task\n   CLOCK: [2026-07-30 Thu 09:00]--[2026-07-30 Thu 10:30] =>  1:30\n")
	n := findFirst(doc.Root(), KindClock)
	if n == nil {
		t.Fatal("expected a clock entry")
	}
	c := Clock{n}
	dur, ok := c.Duration()
	if !ok {
		t.Fatal("expected a duration")
	}
	if dur != "1:30" {
		t.Errorf("expected duration %q, got %q", "1:30", dur)
	}
	if !c.IsClosed() {
		t.Errorf("expected a closed clock entry")
	}
	if _, ok := c.Value(); !ok {
		t.Errorf("expected an underlying timestamp")
	}
}

func TestAffiliatedKeywords_Caption(t *testing.T) {
	doc := Parse("#+CAPTION: A diagram\n#+NAME: fig-1\n[[file:diagram.png]]\n")
	n := findFirst(doc.Root(), KindLink)
	owner := n
	for owner != nil && owner.Kind() != KindParagraph {
		owner = owner.Parent()
	}
	if owner == nil {
		t.Fatal("expected an owning paragraph")
	}
	aff := AffiliatedKeywordsOf(owner)
	if v, ok := aff.Value("CAPTION"); !ok || v != "A diagram" {
		t.Errorf("expected CAPTION %q, got %q ok=%v", "A diagram", v, ok)
	}
}
