package org

import "strings"

// AST accessor layer (C8). Each type here is a typed, non-owning facade
// over a *SyntaxNode of a specific kind. Accessors are computed
// on demand from the red tree rather than cached, since syntax views are
// meant to be cheap and freely discarded.

// Headline wraps a HEADLINE node.
type Headline struct{ n *SyntaxNode }

func AsHeadline(n *SyntaxNode) (Headline, bool) {
	if n == nil || n.Kind() != KindHeadline {
		return Headline{}, false
	}
	return Headline{n}, true
}

func (h Headline) Node() *SyntaxNode { return h.n }
func (h Headline) Begin() int        { return h.n.Offset() }
func (h Headline) End() int          { return h.n.EndOffset() }

// Level is the headline's star count.
func (h Headline) Level() int {
	if t := h.n.TokenOfKind(KindStar); t != nil {
		return len(t.Text())
	}
	return 0
}

func (h Headline) TODOKeyword() (string, bool) {
	if n := h.n.ChildOfKind(KindHeadlineKeyword); n != nil {
		return n.Text(), true
	}
	return "", false
}

func (h Headline) Priority() (string, bool) {
	if n := h.n.ChildOfKind(KindHeadlinePriority); n != nil {
		if t := n.TokenOfKind(KindText); t != nil {
			return strings.TrimPrefix(t.Text(), "#"), true
		}
	}
	return "", false
}

// Title returns the red node wrapping the title's inline objects.
func (h Headline) Title() *SyntaxNode {
	return h.n.ChildOfKind(KindHeadlineTitle)
}

// Tags returns the headline's trailing tags, in source order.
func (h Headline) Tags() []string {
	tagsNode := h.n.ChildOfKind(KindHeadlineTags)
	if tagsNode == nil {
		return nil
	}
	var tags []string
	for _, c := range tagsNode.green.Children() {
		if c.Kind() == KindText {
			tags = append(tags, c.(*GreenToken).Text())
		}
	}
	return tags
}

func (h Headline) Properties() (PropertyDrawer, bool) {
	if n := h.n.ChildOfKind(KindPropertyDrawer); n != nil {
		return PropertyDrawer{n}, true
	}
	return PropertyDrawer{}, false
}

func (h Headline) Planning() (Planning, bool) {
	if n := h.n.ChildOfKind(KindPlanning); n != nil {
		return Planning{n}, true
	}
	return Planning{}, false
}

func (h Headline) Section() (*SyntaxNode, bool) {
	if n := h.n.ChildOfKind(KindSection); n != nil {
		return n, true
	}
	return nil, false
}

// Children returns the headline's nested (strictly deeper) headlines.
func (h Headline) Children() []Headline {
	var out []Headline
	for _, c := range h.n.ChildNodes() {
		if c.Kind() == KindHeadline {
			out = append(out, Headline{c})
		}
	}
	return out
}

// Timestamp wraps one of the three TIMESTAMP_* kinds.
type Timestamp struct{ n *SyntaxNode }

func AsTimestamp(n *SyntaxNode) (Timestamp, bool) {
	if n == nil {
		return Timestamp{}, false
	}
	switch n.Kind() {
	case KindTimestampActive, KindTimestampInactive, KindTimestampDiary:
		return Timestamp{n}, true
	}
	return Timestamp{}, false
}

func (t Timestamp) data() TimestampData { return parseTimestampText(t.n.Text(), t.n.Kind()) }

func (t Timestamp) IsActive() bool   { return t.data().Active }
func (t Timestamp) IsInactive() bool { return t.data().Inactive }
func (t Timestamp) IsDiary() bool    { return t.data().Diary }
func (t Timestamp) IsRange() bool    { return t.data().Range }

func (t Timestamp) YearStart() string   { return t.data().YearStart }
func (t Timestamp) MonthStart() string  { return t.data().MonthStart }
func (t Timestamp) DayStart() string    { return t.data().DayStart }
func (t Timestamp) DaynameStart() string { return t.data().DaynameStart }
func (t Timestamp) HourStart() string   { return t.data().HourStart }
func (t Timestamp) MinuteStart() string { return t.data().MinuteStart }

func (t Timestamp) YearEnd() string    { return t.data().YearEnd }
func (t Timestamp) MonthEnd() string   { return t.data().MonthEnd }
func (t Timestamp) DayEnd() string     { return t.data().DayEnd }
func (t Timestamp) DaynameEnd() string { return t.data().DaynameEnd }
func (t Timestamp) HourEnd() string    { return t.data().HourEnd }
func (t Timestamp) MinuteEnd() string  { return t.data().MinuteEnd }

// TimestampClock is the (year, month, day, hour, minute) a Timestamp's
// Start or End resolves to.
type TimestampClock struct {
	Y, M, D, H, Min int
}

func (t Timestamp) Start() (time_ TimestampClock, ok bool) {
	tm, ok := t.data().startToChrono()
	if !ok {
		return time_, false
	}
	time_.Y, time_.M, time_.D, time_.H, time_.Min = tm.Year(), int(tm.Month()), tm.Day(), tm.Hour(), tm.Minute()
	return time_, true
}

// End resolves the timestamp's end fields (the second half of a range,
// e.g. <2024-01-01 10:00-12:00>). Returns ok=false for a non-range
// timestamp, matching Start's miss behavior.
func (t Timestamp) End() (time_ TimestampClock, ok bool) {
	tm, ok := t.data().endToChrono()
	if !ok {
		return time_, false
	}
	time_.Y, time_.M, time_.D, time_.H, time_.Min = tm.Year(), int(tm.Month()), tm.Day(), tm.Hour(), tm.Minute()
	return time_, true
}

// List wraps a LIST node.
type List struct{ n *SyntaxNode }

func AsList(n *SyntaxNode) (List, bool) {
	if n == nil || n.Kind() != KindList {
		return List{}, false
	}
	return List{n}, true
}

func (l List) Items() []*SyntaxNode { return l.n.ChildNodes() }

func (l List) Indent() int {
	items := l.Items()
	if len(items) == 0 {
		return 0
	}
	if indent := items[0].ChildOfKind(KindListItemIndent); indent != nil {
		return indent.Width()
	}
	return 0
}

func (l List) IsOrdered() bool {
	items := l.Items()
	if len(items) == 0 {
		return false
	}
	bullet := items[0].ChildOfKind(KindListItemBullet)
	if bullet == nil {
		return false
	}
	text := bullet.Text()
	return len(text) > 0 && (text[0] >= '0' && text[0] <= '9' || isLetter(text[0]))
}

func (l List) IsDescriptive() bool {
	items := l.Items()
	return len(items) > 0 && items[0].ChildOfKind(KindListItemTag) != nil
}

// Link wraps a LINK node.
type Link struct{ n *SyntaxNode }

var linkImageExts = map[string]bool{
	"png": true, "jpeg": true, "jpg": true, "gif": true, "tiff": true,
	"tif": true, "xbm": true, "xpm": true, "pbm": true, "pgm": true,
	"ppm": true, "webp": true, "avif": true, "svg": true,
}

func AsLink(n *SyntaxNode) (Link, bool) {
	if n == nil || n.Kind() != KindLink {
		return Link{}, false
	}
	return Link{n}, true
}

func (l Link) Path() string {
	if t := l.n.TokenOfKind(KindText); t != nil {
		return t.Text()
	}
	return ""
}

func (l Link) HasDescription() bool {
	return l.n.ChildOfKind(KindLinkDescription) != nil
}

func (l Link) Description() *SyntaxNode {
	return l.n.ChildOfKind(KindLinkDescription)
}

// IsImage reports whether the link's path has an image-like suffix and
// it carries no description.
func (l Link) IsImage() bool {
	if l.HasDescription() {
		return false
	}
	path := l.Path()
	dot := strings.LastIndexByte(path, '.')
	if dot == -1 {
		return false
	}
	ext := strings.ToLower(path[dot+1:])
	if q := strings.IndexAny(ext, "?#"); q != -1 {
		ext = ext[:q]
	}
	return linkImageExts[ext]
}

// Caption returns the value of an attached CAPTION affiliated keyword,
// if any (looked up among the link's own preceding siblings by the
// caller — links themselves do not carry affiliated keywords, only
// elements do, so this is a convenience for callers that already have
// the owning element's AffiliatedKeywords()).
func (l Link) Caption(owner AffiliatedKeywords) (string, bool) {
	return owner.Value("CAPTION")
}

// PropertyDrawer wraps a PROPERTY_DRAWER node.
type PropertyDrawer struct{ n *SyntaxNode }

func (p PropertyDrawer) Iter() []NodeProperty {
	var out []NodeProperty
	for _, c := range p.n.ChildNodes() {
		if c.Kind() == KindNodeProperty {
			out = append(out, NodeProperty{c})
		}
	}
	return out
}

func (p PropertyDrawer) Get(key string) (string, bool) {
	for _, prop := range p.Iter() {
		if strings.EqualFold(prop.Key(), key) {
			return prop.Value(), true
		}
	}
	return "", false
}

func (p PropertyDrawer) ToMap() map[string]string {
	m := make(map[string]string)
	for _, prop := range p.Iter() {
		m[prop.Key()] = prop.Value()
	}
	return m
}

// NodeProperty wraps a NODE_PROPERTY node (":KEY: value").
type NodeProperty struct{ n *SyntaxNode }

func (p NodeProperty) Key() string {
	if t := p.n.TokenOfKind(KindText); t != nil {
		return t.Text()
	}
	return ""
}

func (p NodeProperty) Value() string {
	texts := childTexts(p.n, KindText)
	if len(texts) < 2 {
		return ""
	}
	return texts[1]
}

func childTexts(n *SyntaxNode, kind SyntaxKind) []string {
	var out []string
	for _, c := range n.green.Children() {
		if c.Kind() == kind {
			if t, ok := c.(*GreenToken); ok {
				out = append(out, t.Text())
			}
		}
	}
	return out
}

// Keyword / AffiliatedKeyword wrap KEYWORD / AFFILIATED_KEYWORD nodes.
type Keyword struct{ n *SyntaxNode }
type AffiliatedKeywords struct{ ns []*SyntaxNode }

func (k Keyword) Key() string {
	texts := childTexts(k.n, KindText)
	if len(texts) == 0 {
		return ""
	}
	return texts[0]
}

func (k Keyword) Optional() (string, bool) {
	texts := childTexts(k.n, KindText)
	if len(texts) < 3 {
		return "", false
	}
	return texts[1], true
}

func (k Keyword) Value() string {
	texts := childTexts(k.n, KindText)
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

// Value finds the first attached keyword matching key, case-insensitive.
func (a AffiliatedKeywords) Value(key string) (string, bool) {
	for _, n := range a.ns {
		kw := Keyword{n}
		if strings.EqualFold(kw.Key(), key) {
			return kw.Value(), true
		}
	}
	return "", false
}

// AffiliatedKeywordsOf collects any AFFILIATED_KEYWORD siblings
// immediately preceding elem within its parent (Invariant 6 — they are
// attached as elem's own leading children by the element parsers, so
// this just filters elem's children rather than scanning siblings).
func AffiliatedKeywordsOf(elem *SyntaxNode) AffiliatedKeywords {
	var out AffiliatedKeywords
	for _, c := range elem.ChildNodes() {
		if c.Kind() == KindAffiliatedKeyword {
			out.ns = append(out.ns, c)
		}
	}
	return out
}

// Clock wraps a CLOCK node.
type Clock struct{ n *SyntaxNode }

func (c Clock) Value() (Timestamp, bool) {
	for _, child := range c.n.ChildNodes() {
		if ts, ok := AsTimestamp(child); ok {
			return ts, true
		}
	}
	return Timestamp{}, false
}

func (c Clock) Duration() (string, bool) {
	if t := c.n.TokenOfKind(KindDoubleArrow); t == nil {
		return "", false
	}
	texts := childTexts(c.n, KindText)
	if len(texts) == 0 {
		return "", false
	}
	return strings.TrimSpace(texts[len(texts)-1]), true
}

func (c Clock) IsClosed() bool {
	_, ok := c.Duration()
	return ok
}

// Planning wraps a PLANNING node; deadline/scheduled/closed each return
// the last (source-order) matching timestamp.
type Planning struct{ n *SyntaxNode }

func (p Planning) timestampOf(kind SyntaxKind) (Timestamp, bool) {
	var last Timestamp
	found := false
	for _, c := range p.n.ChildNodes() {
		if c.Kind() != kind {
			continue
		}
		for _, gc := range c.ChildNodes() {
			if ts, ok := AsTimestamp(gc); ok {
				last, found = ts, true
			}
		}
	}
	return last, found
}

func (p Planning) Deadline() (Timestamp, bool)  { return p.timestampOf(KindPlanningDeadline) }
func (p Planning) Scheduled() (Timestamp, bool) { return p.timestampOf(KindPlanningScheduled) }
func (p Planning) Closed() (Timestamp, bool)    { return p.timestampOf(KindPlanningClosed) }

// Entity wraps an ENTITY node and defers to the entity table in
// entities.go.
type Entity struct {
	n *SyntaxNode
	e entityRecord
}

func AsEntity(n *SyntaxNode) (Entity, bool) {
	if n == nil || n.Kind() != KindEntity {
		return Entity{}, false
	}
	name := strings.Trim(n.Text(), "\\{}")
	e, ok := lookupEntity(name)
	if !ok {
		return Entity{}, false
	}
	return Entity{n: n, e: e}, true
}

func (e Entity) Name() string        { return e.e.NameOf() }
func (e Entity) Latex() string       { return e.e.LatexOf() }
func (e Entity) HTML() string        { return e.e.HTMLOf() }
func (e Entity) ASCII() string       { return e.e.ASCIIOf() }
func (e Entity) Latin1() string      { return e.e.Latin1Of() }
func (e Entity) UTF8() string        { return e.e.UTF8Of() }
func (e Entity) IsLatexMath() bool   { return e.e.IsLatexMath() }
func (e Entity) IsUseBrackets() bool { return e.e.IsUseBrackets() }
