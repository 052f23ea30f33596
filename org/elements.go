package org

import (
	"regexp"
	"strings"
)

// Element parsers (C5). Dispatch is by the first non-whitespace byte(s)
// of the line. Every parser here is total in the sense that it
// either commits and returns >0 consumed bytes, or returns (0, nil) and
// consumes nothing — the caller (parseElement) falls back to paragraph.

var (
	ruleRegexp       = regexp.MustCompile(`^[ \t]*-{5,}[ \t]*$`)
	fixedWidthRegexp = regexp.MustCompile(`^([ \t]*): ?(.*)$`)
	commentRegexp    = regexp.MustCompile(`^([ \t]*)#( ?.*)?$`)
	keywordRegexp    = regexp.MustCompile(`^([ \t]*)#\+([A-Za-z][A-Za-z0-9_-]*)(\[(.*?)\])?:([ \t]*)(.*)$`)
	drawerOpenRegexp = regexp.MustCompile(`^[ \t]*:([A-Za-z0-9_-]+):[ \t]*$`)
	blockBeginRegexp = regexp.MustCompile(`(?i)^[ \t]*#\+BEGIN_([A-Za-z0-9_-]+)(.*)$`)
	blockEndRegexp   = regexp.MustCompile(`(?i)^[ \t]*#\+END_([A-Za-z0-9_-]+)[ \t]*$`)
	dynBeginRegexp   = regexp.MustCompile(`(?i)^[ \t]*#\+BEGIN:[ \t]*(.*)$`)
	dynEndRegexp     = regexp.MustCompile(`(?i)^[ \t]*#\+END:[ \t]*$`)
	clockRegexp      = regexp.MustCompile(`^([ \t]*)CLOCK:([ \t]*)(.*)$`)
	fnDefRegexp      = regexp.MustCompile(`^\[fn:([\w-]+)\](.*)$`)
	tableRowRegexp   = regexp.MustCompile(`^[ \t]*\|`)
	tableRuleRegexp  = regexp.MustCompile(`^[ \t]*\|[-+]+\|?[ \t]*$`)
)

// peekLine returns the content (no terminator) of the first line of
// cur.text and the terminator bytes, without consuming anything.
func peekLine(cur cursor) (content, term string) {
	content, term, _ = splitLine(cur.text)
	return
}

// parseElement dispatches on the current line and returns the number of
// bytes consumed plus the GreenElement built. Callers that hit (0, nil)
// must fall back to paragraph consumption of one line ("State and
// failure").
func parseElement(cur cursor) (int, GreenElement) {
	content, _ := peekLine(cur)

	switch {
	case strings.HasPrefix(strings.TrimLeft(content, " \t"), "*") && isHeadlineLine(content):
		return parseHeadline(cur)
	case dynBeginRegexp.MatchString(content):
		return parseDynBlock(cur)
	case blockBeginRegexp.MatchString(content):
		return parseBlock(cur)
	case drawerOpenRegexp.MatchString(content) && !strings.EqualFold(strings.TrimSpace(content), ":END:"):
		return parseDrawer(cur)
	case keywordRegexp.MatchString(content):
		return parseKeywordOrAffiliated(cur)
	case fnDefRegexp.MatchString(content):
		return parseFootnoteDefinition(cur)
	case clockRegexp.MatchString(content):
		return parseClock(cur)
	case tableRowRegexp.MatchString(content):
		return parseTable(cur)
	case ruleRegexp.MatchString(content):
		return parseRule(cur)
	case isListLine(content):
		return parseList(cur)
	case fixedWidthRegexp.MatchString(content):
		return parseFixedWidth(cur)
	case commentRegexp.MatchString(content):
		return parseComment(cur)
	}
	return 0, nil
}

// consumeBlankRun consumes a run of blank lines and returns the raw
// tokens plus bytes consumed. Blank lines are never a free-standing
// element (Invariant 7): the sequence driver (parseElementSequence)
// uses this for the blank run at the very start of a
// document/section/item, returned for the container to attach as its
// own leading children; trailing blanks after an element go through
// consumeSingleBlankLine instead.
func consumeBlankRun(cur cursor) (int, []GreenElement) {
	toks, rest := blankLines(cur.text)
	return len(cur.text) - len(rest), toks
}

// appendChildren rebuilds elem (which must be a *GreenNode) with extra
// trailing children appended. Used to attach trailing BLANK_LINE tokens
// without re-running the element parser.
func appendChildren(elem GreenElement, extra []GreenElement) GreenElement {
	if len(extra) == 0 {
		return elem
	}
	n, ok := elem.(*GreenNode)
	if !ok {
		return elem
	}
	children := make([]GreenElement, 0, len(n.children)+len(extra))
	children = append(children, n.children...)
	children = append(children, extra...)
	return newGreenNode(n.kind, children)
}

// prependChildren rebuilds elem (which must be a *GreenNode) with extra
// leading children prepended. Used to attach AFFILIATED_KEYWORD nodes to
// the element immediately following them (Invariant 6).
func prependChildren(elem GreenElement, extra []GreenElement) GreenElement {
	if len(extra) == 0 {
		return elem
	}
	n, ok := elem.(*GreenNode)
	if !ok {
		return elem
	}
	children := make([]GreenElement, 0, len(n.children)+len(extra))
	children = append(children, extra...)
	children = append(children, n.children...)
	return newGreenNode(n.kind, children)
}

func isAffiliatedKeywordNode(elem GreenElement) bool {
	n, ok := elem.(*GreenNode)
	return ok && n.kind == KindAffiliatedKeyword
}

// parseElementSequence repeatedly parses elements from cur until stop
// reports true or input is exhausted, attaching each element's trailing
// blank-line run to itself (Invariant 7). Leading blank lines before the
// first element are returned as leadingBlanks for the caller to attach
// to whatever container it is building (document/section/item).
// parseElementSequence always consumes a FULL leading blank-line run
// (document/section/list-item leading material, "document driver"),
// but only ever attaches a SINGLE trailing blank line to each parsed
// element (Invariant 7's "trailing BLANK_LINE tokens" is satisfied by one
// or more such single attachments across iterations); a second
// consecutive blank line is left unconsumed and stops the sequence,
// which is exactly the "two blank lines" boundary this library uses to
// end footnote definitions and, via stop, list items.
func parseElementSequence(cur cursor, stop func(cursor) bool) (consumed int, leadingBlanks []GreenElement, nodes []GreenElement) {
	start := cur
	if n, toks := consumeBlankRun(cur); n > 0 {
		leadingBlanks = toks
		cur = cur.advance(n)
	}
	var pendingAffiliated []GreenElement
	for !cur.eof() && !stop(cur) {
		line, _ := peekLine(cur)
		if isBlankLine(line) {
			break
		}
		n, elem := parseElement(cur)
		if n == 0 {
			n, elem = parseParagraphLine(cur)
			if n == 0 {
				break
			}
		}
		cur = cur.advance(n)
		if isAffiliatedKeywordNode(elem) {
			// An affiliated keyword attaches to whatever element
			// immediately follows it (Invariant 6) rather than standing
			// as its own node; buffered until that element parses, or
			// flushed bare if a blank line or the sequence's end
			// intervenes first.
			pendingAffiliated = append(pendingAffiliated, elem)
			continue
		}
		if len(pendingAffiliated) > 0 {
			elem = prependChildren(elem, pendingAffiliated)
			pendingAffiliated = nil
		}
		if bn, blanks := consumeSingleBlankLine(cur); bn > 0 {
			elem = appendChildren(elem, blanks)
			cur = cur.advance(bn)
		}
		nodes = append(nodes, elem)
	}
	if len(pendingAffiliated) > 0 {
		nodes = append(nodes, pendingAffiliated...)
	}
	return len(start.text) - len(cur.text), leadingBlanks, nodes
}

// consumeSingleBlankLine consumes at most one blank line (content +
// terminator), used for the per-element trailing attachment described
// above.
func consumeSingleBlankLine(cur cursor) (int, []GreenElement) {
	line, term := peekLine(cur)
	if !isBlankLine(line) || (line == "" && term == "") {
		return 0, nil
	}
	var toks []GreenElement
	toks = append(toks, tokBLANK_LINE(line))
	if term != "" {
		toks = append(toks, tokNEW_LINE(term))
	}
	return len(line) + len(term), toks
}

// --- Rule -------------------------------------------------------------

func parseRule(cur cursor) (int, GreenElement) {
	content, term := peekLine(cur)
	if !ruleRegexp.MatchString(content) {
		return 0, nil
	}
	b := newBuilder()
	b.text(content)
	b.nl(term)
	return len(content) + len(term), b.build(KindRule)
}

// --- Fixed width --------------------------------------------------------

func parseFixedWidth(cur cursor) (int, GreenElement) {
	b := newBuilder()
	rest := cur.text
	any := false
	for {
		content, term, next := splitLine(rest)
		if !fixedWidthRegexp.MatchString(content) {
			break
		}
		b.text(content)
		if term != "" {
			b.nl(term)
		}
		any = true
		rest = next
		if term == "" {
			break
		}
	}
	if !any {
		return 0, nil
	}
	consumed := len(cur.text) - len(rest)
	return consumed, b.build(KindFixedWidth)
}

// --- Comment --------------------------------------------------------------

func parseComment(cur cursor) (int, GreenElement) {
	b := newBuilder()
	rest := cur.text
	any := false
	for {
		content, term, next := splitLine(rest)
		if !commentRegexp.MatchString(content) || keywordRegexp.MatchString(content) {
			break
		}
		b.text(content)
		if term != "" {
			b.nl(term)
		}
		any = true
		rest = next
		if term == "" {
			break
		}
	}
	if !any {
		return 0, nil
	}
	consumed := len(cur.text) - len(rest)
	return consumed, b.build(KindComment)
}

// --- Keyword / affiliated keyword -----------------------------------------

func parseKeywordOrAffiliated(cur cursor) (int, GreenElement) {
	content, term := peekLine(cur)
	m := keywordRegexp.FindStringSubmatch(content)
	if m == nil {
		return 0, nil
	}
	lead, key, bracket, opt, ws, value := m[1], m[2], m[3], m[4], m[5], m[6]
	kind := KindKeyword
	if cur.cfg.isAffiliatedKeyword(strings.ToUpper(key)) {
		kind = KindAffiliatedKeyword
	}
	b := newBuilder()
	if lead != "" {
		b.ws(lead)
	}
	b.punct(KindHashPlus, "#+")
	b.text(key)
	if bracket != "" {
		b.punct(KindLBracket, "[")
		b.text(opt)
		b.punct(KindRBracket, "]")
	}
	b.punct(KindColon, ":")
	if ws != "" {
		b.ws(ws)
	}
	b.text(value)
	if term != "" {
		b.nl(term)
	}
	return len(content) + len(term), b.build(kind)
}

// --- Drawer -----------------------------------------------------------

func parseDrawer(cur cursor) (int, GreenElement) {
	content, term := peekLine(cur)
	m := drawerOpenRegexp.FindStringSubmatch(content)
	if m == nil {
		return 0, nil
	}
	name := m[1]
	if strings.EqualFold(name, "END") {
		return 0, nil
	}
	b := newBuilder()
	pushIndentedColonLine(b, content, ":", name, ":")
	b.nl(term)
	rest := cur.advance(len(content) + len(term))
	isProps := strings.EqualFold(name, "PROPERTIES")
	for {
		c, t := peekLine(rest)
		if strings.EqualFold(strings.TrimSpace(c), ":END:") {
			pushIndentedColonLine(b, c, ":", "END", ":")
			b.nl(t)
			rest = rest.advance(len(c) + len(t))
			break
		}
		if c == "" && t == "" {
			break // unterminated drawer: stop, fall back to what we have
		}
		if isProps {
			n, e := parseNodeProperty(c, t)
			if n > 0 {
				b.push(e)
				rest = rest.advance(n)
				continue
			}
		}
		b.text(c)
		if t != "" {
			b.nl(t)
		}
		rest = rest.advance(len(c) + len(t))
		if t == "" {
			break
		}
	}
	consumed := len(cur.text) - len(rest.text)
	kind := KindDrawer
	if isProps {
		kind = KindPropertyDrawer
	}
	return consumed, b.build(kind)
}

// pushIndentedColonLine pushes content's leading/trailing horizontal
// whitespace as WHITESPACE tokens around the fixed ":NAME:"-shaped body,
// so a drawer's open/END line round-trips exactly regardless of
// indentation or trailing blanks.
func pushIndentedColonLine(b *NodeBuilder, content, open, name, close string) {
	trimmedLeft := strings.TrimLeft(content, " \t")
	lead := content[:len(content)-len(trimmedLeft)]
	trimmed := strings.TrimRight(trimmedLeft, " \t")
	trail := trimmedLeft[len(trimmed):]
	if lead != "" {
		b.ws(lead)
	}
	b.punct(KindColon, open)
	b.text(name)
	b.punct(KindColon, close)
	if trail != "" {
		b.ws(trail)
	}
}

var nodePropertyRegexp = regexp.MustCompile(`^[ \t]*:([A-Za-z0-9_+-]+):([ \t]+(.*))?$`)

func parseNodeProperty(content, term string) (int, GreenElement) {
	m := nodePropertyRegexp.FindStringSubmatch(content)
	if m == nil {
		return 0, nil
	}
	b := newBuilder()
	trimmed := strings.TrimLeft(content, " \t")
	if lead := content[:len(content)-len(trimmed)]; lead != "" {
		b.ws(lead)
	}
	b.punct(KindColon, ":")
	b.text(m[1])
	b.punct(KindColon, ":")
	if m[2] != "" {
		b.ws(m[2][:len(m[2])-len(m[3])])
		b.text(m[3])
	}
	if term != "" {
		b.nl(term)
	}
	return len(content) + len(term), b.build(KindNodeProperty)
}

// --- Clock ------------------------------------------------------------

func parseClock(cur cursor) (int, GreenElement) {
	content, term := peekLine(cur)
	m := clockRegexp.FindStringSubmatch(content)
	if m == nil {
		return 0, nil
	}
	lead, sep, rest := m[1], m[2], m[3]
	b := newBuilder()
	if lead != "" {
		b.ws(lead)
	}
	b.text("CLOCK:")
	if sep != "" {
		b.ws(sep)
	}
	tsLen, tsNode := parseTimestamp(rest)
	if tsLen == 0 {
		b.text(rest)
	} else {
		b.push(tsNode)
		remainder := rest[tsLen:]
		if idx := strings.Index(remainder, "=>"); idx != -1 {
			b.text(remainder[:idx])
			b.punct(KindDoubleArrow, "=>")
			b.text(remainder[idx+2:])
		} else {
			b.text(remainder)
		}
	}
	if term != "" {
		b.nl(term)
	}
	return len(content) + len(term), b.build(KindClock)
}

// --- Footnote definition ------------------------------------------------

func parseFootnoteDefinition(cur cursor) (int, GreenElement) {
	content, term := peekLine(cur)
	m := fnDefRegexp.FindStringSubmatch(content)
	if m == nil {
		return 0, nil
	}
	b := newBuilder()
	b.punct(KindLBracket, "[")
	b.text("fn:")
	b.text(m[1])
	b.punct(KindRBracket, "]")
	if m[2] != "" {
		b.text(m[2])
	}
	if term != "" {
		b.nl(term)
	}
	rest := cur.advance(len(content) + len(term))
	stop := func(c cursor) bool {
		line, _ := peekLine(c)
		return fnDefRegexp.MatchString(line) || isHeadlineLine(line)
	}
	n, leading, nodes := parseElementSequence(rest, stop)
	for _, lb := range leading {
		b.push(lb)
	}
	for _, nd := range nodes {
		b.push(nd)
	}
	rest = rest.advance(n)
	consumed := len(cur.text) - len(rest.text)
	return consumed, b.build(KindFnDef)
}


// --- Blocks (#+BEGIN_XXX / #+END_XXX) -------------------------------------

func parseBlock(cur cursor) (int, GreenElement) {
	content, term := peekLine(cur)
	m := blockBeginRegexp.FindStringSubmatch(content)
	if m == nil {
		return 0, nil
	}
	name := strings.ToUpper(m[1])
	params := m[2]
	endRe := regexp.MustCompile(`(?i)^[ \t]*#\+END_` + regexp.QuoteMeta(m[1]) + `[ \t]*$`)

	rest := cur.advance(len(content) + len(term))
	var bodyLines []string
	var bodyTerms []string
	found := false
	work := rest
	for {
		c, t := peekLine(work)
		if endRe.MatchString(c) {
			found = true
			break
		}
		if work.eof() {
			break
		}
		bodyLines = append(bodyLines, c)
		bodyTerms = append(bodyTerms, t)
		work = work.advance(len(c) + len(t))
		if t == "" {
			break
		}
	}
	if !found {
		cur.cfg.Log.Printf("unterminated #+BEGIN_%s block, falling back to paragraph", name)
		return 0, nil // dispatcher falls back to paragraph ("State and failure")
	}
	endContent, endTerm := peekLine(work)
	work = work.advance(len(endContent) + len(endTerm))

	beginBuilder := newBuilder()
	beginBuilder.text(content)
	beginBuilder.nl(term)
	beginNode := beginBuilder.build(KindBlockBegin)

	var bodyBuilder strings.Builder
	for i, l := range bodyLines {
		bodyBuilder.WriteString(l)
		bodyBuilder.WriteString(bodyTerms[i])
	}
	contentNode := newToken(KindBlockContent, bodyBuilder.String())

	endBuilder := newBuilder()
	endBuilder.text(endContent)
	endBuilder.nl(endTerm)
	endNode := endBuilder.build(KindBlockEnd)

	_ = params
	kind := blockKindFor(name)

	b := newBuilder()
	b.push(beginNode)
	b.push(contentNode)
	b.push(endNode)
	consumed := len(cur.text) - len(work.text)
	return consumed, b.build(kind)
}

func blockKindFor(name string) SyntaxKind {
	switch name {
	case "SRC":
		return KindSourceBlock
	case "QUOTE":
		return KindQuoteBlock
	case "CENTER":
		return KindCenterBlock
	case "VERSE":
		return KindVerseBlock
	case "COMMENT":
		return KindCommentBlock
	case "EXAMPLE":
		return KindExampleBlock
	case "EXPORT":
		return KindExportBlock
	default:
		return KindSpecialBlock
	}
}

// --- Dynamic block (#+BEGIN: ... #+END:) ----------------------------------

func parseDynBlock(cur cursor) (int, GreenElement) {
	content, term := peekLine(cur)
	if !dynBeginRegexp.MatchString(content) {
		return 0, nil
	}
	rest := cur.advance(len(content) + len(term))
	var bodyLines, bodyTerms []string
	found := false
	work := rest
	for {
		c, t := peekLine(work)
		if dynEndRegexp.MatchString(c) {
			found = true
			break
		}
		if work.eof() {
			break
		}
		bodyLines = append(bodyLines, c)
		bodyTerms = append(bodyTerms, t)
		work = work.advance(len(c) + len(t))
		if t == "" {
			break
		}
	}
	if !found {
		cur.cfg.Log.Printf("unterminated dynamic block, falling back to paragraph")
		return 0, nil
	}
	endContent, endTerm := peekLine(work)
	work = work.advance(len(endContent) + len(endTerm))

	beginB := newBuilder()
	beginB.text(content)
	beginB.nl(term)
	begin := beginB.build(KindDynBlockBegin)

	var bodyStr strings.Builder
	for i, l := range bodyLines {
		bodyStr.WriteString(l)
		bodyStr.WriteString(bodyTerms[i])
	}
	content_ := newToken(KindBlockContent, bodyStr.String())

	endB := newBuilder()
	endB.text(endContent)
	endB.nl(endTerm)
	end := endB.build(KindDynBlockEnd)

	b := newBuilder()
	b.push(begin)
	b.push(content_)
	b.push(end)
	consumed := len(cur.text) - len(work.text)
	return consumed, b.build(KindDynBlock)
}

// isHeadlineLine reports whether content is a well-formed "* ..." line
// (one or more stars at column 0 followed by a space, or end of line).
func isHeadlineLine(content string) bool {
	i := 0
	for i < len(content) && content[i] == '*' {
		i++
	}
	if i == 0 {
		return false
	}
	return i == len(content) || content[i] == ' '
}

// --- Paragraph ----------------------------------------------------------

// parseParagraphLine consumes a run of lines as a single PARAGRAPH,
// terminating at a blank line or at the start line of any other element
// ("otherwise, fall back to paragraph"). Each physical line's content is
// parsed for inline objects independently, joined by NEW_LINE tokens.
func parseParagraphLine(cur cursor) (int, GreenElement) {
	b := newBuilder()
	rest := cur
	any := false
	for {
		content, term := peekLine(rest)
		if isBlankLine(content) {
			break
		}
		if any && startsNewElement(content) {
			break
		}
		for _, e := range parseInlineRun(content, rest.cfg) {
			b.push(e)
		}
		if term != "" {
			b.nl(term)
		}
		any = true
		rest = rest.advance(len(content) + len(term))
		if term == "" {
			break
		}
	}
	if !any {
		return 0, nil
	}
	consumed := len(cur.text) - len(rest.text)
	return consumed, b.build(KindParagraph)
}

// startsNewElement reports whether content looks like the first line of
// some other element kind, so an in-progress paragraph should stop
// before consuming it.
func startsNewElement(content string) bool {
	trimmed := strings.TrimLeft(content, " \t")
	switch {
	case isHeadlineLine(content):
		return true
	case strings.HasPrefix(trimmed, "#+"):
		return keywordRegexp.MatchString(content) || blockBeginRegexp.MatchString(content) || dynBeginRegexp.MatchString(content) || blockEndRegexp.MatchString(content) || dynEndRegexp.MatchString(content)
	case drawerOpenRegexp.MatchString(content):
		return true
	case fnDefRegexp.MatchString(content):
		return true
	case clockRegexp.MatchString(content):
		return true
	case tableRowRegexp.MatchString(content):
		return true
	case ruleRegexp.MatchString(content):
		return true
	case isListLine(content):
		return true
	case fixedWidthRegexp.MatchString(content):
		return true
	case commentRegexp.MatchString(content) && !keywordRegexp.MatchString(content):
		return true
	}
	return false
}
