package org

import "regexp"

// List / list-item parser (C5). Grounded on the prior
// line-token lexer (unorderedListRegexp, orderedListRegexp,
// descriptiveListItemRegexp, listItemValueRegexp, listItemStatusRegexp)
// but rebuilt over raw text so every byte — including the separator
// whitespace between bullet and content — lands in a token instead of
// being discarded by the regex match.

var (
	unorderedListRegexp       = regexp.MustCompile(`^([ \t]*)([+*-])([ \t]+|$)`)
	orderedListRegexp         = regexp.MustCompile(`^([ \t]*)([0-9]+|[a-zA-Z])([.)])([ \t]+|$)`)
	descriptiveListItemRegexp = regexp.MustCompile(`[ \t]::([ \t]|$)`)
	listItemValueRegexp       = regexp.MustCompile(`^\[@([0-9]+)\]([ \t]+|$)`)
	listItemStatusRegexp      = regexp.MustCompile(`^\[( |X|-)\]([ \t]+|$)`)
)

type listBulletMatch struct {
	indent, bullet, sep string
	ordered             bool
}

// isListLine reports whether content opens a list item.
func isListLine(content string) bool {
	return matchListBullet(content) != nil
}

func matchListBullet(content string) *listBulletMatch {
	if m := unorderedListRegexp.FindStringSubmatch(content); m != nil {
		return &listBulletMatch{indent: m[1], bullet: m[2], sep: m[3], ordered: false}
	}
	if m := orderedListRegexp.FindStringSubmatch(content); m != nil {
		return &listBulletMatch{indent: m[1], bullet: m[2] + m[3], sep: m[4], ordered: true}
	}
	return nil
}

func lineIndent(content string) int {
	i := 0
	for i < len(content) && (content[i] == ' ' || content[i] == '\t') {
		i++
	}
	return i
}

// parseList consumes a run of sibling list items: consecutive
// list-bullet lines at the same indent and the same ordered/unordered
// family. A dedent, an indent, or a switch in bullet family starts a
// new (possibly nested) list rather than continuing this one.
func parseList(cur cursor) (int, GreenElement) {
	content, _ := peekLine(cur)
	first := matchListBullet(content)
	if first == nil {
		return 0, nil
	}
	indent, ordered := len(first.indent), first.ordered

	b := newBuilder()
	rest := cur
	any := false
	for {
		line, _ := peekLine(rest)
		m := matchListBullet(line)
		if m == nil || len(m.indent) != indent || m.ordered != ordered {
			break
		}
		n, item := parseListItem(rest, m)
		if n == 0 {
			break
		}
		b.push(item)
		rest = rest.advance(n)
		any = true
	}
	if !any {
		return 0, nil
	}
	consumed := len(cur.text) - len(rest.text)
	return consumed, b.build(KindList)
}

// parseListItem parses one item's bullet, optional "[@N]" counter,
// optional "[ ]"/"[-]"/"[X]" checkbox, optional " :: " descriptive tag,
// and body. The body is the first line's remaining text plus any
// continuation lines indented at or past the content column;
// blank lines after a body element are allowed singly (consistent with
// parseElementSequence's single-trailing-blank rule) and two
// consecutive blanks there end the item; a blank run directly after
// the bullet line is consumed whole as the body's leading blanks.
func parseListItem(cur cursor, m *listBulletMatch) (int, GreenElement) {
	content, term := peekLine(cur)
	prefixLen := len(m.indent) + len(m.bullet) + len(m.sep)
	firstLineRest := content[prefixLen:]
	minIndent := prefixLen

	b := newBuilder()
	if m.indent != "" {
		b.push(newBuilder().ws(m.indent).build(KindListItemIndent))
	}
	b.push(newBuilder().text(m.bullet).build(KindListItemBullet))
	if m.sep != "" {
		b.ws(m.sep)
	}

	if m.ordered {
		if cm := listItemValueRegexp.FindStringSubmatch(firstLineRest); cm != nil {
			cb := newBuilder()
			cb.punct(KindLBracket, "[")
			cb.punct(KindAt2, "@")
			cb.text(cm[1])
			cb.punct(KindRBracket, "]")
			b.push(cb.build(KindListItemCounter))
			if cm[2] != "" {
				b.ws(cm[2])
			}
			firstLineRest = firstLineRest[len(cm[0]):]
			minIndent += len(cm[0])
		}
	}
	if cm := listItemStatusRegexp.FindStringSubmatch(firstLineRest); cm != nil {
		cb := newBuilder()
		cb.punct(KindLBracket, "[")
		cb.text(cm[1])
		cb.punct(KindRBracket, "]")
		b.push(cb.build(KindListItemCheckBox))
		if cm[2] != "" {
			b.ws(cm[2])
		}
		firstLineRest = firstLineRest[len(cm[0]):]
		minIndent += len(cm[0])
	}
	if loc := descriptiveListItemRegexp.FindStringIndex(firstLineRest); loc != nil {
		termText := firstLineRest[:loc[0]]
		sepText := firstLineRest[loc[0]:loc[1]]
		tb := newBuilder()
		for _, e := range parseInlineRun(termText, cur.cfg) {
			tb.push(e)
		}
		b.push(tb.build(KindListItemTag))
		b.ws(sepText[:1])
		b.punct(KindColon2, "::")
		if trail := sepText[3:]; trail != "" {
			b.ws(trail)
		}
		firstLineRest = firstLineRest[loc[1]:]
		minIndent += loc[1]
	}

	bodyFirstLine := firstLineRest

	stop := func(c cursor) bool {
		line, _ := peekLine(c)
		if isHeadlineLine(line) {
			return true
		}
		if isBlankLine(line) {
			return false
		}
		if lineIndent(line) < minIndent {
			return true
		}
		if bm := matchListBullet(line); bm != nil && len(bm.indent) <= len(m.indent) {
			return true
		}
		return false
	}

	bodyCur := cur.advance(len(content) + len(term))
	n2, leadingBlanks, nodes := parseElementSequence(bodyCur, stop)

	ib := newBuilder()
	for _, e := range parseInlineRun(bodyFirstLine, cur.cfg) {
		ib.push(e)
	}
	if term != "" {
		ib.nl(term)
	}
	for _, t := range leadingBlanks {
		ib.push(t)
	}
	for _, n := range nodes {
		ib.push(n)
	}
	b.push(ib.build(KindParagraph))

	consumed := len(content) + len(term) + n2
	return consumed, b.build(KindListItem)
}
