package org

import (
	"regexp"
	"strings"
)

// Headline parser (C5/C6). A headline owns, in source
// order: its title line (stars, optional TODO keyword, optional priority
// cookie, title text, optional tags), an optional PLANNING line, an
// optional PROPERTY_DRAWER, a SECTION of ordinary elements, and finally
// its nested child headlines (any run of headline lines with a strictly
// greater star count). Parsing stops at end of input or at the first
// headline line whose star count is <= the current depth.

var (
	headlineRegexp = regexp.MustCompile(`^(\*+)([ \t]+)?(.*)$`)
	priorityRegexp = regexp.MustCompile(`^\[#(.)\]`)
	tagsRegexp     = regexp.MustCompile(`^(.*?)([ \t]+)(:[A-Za-z0-9_@#%]+(?::[A-Za-z0-9_@#%]+)*:)[ \t]*$`)
)

func parseHeadline(cur cursor) (int, GreenElement) {
	content, term := peekLine(cur)
	m := headlineRegexp.FindStringSubmatch(content)
	if m == nil {
		return 0, nil
	}
	stars, spacing, rest := m[1], m[2], m[3]
	depth := len(stars)

	b := newBuilder()
	b.punct(KindStar, stars)
	if spacing != "" {
		b.ws(spacing)
	}

	// Tags: trailing ":a:b:" on the title line, stripped from the right
	// first since a title's free text may itself contain colons.
	tagsText := ""
	if tm := tagsRegexp.FindStringSubmatch(rest); tm != nil {
		rest, tagsText = tm[1], tm[2]+tm[3]
	}

	// TODO keyword: a leading bareword matching the configured open/closed
	// sets, followed by whitespace or end of title.
	keyword := ""
	if sp := strings.IndexAny(rest, " \t"); sp > 0 {
		if _, ok := cur.cfg.isTODOKeyword(rest[:sp]); ok {
			keyword = rest[:sp+1]
			rest = rest[sp+1:]
		}
	} else if rest != "" {
		if _, ok := cur.cfg.isTODOKeyword(rest); ok {
			keyword = rest
			rest = ""
		}
	}
	if keyword != "" {
		kw := strings.TrimRight(keyword, " \t")
		b.push(newBuilder().text(kw).build(KindHeadlineKeyword))
		if ws := keyword[len(kw):]; ws != "" {
			b.ws(ws)
		}
	}

	// Priority cookie: "[#A] " right after the keyword (or stars).
	if pm := priorityRegexp.FindStringSubmatch(rest); pm != nil {
		whole := pm[0]
		pb := newBuilder()
		pb.punct(KindLBracket, "[")
		pb.text("#" + pm[1])
		pb.punct(KindRBracket, "]")
		b.push(pb.build(KindHeadlinePriority))
		rest = rest[len(whole):]
		if sp := len(rest) - len(strings.TrimLeft(rest, " \t")); sp > 0 {
			b.ws(rest[:sp])
			rest = rest[sp:]
		}
	}

	title := rest
	titleB := newBuilder()
	for _, e := range parseInlineRun(title, cur.cfg) {
		titleB.push(e)
	}
	b.push(titleB.build(KindHeadlineTitle))

	if tagsText != "" {
		tb := newBuilder()
		ws, tagsStr := tagsText, ""
		for i := 0; i < len(tagsText); i++ {
			if tagsText[i] == ':' {
				ws, tagsStr = tagsText[:i], tagsText[i:]
				break
			}
		}
		if ws != "" {
			b.ws(ws)
		}
		segs := strings.Split(strings.Trim(tagsStr, ":"), ":")
		tb.punct(KindColon, ":")
		for _, seg := range segs {
			tb.text(seg)
			tb.punct(KindColon, ":")
		}
		b.push(tb.build(KindHeadlineTags))
	}

	if term != "" {
		b.nl(term)
	}
	rest2 := cur.advance(len(content) + len(term))

	if n, planning := tryParsePlanning(rest2); n > 0 {
		b.push(planning)
		rest2 = rest2.advance(n)
	}

	if pc, pt := peekLine(rest2); drawerOpenRegexp.MatchString(pc) {
		if m := drawerOpenRegexp.FindStringSubmatch(pc); m != nil && strings.EqualFold(m[1], "PROPERTIES") {
			if n, drawer := parseDrawer(rest2); n > 0 {
				b.push(drawer)
				rest2 = rest2.advance(n)
			}
		}
		_ = pt
	}

	secConsumed, leadingBlanks, nodes := parseElementSequence(rest2, func(c cursor) bool {
		line, _ := peekLine(c)
		return isHeadlineLine(line)
	})
	if secConsumed > 0 {
		sb := newBuilder()
		for _, t := range leadingBlanks {
			sb.push(t)
		}
		for _, n := range nodes {
			sb.push(n)
		}
		b.push(sb.build(KindSection))
		rest2 = rest2.advance(secConsumed)
	}

	for {
		line, _ := peekLine(rest2)
		if !isHeadlineLine(line) {
			break
		}
		childStars := 0
		for childStars < len(line) && line[childStars] == '*' {
			childStars++
		}
		if childStars <= depth {
			break
		}
		n, child := parseHeadline(rest2)
		if n == 0 {
			break
		}
		b.push(child)
		rest2 = rest2.advance(n)
	}

	consumed := len(cur.text) - len(rest2.text)
	return consumed, b.build(KindHeadline)
}

var planningKeywordRegexp = regexp.MustCompile(`^(DEADLINE|SCHEDULED|CLOSED):[ \t]*`)

// tryParsePlanning recognizes a PLANNING line: one or more of
// "DEADLINE:"/"SCHEDULED:"/"CLOSED:" each followed by a timestamp, in any
// order, separated by whitespace, and nothing else on the line.
func tryParsePlanning(cur cursor) (int, GreenElement) {
	content, term := peekLine(cur)
	work := content
	lead := work[:len(work)-len(strings.TrimLeft(work, " \t"))]
	work = work[len(lead):]

	b := newBuilder()
	if lead != "" {
		b.ws(lead)
	}
	any := false
	for {
		m := planningKeywordRegexp.FindStringSubmatch(work)
		if m == nil {
			break
		}
		kwKind := KindPlanningDeadline
		switch m[1] {
		case "SCHEDULED":
			kwKind = KindPlanningScheduled
		case "CLOSED":
			kwKind = KindPlanningClosed
		}
		rest := work[len(m[0]):]
		n, ts := parseTimestamp(rest)
		if n == 0 {
			return 0, nil
		}
		sep := m[0][len(m[1])+1:]
		eb := newBuilder()
		eb.text(m[1])
		eb.punct(KindColon, ":")
		if sep != "" {
			eb.ws(sep)
		}
		eb.push(ts)
		b.push(eb.build(kwKind))
		work = rest[n:]
		any = true

		if ws := len(work) - len(strings.TrimLeft(work, " \t")); ws > 0 {
			b.ws(work[:ws])
			work = work[ws:]
		}
	}
	if !any || work != "" {
		return 0, nil
	}
	if term != "" {
		b.nl(term)
	}
	return len(content) + len(term), b.build(KindPlanning)
}
