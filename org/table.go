package org

import "strings"

// Table parser (C5). A run of consecutive "|"-led lines is one
// ORG_TABLE; a rule row ("|---+---|") is ORG_TABLE_RULE_ROW, everything
// else is ORG_TABLE_STANDARD_ROW split on unescaped "|" into
// ORG_TABLE_CELL children (padding whitespace kept, not trimmed, as
// separate WHITESPACE tokens so the row round-trips exactly). Only
// pipe-led tables are recognized: no TABLE_EL node is produced, and a
// table.el "+-...-+" frame line is not treated as a table at all.

func parseTable(cur cursor) (int, GreenElement) {
	content, _ := peekLine(cur)
	if tableRowRegexp.MatchString(content) {
		return parseOrgTable(cur)
	}
	return 0, nil
}

func parseOrgTable(cur cursor) (int, GreenElement) {
	b := newBuilder()
	rest := cur.text
	any := false
	for {
		content, term, next := splitLine(rest)
		if !tableRowRegexp.MatchString(content) {
			break
		}
		if tableRuleRegexp.MatchString(content) {
			b.push(parseTableRuleRow(content, term))
		} else {
			b.push(parseTableStandardRow(content, term, cur.cfg))
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
	return consumed, b.build(KindOrgTable)
}

func parseTableRuleRow(content, term string) GreenElement {
	b := newBuilder()
	b.text(content)
	if term != "" {
		b.nl(term)
	}
	return b.build(KindOrgTableRuleRow)
}

// parseTableStandardRow splits content on unescaped "|" into
// ORG_TABLE_CELL children. Leading/trailing whitespace around each cell
// is kept as WHITESPACE tokens inside the cell rather than trimmed, so
// the row's children reproduce content exactly.
func parseTableStandardRow(content, term string, cfg *ParseConfig) GreenElement {
	b := newBuilder()
	i := 0
	for i < len(content) {
		if content[i] != '|' {
			// Leading text before the first pipe (the row's indentation,
			// if any), kept as a TEXT token.
			j := i
			for j < len(content) && content[j] != '|' {
				j++
			}
			b.text(content[i:j])
			i = j
			continue
		}
		b.punct(KindPipe, "|")
		i++
		if strings.TrimRight(content[i:], " \t") == "" {
			// Closing pipe: trailing blanks after it are not a cell.
			b.ws(content[i:])
			break
		}
		start := i
		for i < len(content) && content[i] != '|' {
			i++
		}
		b.push(tableCell(content[start:i], cfg))
	}
	if term != "" {
		b.nl(term)
	}
	return b.build(KindOrgTableStandardRow)
}

// tableCell splits a raw cell body into its outer whitespace padding
// (kept verbatim, not trimmed) and an inner body that is run through the
// same inline-object parser paragraphs use, so emphasis/links/entities
// inside a cell are recognized rather than flattened to one TEXT token.
func tableCell(raw string, cfg *ParseConfig) GreenElement {
	b := newBuilder()
	trimmed := strings.TrimLeft(raw, " \t")
	lead := raw[:len(raw)-len(trimmed)]
	trailing := ""
	body := trimmed
	for len(body) > 0 && (body[len(body)-1] == ' ' || body[len(body)-1] == '\t') {
		trailing = body[len(body)-1:] + trailing
		body = body[:len(body)-1]
	}
	if lead != "" {
		b.ws(lead)
	}
	for _, e := range parseInlineRun(body, cfg) {
		b.push(e)
	}
	if trailing != "" {
		b.ws(trailing)
	}
	return b.build(KindOrgTableCell)
}
