// Package org is a lossless Org mode syntax processor.
//
// It parses plain text into a concrete syntax tree — every byte of the
// input, including whitespace and comments, is represented somewhere in
// the tree — and can export it as HTML or re-serialize it back to Org
// syntax. Further export formats can be built on top of Traverse.
//
// You probably want to start with something like this:
//
//	doc := org.Parse(input)
//	html, err := doc.ToHTML()
//	if err != nil {
//	    log.Fatalf("Something went wrong: %s", err)
//	}
//	log.Print(html)
package org

// Document is a fully parsed Org buffer: a lossless concrete syntax tree
// rooted at a DOCUMENT node, plus the configuration it was parsed with.
// Document.Text always equals the original input exactly (Invariant 1).
type Document struct {
	cfg  *ParseConfig
	root *SyntaxNode
	text string
}

// Config returns the configuration this document was parsed with.
func (d *Document) Config() *ParseConfig { return d.cfg }

// Root returns the red-tree root (a DOCUMENT node).
func (d *Document) Root() *SyntaxNode { return d.root }

// Text returns the original input text, unchanged.
func (d *Document) Text() string { return d.text }

// parseDocument builds the green tree for an entire buffer: a leading
// blank run and preamble section, followed by a sequence of top-level
// headlines.
func parseDocument(cur cursor) *GreenNode {
	b := newBuilder()

	secConsumed, leadingBlanks, nodes := parseElementSequence(cur, func(c cursor) bool {
		line, _ := peekLine(c)
		return isHeadlineLine(line)
	})
	for _, t := range leadingBlanks {
		b.push(t)
	}
	if secConsumed > 0 {
		sb := newBuilder()
		for _, n := range nodes {
			sb.push(n)
		}
		b.push(sb.build(KindSection))
	}
	rest := cur.advance(secConsumed)

	for !rest.eof() {
		line, _ := peekLine(rest)
		if !isHeadlineLine(line) {
			break
		}
		n, headline := parseHeadline(rest)
		if n == 0 {
			break
		}
		b.push(headline)
		rest = rest.advance(n)
	}

	// Anything left over (malformed trailing bytes that matched no
	// dispatcher) is never dropped: it becomes a trailing paragraph so
	// parsing stays total.
	if !rest.eof() {
		n, p := parseParagraphLine(rest)
		if n > 0 {
			b.push(p)
			rest = rest.advance(n)
		}
	}
	if !rest.eof() {
		b.text(rest.text)
	}

	return b.build(KindDocument)
}
