package org

import "strings"

// GreenElement is either a *GreenToken or a *GreenNode. It carries no
// absolute position — only its own local width, per the green/red split
// in the data model: green is immutable structural data, red overlays
// positions on demand (see red.go).
type GreenElement interface {
	Kind() SyntaxKind
	Width() int
	greenText(buf *strings.Builder)
}

// GreenToken is an immutable leaf: a kind plus the exact source string it
// represents. Whitespace and newlines are tokens too (Invariant 1).
type GreenToken struct {
	kind SyntaxKind
	text string
}

func newToken(kind SyntaxKind, text string) *GreenToken {
	return &GreenToken{kind: kind, text: text}
}

func (t *GreenToken) Kind() SyntaxKind { return t.kind }
func (t *GreenToken) Width() int       { return len(t.text) }
func (t *GreenToken) Text() string     { return t.text }
func (t *GreenToken) greenText(b *strings.Builder) { b.WriteString(t.text) }

// GreenNode is an immutable internal node: a kind plus an ordered sequence
// of children. Its width equals the sum of its children's widths
// (Invariant 3, computed by newGreenNode and checked by NodeBuilder.build).
type GreenNode struct {
	kind     SyntaxKind
	children []GreenElement
	width    int
}

func (n *GreenNode) Kind() SyntaxKind          { return n.kind }
func (n *GreenNode) Width() int                { return n.width }
func (n *GreenNode) Children() []GreenElement  { return n.children }

func (n *GreenNode) greenText(b *strings.Builder) {
	for _, c := range n.children {
		c.greenText(b)
	}
}

// Text reconstructs the exact source span of n by concatenating every
// token under it in tree order (Invariant 1).
func (n *GreenNode) Text() string {
	var b strings.Builder
	n.greenText(&b)
	return b.String()
}

func newGreenNode(kind SyntaxKind, children []GreenElement) *GreenNode {
	w := 0
	for _, c := range children {
		w += c.Width()
	}
	return &GreenNode{kind: kind, children: children, width: w}
}
