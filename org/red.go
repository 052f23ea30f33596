package org

// SyntaxNode is the red overlay of a GreenNode: the same immutable
// structural data, with an absolute byte offset and a parent pointer
// added cheaply at traversal time rather than stored in the green tree.
// Children are computed lazily on first access so a
// tree walk that only visits a few subtrees never materializes the rest.
type SyntaxNode struct {
	green  *GreenNode
	offset int
	parent *SyntaxNode
}

// SyntaxToken is the red overlay of a GreenToken.
type SyntaxToken struct {
	green  *GreenToken
	offset int
	parent *SyntaxNode
}

// NewRoot wraps a parsed GreenNode as the root of a red tree at offset 0.
func NewRoot(green *GreenNode) *SyntaxNode {
	return &SyntaxNode{green: green, offset: 0, parent: nil}
}

func (n *SyntaxNode) Kind() SyntaxKind   { return n.green.Kind() }
func (n *SyntaxNode) Offset() int        { return n.offset }
func (n *SyntaxNode) EndOffset() int     { return n.offset + n.green.Width() }
func (n *SyntaxNode) Width() int         { return n.green.Width() }
func (n *SyntaxNode) Text() string       { return n.green.Text() }
func (n *SyntaxNode) Green() *GreenNode  { return n.green }
func (n *SyntaxNode) Parent() *SyntaxNode { return n.parent }

// Children materializes the red overlay of every immediate child,
// computing each one's absolute offset from its accumulated sibling
// widths. Cheap: no recursion, no copying of green data.
func (n *SyntaxNode) Children() []any {
	children := n.green.Children()
	out := make([]any, 0, len(children))
	off := n.offset
	for _, c := range children {
		switch g := c.(type) {
		case *GreenNode:
			out = append(out, &SyntaxNode{green: g, offset: off, parent: n})
		case *GreenToken:
			out = append(out, &SyntaxToken{green: g, offset: off, parent: n})
		}
		off += c.Width()
	}
	return out
}

// ChildNodes returns only the *SyntaxNode children, skipping tokens —
// the common case for AST accessors in ast.go that only care about
// sub-elements, not the whitespace/punctuation tokens between them.
func (n *SyntaxNode) ChildNodes() []*SyntaxNode {
	var out []*SyntaxNode
	off := n.offset
	for _, c := range n.green.Children() {
		if g, ok := c.(*GreenNode); ok {
			out = append(out, &SyntaxNode{green: g, offset: off, parent: n})
		}
		off += c.Width()
	}
	return out
}

// ChildOfKind returns the first immediate child node of the given kind,
// or nil. Used throughout ast.go to pick out e.g. a HEADLINE's TITLE.
func (n *SyntaxNode) ChildOfKind(kind SyntaxKind) *SyntaxNode {
	off := n.offset
	for _, c := range n.green.Children() {
		if c.Kind() == kind {
			if g, ok := c.(*GreenNode); ok {
				return &SyntaxNode{green: g, offset: off, parent: n}
			}
		}
		off += c.Width()
	}
	return nil
}

// TokenOfKind returns the first immediate child token of the given kind,
// or nil.
func (n *SyntaxNode) TokenOfKind(kind SyntaxKind) *SyntaxToken {
	off := n.offset
	for _, c := range n.green.Children() {
		if c.Kind() == kind {
			if g, ok := c.(*GreenToken); ok {
				return &SyntaxToken{green: g, offset: off, parent: n}
			}
		}
		off += c.Width()
	}
	return nil
}

func (t *SyntaxToken) Kind() SyntaxKind    { return t.green.Kind() }
func (t *SyntaxToken) Offset() int         { return t.offset }
func (t *SyntaxToken) EndOffset() int      { return t.offset + t.green.Width() }
func (t *SyntaxToken) Text() string        { return t.green.Text() }
func (t *SyntaxToken) Parent() *SyntaxNode { return t.parent }
