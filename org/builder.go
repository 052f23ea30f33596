package org

// NodeBuilder accumulates children with convenience pushes and emits an
// immutable GreenNode. It refuses to build a node whose total span is not
// exactly the sum of its children's spans — the losslessness guard.
type NodeBuilder struct {
	children []GreenElement
	width    int
}

func newBuilder() *NodeBuilder {
	return &NodeBuilder{}
}

// push appends an already-built child (node or token).
func (b *NodeBuilder) push(child GreenElement) *NodeBuilder {
	if child == nil {
		return b
	}
	b.children = append(b.children, child)
	b.width += child.Width()
	return b
}

// token appends a single token of kind with exact text s.
func (b *NodeBuilder) token(kind SyntaxKind, s string) *NodeBuilder {
	if s == "" {
		return b
	}
	return b.push(newToken(kind, s))
}

// text appends a TEXT token.
func (b *NodeBuilder) text(s string) *NodeBuilder { return b.token(KindText, s) }

// ws appends a WHITESPACE token.
func (b *NodeBuilder) ws(s string) *NodeBuilder { return b.token(KindWhitespace, s) }

// nl appends a NEW_LINE token (the raw line terminator bytes, LF or CRLF).
func (b *NodeBuilder) nl(s string) *NodeBuilder { return b.token(KindNewLine, s) }

// blank appends a BLANK_LINE token (terminator stripped from the content
// by the caller, per combinators.go's blankLines).
func (b *NodeBuilder) blank(s string) *NodeBuilder { return b.token(KindBlankLine, s) }

// punct appends one of the fixed single/multi-byte punctuation tokens.
func (b *NodeBuilder) punct(kind SyntaxKind, s string) *NodeBuilder { return b.token(kind, s) }

// len reports the accumulated width so far, e.g. for computing absolute
// offsets of children mid-construction.
func (b *NodeBuilder) len() int { return b.width }

// empty reports whether nothing has been pushed yet.
func (b *NodeBuilder) empty() bool { return len(b.children) == 0 }

// build emits the accumulated children as a GreenNode of kind. Panics (a
// programmer error, never a user-input error) if the accumulated width
// does not match the sum of children widths — this can only happen if a
// caller mutated b.children outside of push/token, which no code in this
// package does.
func (b *NodeBuilder) build(kind SyntaxKind) *GreenNode {
	n := newGreenNode(kind, b.children)
	assertf(n.width == b.width, "losslessness guard failed building %s: width %d != tracked %d", kind, n.width, b.width)
	return n
}

// Common single-byte punctuation tokens.
func tokL_BRACKET(s string) *GreenToken  { return newToken(KindLBracket, s) }
func tokR_BRACKET(s string) *GreenToken  { return newToken(KindRBracket, s) }
func tokCOLON(s string) *GreenToken      { return newToken(KindColon, s) }
func tokNEW_LINE(s string) *GreenToken   { return newToken(KindNewLine, s) }
func tokWHITESPACE(s string) *GreenToken { return newToken(KindWhitespace, s) }
func tokBLANK_LINE(s string) *GreenToken { return newToken(KindBlankLine, s) }
func tokBACKSLASH(s string) *GreenToken  { return newToken(KindBackslash, s) }
func tokTEXT(s string) *GreenToken       { return newToken(KindText, s) }
