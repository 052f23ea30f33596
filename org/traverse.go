package org

// Traversal engine (C9). Depth-first, pre-order-with-leave: every
// container kind gets Enter before its children and Leave after; kinds
// reported by SyntaxKind.IsLeafEvent emit a single Event instead.

// EventKind distinguishes Enter/Leave/Single traversal events.
type EventKind int

const (
	Enter EventKind = iota
	Leave
	Single
)

// Event is delivered to a Handler for every node or leaf token visited.
// Node is set for node events; for a leaf TEXT token (which has no
// further structure of its own to overlay as a *SyntaxNode) Token is
// set instead and Node is nil.
type Event struct {
	Kind  EventKind
	Node  *SyntaxNode
	Token *SyntaxToken
}

// Text returns the event's underlying source text, whether it came from
// a container node or a leaf token.
func (ev Event) Text() string {
	if ev.Token != nil {
		return ev.Token.Text()
	}
	return ev.Node.Text()
}

// ItemKind returns the SyntaxKind of the visited item (the node's kind,
// or KindText for a leaf token).
func (ev Event) ItemKind() SyntaxKind {
	if ev.Token != nil {
		return ev.Token.Kind()
	}
	return ev.Node.Kind()
}

// Context is the per-walk control object passed alongside each Event. A
// handler calls Skip during Enter to suppress descent into that node's
// children and its matching Leave.
type Context struct {
	skip bool
}

// Skip suppresses traversal of the current container's children (and
// its Leave event). Only meaningful when called during an Enter event.
func (c *Context) Skip() { c.skip = true }

// Handler receives each traversal event. It is a plain function, so
// exporters compose by delegating to other handlers.
type Handler func(ev Event, ctx *Context)

// Traverse walks root depth-first, calling h for every container
// Enter/Leave pair and every leaf-semantic node. Of the token children,
// only TEXT tokens are visited (as Single events); whitespace,
// punctuation and newline tokens are not.
func Traverse(root *SyntaxNode, h Handler) {
	if root == nil {
		return
	}
	walk(root, h)
}

func walk(n *SyntaxNode, h Handler) {
	if n.Kind().IsLeafEvent() {
		h(Event{Kind: Single, Node: n}, &Context{})
		return
	}
	ctx := &Context{}
	h(Event{Kind: Enter, Node: n}, ctx)
	if ctx.skip {
		return
	}
	for _, child := range n.Children() {
		switch c := child.(type) {
		case *SyntaxNode:
			walk(c, h)
		case *SyntaxToken:
			// Only TEXT tokens carry exporter-visible content; other
			// tokens (whitespace, newlines, punctuation) are structural
			// plumbing already accounted for by their owning node's
			// semantics (Text is among the leaf-semantic kinds).
			if c.Kind() == KindText {
				h(Event{Kind: Single, Token: c}, &Context{})
			}
		}
	}
	h(Event{Kind: Leave, Node: n}, &Context{})
}
