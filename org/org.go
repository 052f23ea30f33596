package org

// Parse parses text using DefaultConfig (C11).
func Parse(text string) *Document {
	return ParseWithConfig(text, DefaultConfig())
}

// ParseWithConfig parses text with an explicit configuration. Parsing
// never fails : malformed input is represented as TEXT tokens
// inside PARAGRAPH rather than rejected.
func ParseWithConfig(text string, cfg *ParseConfig) *Document {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	green := parseDocument(newCursor(text, cfg))
	return &Document{cfg: cfg, root: NewRoot(green), text: text}
}

// ToOrg losslessly serializes the document back to Org syntax. It is
// always byte-identical to the text the document was parsed from
// (Invariant 1).
func (d *Document) ToOrg() string {
	return d.root.Text()
}

// ToHTML invokes the default HTML exporter (an external collaborator
//; see html.go).
func (d *Document) ToHTML() (string, error) {
	return RenderHTML(d)
}

// Traverse runs the depth-first traversal engine (C9) over the
// document's root.
func (d *Document) Traverse(h Handler) {
	Traverse(d.root, h)
}

// Headlines returns the document's top-level headlines, in source
// order.
func (d *Document) Headlines() []Headline {
	var out []Headline
	for _, c := range d.root.ChildNodes() {
		if h, ok := AsHeadline(c); ok {
			out = append(out, h)
		}
	}
	return out
}

// LineIndex builds a line/column index over the document's original
// text (C10).
func (d *Document) LineIndex() *LineIndex {
	return NewLineIndex(d.text)
}
