package org

import (
	"fmt"
	"html"
	"strings"
)

// RenderHTML is the default HTML exporter (an external collaborator
// driven purely by the Traverse event stream — it never looks at bytes
// directly). Escaping uses the standard library's html.EscapeString:
// text escaping has no meaningful third-party alternative in the
// example pack (none of the reference repos pull in a templating
// engine for this), so the stdlib call stands without a replacement.
func RenderHTML(d *Document) (string, error) {
	r := &htmlRenderer{}
	d.Traverse(r.handle)
	return r.b.String(), nil
}

type htmlRenderer struct {
	b      strings.Builder
	lists  []bool // true = ordered, per open <ol>/<ul>
	tables []*tableState
}

// tableState tracks one open ORG_TABLE's head/body split. Whether a row
// is a header is only known once the table's first rule row is seen (or
// never is), so rows are buffered in buf until that's resolved: the
// first rule flushes buf wrapped in <thead>, and a table that closes
// with no rule at all flushes buf wrapped in <tbody> instead — a table
// with no rule has no header row.
type tableState struct {
	sawRule  bool
	bodyOpen bool
	buf      strings.Builder
}

// out returns the builder the next write should target: a table's
// buffer while its head/body split is still unresolved, the renderer's
// main builder otherwise.
func (r *htmlRenderer) out() *strings.Builder {
	if len(r.tables) > 0 {
		ts := r.tables[len(r.tables)-1]
		if !ts.sawRule {
			return &ts.buf
		}
	}
	return &r.b
}

func (r *htmlRenderer) handle(ev Event, ctx *Context) {
	switch ev.Kind {
	case Single:
		r.single(ev)
	case Enter:
		r.enter(ev, ctx)
	case Leave:
		r.leave(ev)
	}
}

func (r *htmlRenderer) single(ev Event) {
	if ev.Token != nil {
		r.out().WriteString(html.EscapeString(ev.Token.Text()))
		return
	}
	n := ev.Node
	switch n.Kind() {
	case KindLineBreak:
		r.out().WriteString("<br>\n")
	case KindRule:
		r.out().WriteString("<hr>\n")
	case KindEntity:
		if e, ok := AsEntity(n); ok {
			r.out().WriteString(e.HTML())
			return
		}
		r.out().WriteString(html.EscapeString(n.Text()))
	case KindLatexFragment:
		r.out().WriteString(html.EscapeString(n.Text()))
	case KindTimestampActive, KindTimestampInactive, KindTimestampDiary:
		class := "timestamp"
		if n.Kind() == KindTimestampActive {
			class = "timestamp timestamp-active"
		}
		fmt.Fprintf(r.out(), `<span class="%s">%s</span>`, class, html.EscapeString(n.Text()))
	case KindClock:
		r.out().WriteString(`<span class="clock">`)
		r.out().WriteString(html.EscapeString(n.Text()))
		r.out().WriteString("</span>\n")
	default:
		r.out().WriteString(html.EscapeString(n.Text()))
	}
}

func (r *htmlRenderer) enter(ev Event, ctx *Context) {
	n := ev.Node
	switch n.Kind() {
	case KindDocument:
		r.out().WriteString("<main>\n")
	case KindSection:
		r.out().WriteString("<section>\n")
	case KindParagraph:
		r.out().WriteString("<p>")
	case KindHeadline:
		h, _ := AsHeadline(n)
		level := h.Level()
		if level > 6 {
			level = 6
		}
		fmt.Fprintf(r.out(), "<h%d>", level)
		if kw, ok := h.TODOKeyword(); ok {
			fmt.Fprintf(r.out(), `<span class="todo">%s</span> `, html.EscapeString(kw))
		}
		if pr, ok := h.Priority(); ok {
			fmt.Fprintf(r.out(), `<span class="priority">[#%s]</span> `, html.EscapeString(pr))
		}
		if title := h.Title(); title != nil {
			r.out().WriteString(html.EscapeString(title.Text()))
		}
		r.out().WriteString(fmt.Sprintf("</h%d>\n", level))
		if tags := h.Tags(); len(tags) > 0 {
			r.out().WriteString(`<span class="tags">`)
			r.out().WriteString(html.EscapeString(strings.Join(tags, ":")))
			r.out().WriteString("</span>\n")
		}
		ctx.Skip() // title/tags already rendered above; section/children still need a walk
		for _, child := range n.ChildNodes() {
			switch child.Kind() {
			case KindSection, KindHeadline:
				walk(child, r.handle)
			}
		}
	case KindList:
		l, _ := AsList(n)
		if l.IsOrdered() {
			r.out().WriteString("<ol>\n")
			r.lists = append(r.lists, true)
		} else {
			r.out().WriteString("<ul>\n")
			r.lists = append(r.lists, false)
		}
	case KindListItem:
		r.out().WriteString("<li>")
	case KindOrgTable:
		r.out().WriteString("<table>\n")
		r.tables = append(r.tables, &tableState{})
	case KindOrgTableRuleRow:
		if len(r.tables) > 0 {
			ts := r.tables[len(r.tables)-1]
			if !ts.sawRule {
				r.b.WriteString("<thead>\n")
				r.b.WriteString(ts.buf.String())
				r.b.WriteString("</thead>\n")
				ts.buf.Reset()
				ts.sawRule = true
			} else if ts.bodyOpen {
				r.b.WriteString("</tbody>\n")
				ts.bodyOpen = false
			}
		}
		ctx.Skip()
	case KindOrgTableStandardRow:
		if len(r.tables) > 0 {
			ts := r.tables[len(r.tables)-1]
			if ts.sawRule && !ts.bodyOpen {
				r.b.WriteString("<tbody>\n")
				ts.bodyOpen = true
			}
		}
		r.out().WriteString("<tr>")
	case KindOrgTableCell:
		r.out().WriteString("<td>")
	case KindBold:
		r.out().WriteString("<b>")
	case KindItalic:
		r.out().WriteString("<i>")
	case KindUnderline:
		r.out().WriteString("<u>")
	case KindStrike:
		r.out().WriteString("<del>")
	case KindVerbatim, KindCode:
		r.out().WriteString("<code>")
	case KindLink:
		l, _ := AsLink(n)
		if l.IsImage() {
			fmt.Fprintf(r.out(), `<img src="%s">`, html.EscapeString(l.Path()))
		} else if l.HasDescription() {
			fmt.Fprintf(r.out(), `<a href="%s">%s</a>`, html.EscapeString(l.Path()), html.EscapeString(l.Description().Text()))
		} else {
			fmt.Fprintf(r.out(), `<a href="%s">%s</a>`, html.EscapeString(l.Path()), html.EscapeString(l.Path()))
		}
		ctx.Skip()
	case KindDrawer, KindPropertyDrawer, KindPlanning, KindKeyword, KindAffiliatedKeyword, KindComment:
		ctx.Skip()
	}
}

func (r *htmlRenderer) leave(ev Event) {
	n := ev.Node
	switch n.Kind() {
	case KindDocument:
		r.out().WriteString("</main>\n")
	case KindSection:
		r.out().WriteString("</section>\n")
	case KindParagraph:
		r.out().WriteString("</p>\n")
	case KindList:
		ordered := true
		if len(r.lists) > 0 {
			ordered = r.lists[len(r.lists)-1]
			r.lists = r.lists[:len(r.lists)-1]
		}
		if ordered {
			r.out().WriteString("</ol>\n")
		} else {
			r.out().WriteString("</ul>\n")
		}
	case KindListItem:
		r.out().WriteString("</li>\n")
	case KindOrgTable:
		if len(r.tables) > 0 {
			ts := r.tables[len(r.tables)-1]
			if !ts.sawRule {
				if ts.buf.Len() > 0 {
					r.b.WriteString("<tbody>\n")
					r.b.WriteString(ts.buf.String())
					r.b.WriteString("</tbody>\n")
				}
			} else if ts.bodyOpen {
				r.b.WriteString("</tbody>\n")
			}
			r.tables = r.tables[:len(r.tables)-1]
		}
		r.out().WriteString("</table>\n")
	case KindOrgTableStandardRow:
		r.out().WriteString("</tr>\n")
	case KindOrgTableCell:
		r.out().WriteString("</td>")
	case KindBold:
		r.out().WriteString("</b>")
	case KindItalic:
		r.out().WriteString("</i>")
	case KindUnderline:
		r.out().WriteString("</u>")
	case KindStrike:
		r.out().WriteString("</del>")
	case KindVerbatim, KindCode:
		r.out().WriteString("</code>")
	}
}
