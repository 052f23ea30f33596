package org

// entityRecord describes one named entity recognized by \NAME or \NAME{}.
// The table mirrors the shape of Org's org-entities.el:
// a LaTeX rendering (plus whether it is itself math, e.g. "\AA" vs a
// symbol that needs no $...$), an HTML rendering, and ASCII/Latin-1/UTF-8
// plain-text fallbacks.
//
// This is a representative subset (not the full ~350-entry Org table):
// Greek letters, the most common mathematical and
// typographic symbols, and a handful of accented Latin letters. The
// lookup machinery below is the complete, final shape; growing the table
// is purely additive data entry.
type entityRecord struct {
	Name         string
	Latex        string
	LatexMathP   bool
	HTML         string
	ASCII        string
	Latin1       string
	UTF8         string
	UseBrackets  bool
}

func (e entityRecord) NameOf() string        { return e.Name }
func (e entityRecord) LatexOf() string       { return e.Latex }
func (e entityRecord) HTMLOf() string        { return e.HTML }
func (e entityRecord) ASCIIOf() string       { return e.ASCII }
func (e entityRecord) Latin1Of() string      { return e.Latin1 }
func (e entityRecord) UTF8Of() string        { return e.UTF8 }
func (e entityRecord) IsLatexMath() bool     { return e.LatexMathP }
func (e entityRecord) IsUseBrackets() bool   { return e.UseBrackets }

var entityTable = []entityRecord{
	{"alpha", `\alpha`, true, "&alpha;", "alpha", "alpha", "α", false},
	{"beta", `\beta`, true, "&beta;", "beta", "beta", "β", false},
	{"gamma", `\gamma`, true, "&gamma;", "gamma", "gamma", "γ", false},
	{"delta", `\delta`, true, "&delta;", "delta", "delta", "δ", false},
	{"epsilon", `\epsilon`, true, "&epsilon;", "epsilon", "epsilon", "ε", false},
	{"zeta", `\zeta`, true, "&zeta;", "zeta", "zeta", "ζ", false},
	{"eta", `\eta`, true, "&eta;", "eta", "eta", "η", false},
	{"theta", `\theta`, true, "&theta;", "theta", "theta", "θ", false},
	{"iota", `\iota`, true, "&iota;", "iota", "iota", "ι", false},
	{"kappa", `\kappa`, true, "&kappa;", "kappa", "kappa", "κ", false},
	{"lambda", `\lambda`, true, "&lambda;", "lambda", "lambda", "λ", false},
	{"mu", `\mu`, true, "&mu;", "mu", "mu", "μ", false},
	{"nu", `\nu`, true, "&nu;", "nu", "nu", "ν", false},
	{"xi", `\xi`, true, "&xi;", "xi", "xi", "ξ", false},
	{"omicron", `\omicron`, true, "&omicron;", "omicron", "omicron", "ο", false},
	{"pi", `\pi`, true, "&pi;", "pi", "pi", "π", false},
	{"rho", `\rho`, true, "&rho;", "rho", "rho", "ρ", false},
	{"sigma", `\sigma`, true, "&sigma;", "sigma", "sigma", "σ", false},
	{"tau", `\tau`, true, "&tau;", "tau", "tau", "τ", false},
	{"upsilon", `\upsilon`, true, "&upsilon;", "upsilon", "upsilon", "υ", false},
	{"phi", `\phi`, true, "&phi;", "phi", "phi", "φ", false},
	{"chi", `\chi`, true, "&chi;", "chi", "chi", "χ", false},
	{"psi", `\psi`, true, "&psi;", "psi", "psi", "ψ", false},
	{"omega", `\omega`, true, "&omega;", "omega", "omega", "ω", false},
	{"Gamma", `\Gamma`, true, "&Gamma;", "Gamma", "Gamma", "Γ", false},
	{"Delta", `\Delta`, true, "&Delta;", "Delta", "Delta", "Δ", false},
	{"Theta", `\Theta`, true, "&Theta;", "Theta", "Theta", "Θ", false},
	{"Lambda", `\Lambda`, true, "&Lambda;", "Lambda", "Lambda", "Λ", false},
	{"Xi", `\Xi`, true, "&Xi;", "Xi", "Xi", "Ξ", false},
	{"Pi", `\Pi`, true, "&Pi;", "Pi", "Pi", "Π", false},
	{"Sigma", `\Sigma`, true, "&Sigma;", "Sigma", "Sigma", "Σ", false},
	{"Upsilon", `\Upsilon`, true, "&Upsilon;", "Upsilon", "Upsilon", "Υ", false},
	{"Phi", `\Phi`, true, "&Phi;", "Phi", "Phi", "Φ", false},
	{"Psi", `\Psi`, true, "&Psi;", "Psi", "Psi", "Ψ", false},
	{"Omega", `\Omega`, true, "&Omega;", "Omega", "Omega", "Ω", false},
	{"nbsp", `~`, false, "&nbsp;", " ", " ", " ", false},
	{"hyphen", `-`, false, "&#45;", "-", "-", "-", false},
	{"mdash", `---`, false, "&mdash;", "--", "—", "—", false},
	{"ndash", `--`, false, "&ndash;", "-", "–", "–", false},
	{"ldquo", "\\textquotedblleft{}", false, "&ldquo;", "\"", "“", "“", false},
	{"rdquo", "\\textquotedblright{}", false, "&rdquo;", "\"", "”", "”", false},
	{"lsquo", "`", false, "&lsquo;", "'", "‘", "‘", false},
	{"rsquo", "'", false, "&rsquo;", "'", "’", "’", false},
	{"hellip", "\\ldots{}", false, "&hellip;", "...", "…", "…", false},
	{"dots", "\\dots{}", false, "&hellip;", "...", "...", "…", false},
	{"copy", `\textcopyright{}`, false, "&copy;", "(c)", "©", "©", false},
	{"reg", `\textregistered{}`, false, "&reg;", "(r)", "®", "®", false},
	{"trade", `\texttrademark{}`, false, "&trade;", "TM", "™", "™", false},
	{"deg", `\textdegree{}`, false, "&deg;", "deg", "°", "°", false},
	{"plusmn", `\pm`, true, "&plusmn;", "+-", "±", "±", false},
	{"pm", `\pm`, true, "&plusmn;", "+-", "±", "±", false},
	{"times", `\times`, true, "&times;", "x", "×", "×", false},
	{"divide", `\divide`, true, "&divide;", "/", "÷", "÷", false},
	{"frac12", `\frac{1}{2}`, true, "&frac12;", "1/2", "½", "½", true},
	{"frac14", `\frac{1}{4}`, true, "&frac14;", "1/4", "¼", "¼", true},
	{"frac34", `\frac{3}{4}`, true, "&frac34;", "3/4", "¾", "¾", true},
	{"infin", `\infty`, true, "&infin;", "infinity", "infinity", "∞", false},
	{"infty", `\infty`, true, "&infin;", "infinity", "infinity", "∞", false},
	{"sum", `\sum`, true, "&sum;", "sum", "sum", "∑", false},
	{"prod", `\prod`, true, "&prod;", "prod", "prod", "∏", false},
	{"int", `\int`, true, "&int;", "integral", "integral", "∫", false},
	{"partial", `\partial`, true, "&part;", "d", "d", "∂", false},
	{"nabla", `\nabla`, true, "&nabla;", "nabla", "nabla", "∇", false},
	{"radic", `\surd`, true, "&radic;", "sqrt", "sqrt", "√", false},
	{"propto", `\propto`, true, "&prop;", "prop to", "prop to", "∝", false},
	{"equiv", `\equiv`, true, "&equiv;", "==", "==", "≡", false},
	{"ne", `\neq`, true, "&ne;", "/=", "/=", "≠", false},
	{"neq", `\neq`, true, "&ne;", "/=", "/=", "≠", false},
	{"le", `\leq`, true, "&le;", "<=", "<=", "≤", false},
	{"ge", `\geq`, true, "&ge;", ">=", ">=", "≥", false},
	{"larr", `\leftarrow`, true, "&larr;", "<-", "<-", "←", false},
	{"rarr", `\rightarrow`, true, "&rarr;", "->", "->", "→", false},
	{"uarr", `\uparrow`, true, "&uarr;", "^", "^", "↑", false},
	{"darr", `\downarrow`, true, "&darr;", "v", "v", "↓", false},
	{"harr", `\leftrightarrow`, true, "&harr;", "<->", "<->", "↔", false},
	{"rArr", `\Rightarrow`, true, "&rArr;", "=>", "=>", "⇒", false},
	{"lArr", `\Leftarrow`, true, "&lArr;", "<=", "<=", "⇐", false},
	{"forall", `\forall`, true, "&forall;", "for all", "for all", "∀", false},
	{"exist", `\exists`, true, "&exist;", "there exists", "there exists", "∃", false},
	{"empty", `\emptyset`, true, "&empty;", "empty set", "empty set", "∅", false},
	{"isin", `\in`, true, "&isin;", "in", "in", "∈", false},
	{"notin", `\notin`, true, "&notin;", "not in", "not in", "∉", false},
	{"cap", `\cap`, true, "&cap;", "intersection", "intersection", "∩", false},
	{"cup", `\cup`, true, "&cup;", "union", "union", "∪", false},
	{"sub", `\subset`, true, "&sub;", "subset of", "subset of", "⊂", false},
	{"sup", `\supset`, true, "&sup;", "superset of", "superset of", "⊃", false},
	{"sube", `\subseteq`, true, "&sube;", "subset of or equal to", "subset of or equal to", "⊆", false},
	{"supe", `\supseteq`, true, "&supe;", "superset of or equal to", "superset of or equal to", "⊇", false},
	{"loz", `\lozenge`, true, "&loz;", "<>", "<>", "◊", false},
	{"star", `\star`, true, "&starf;", "*", "*", "☆", false},
	{"checkmark", `\checkmark`, true, "&#10003;", "check", "check", "✓", false},
	{"dagger", `\dagger`, true, "&dagger;", "+", "+", "†", false},
	{"Dagger", `\ddagger`, true, "&Dagger;", "++", "++", "‡", false},
	{"sect", `\S`, false, "&sect;", "paragraph", "§", "§", false},
	{"para", `\P{}`, false, "&para;", "paragraph", "¶", "¶", false},
	{"AA", `\AA{}`, false, "&Aring;", "A", "Å", "Å", false},
	{"Aacute", `\'{A}`, false, "&Aacute;", "A", "Á", "Á", false},
	{"aacute", `\'{a}`, false, "&aacute;", "a", "á", "á", false},
	{"Auml", `\"{A}`, false, "&Auml;", "Ae", "Ä", "Ä", false},
	{"auml", `\"{a}`, false, "&auml;", "ae", "ä", "ä", false},
	{"Ouml", `\"{O}`, false, "&Ouml;", "Oe", "Ö", "Ö", false},
	{"ouml", `\"{o}`, false, "&ouml;", "oe", "ö", "ö", false},
	{"Uuml", `\"{U}`, false, "&Uuml;", "Ue", "Ü", "Ü", false},
	{"uuml", `\"{u}`, false, "&uuml;", "ue", "ü", "ü", false},
	{"szlig", `\ss{}`, false, "&szlig;", "ss", "ß", "ß", false},
	{"eacute", `\'{e}`, false, "&eacute;", "e", "é", "é", false},
	{"egrave", "\\`{e}", false, "&egrave;", "e", "è", "è", false},
	{"ccedil", `\c{c}`, false, "&ccedil;", "c", "ç", "ç", false},
	{"ntilde", `\~{n}`, false, "&ntilde;", "n", "ñ", "ñ", false},
	{"alefsym", `\aleph`, true, "&alefsym;", "aleph", "aleph", "ℵ", false},
	{"spades", `\spadesuit`, true, "&spades;", "spades", "spades", "♠", false},
	{"clubs", `\clubsuit`, true, "&clubs;", "clubs", "clubs", "♣", false},
	{"hearts", `\heartsuit`, true, "&hearts;", "hearts", "hearts", "♥", false},
	{"diams", `\diamondsuit`, true, "&diams;", "diamonds", "diamonds", "♦", false},
	{"smiley", `\ddot\smile`, true, "&#9786;", ":-)", ":-)", "☺", false},
	{"frown", `\frown`, true, "&#9785;", ":-(", ":-(", "☹", false},
	{"there4", `\therefore`, true, "&there4;", "therefore", "therefore", "∴", false},
	{"because", `\because`, true, "&#8757;", "because", "because", "∵", false},
	{"angle", `\angle`, true, "&ang;", "angle", "angle", "∠", false},
	{"perp", `\perp`, true, "&perp;", "perpendicular", "perpendicular", "⊥", false},
	{"parallel", `\parallel`, true, "&par;", "parallel", "parallel", "∥", false},
	{"sim", `\sim`, true, "&sim;", "similar to", "similar to", "∼", false},
	{"cong", `\cong`, true, "&cong;", "congruent to", "congruent to", "≅", false},
	{"asymp", `\approx`, true, "&asymp;", "approximate", "approximate", "≈", false},
	{"amp", `\&`, false, "&amp;", "&", "&", "&", false},
	{"lt", `\textless{}`, false, "&lt;", "<", "<", "<", false},
	{"gt", `\textgreater{}`, false, "&gt;", ">", ">", ">", false},
	{"dollar", `\$`, false, "&#36;", "$", "$", "$", false},
	{"euro", `\euro{}`, false, "&euro;", "EUR", "EUR", "€", false},
	{"pound", `\pounds{}`, false, "&pound;", "GBP", "£", "£", false},
	{"yen", `\yen{}`, false, "&yen;", "JPY", "¥", "¥", false},
	{"cent", `\cent{}`, false, "&cent;", "cent", "¢", "¢", false},
	{"ordf", `\textordfeminine{}`, false, "&ordf;", "a", "ª", "ª", false},
	{"ordm", `\textordmasculine{}`, false, "&ordm;", "o", "º", "º", false},
	{"iexcl", `\textexclamdown{}`, false, "&iexcl;", "!", "¡", "¡", false},
	{"iquest", `\textquestiondown{}`, false, "&iquest;", "?", "¿", "¿", false},
	{"micro", `\mu`, false, "&micro;", "micro", "µ", "µ", false},
	{"middot", `\textperiodcentered{}`, false, "&middot;", ".", "·", "·", false},
	{"bull", `\textbullet{}`, false, "&bull;", "*", "*", "•", false},
	{"prime", `\prime`, true, "&prime;", "'", "'", "′", false},
	{"Prime", `\prime{}\prime`, true, "&Prime;", "''", "''", "″", false},
	{"oplus", `\oplus`, true, "&oplus;", "(+)", "(+)", "⊕", false},
	{"otimes", `\otimes`, true, "&otimes;", "(x)", "(x)", "⊗", false},
	{"minus", `\minus`, true, "&minus;", "-", "-", "−", false},
	{"lceil", `\lceil`, true, "&lceil;", "[", "[", "⌈", false},
	{"rceil", `\rceil`, true, "&rceil;", "]", "]", "⌉", false},
	{"lfloor", `\lfloor`, true, "&lfloor;", "[", "[", "⌊", false},
	{"rfloor", `\rfloor`, true, "&rfloor;", "]", "]", "⌋", false},
}

var entityByName map[string]entityRecord

func init() {
	entityByName = make(map[string]entityRecord, len(entityTable))
	for _, e := range entityTable {
		entityByName[e.Name] = e
	}
}

// lookupEntity returns the entity named name and whether it was found —
// a Lookup-miss is reported as "not found", never an error.
func lookupEntity(name string) (entityRecord, bool) {
	e, ok := entityByName[name]
	return e, ok
}
