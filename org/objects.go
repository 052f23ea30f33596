package org

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Object parsers (C4). Each recognizes one inline construct and returns
// the number of bytes consumed plus the GreenElement built for it. A
// rejecting parser MUST return (0, nil) without having committed any
// input ("dispatch by byte prefix, not regex").
//
// parseInlineRun is the dispatcher: at each position it examines the next
// 1-3 bytes and tries the single matching parser; on rejection it folds
// one byte into the running plain-text span and resumes at the next byte.
func parseInlineRun(s string, cfg *ParseConfig) []GreenElement {
	return parseInlineRunOpts(s, cfg, false)
}

// parseLinkDescriptionRun parses the *link-description set*: the same
// objects as parseInlineRun except links (no nested links).
func parseLinkDescriptionRun(s string, cfg *ParseConfig) []GreenElement {
	return parseInlineRunOpts(s, cfg, true)
}

func parseInlineRunOpts(s string, cfg *ParseConfig, noLinks bool) []GreenElement {
	var out []GreenElement
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			out = append(out, tokTEXT(plain.String()))
			plain.Reset()
		}
	}
	i := 0
	for i < len(s) {
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		n, elem := dispatchObject(s[i:], prev, cfg, noLinks)
		if n > 0 {
			flush()
			if elem != nil {
				out = append(out, elem)
			}
			i += n
			continue
		}
		_, sz := utf8.DecodeRuneInString(s[i:])
		if sz == 0 {
			sz = 1
		}
		plain.WriteString(s[i : i+sz])
		i += sz
	}
	flush()
	return out
}

// parseVerbatimRun splits s on newlines only, producing TEXT and NEW_LINE
// tokens with no further object recognition — used for CODE/VERBATIM
// bodies ("~ and = make bodies verbatim").
func parseVerbatimRun(s string) []GreenElement {
	var out []GreenElement
	for len(s) > 0 {
		idx := strings.IndexByte(s, '\n')
		if idx == -1 {
			out = append(out, tokTEXT(s))
			break
		}
		if idx > 0 {
			out = append(out, tokTEXT(s[:idx]))
		}
		out = append(out, tokNEW_LINE(s[idx:idx+1]))
		s = s[idx+1:]
	}
	return out
}

func dispatchObject(s string, prev rune, cfg *ParseConfig, noLinks bool) (int, GreenElement) {
	if len(s) == 0 {
		return 0, nil
	}
	switch s[0] {
	case '*', '/', '+', '~', '=':
		if n, e := parseEmphasis(s, prev, cfg); n > 0 {
			return n, e
		}
	case '_':
		if n, e := parseEmphasis(s, prev, cfg); n > 0 {
			return n, e
		}
		if n, e := parseSubSuperScript(s); n > 0 {
			return n, e
		}
	case '^':
		if n, e := parseSubSuperScript(s); n > 0 {
			return n, e
		}
	case '[':
		if !noLinks {
			if n, e := parseLink(s, cfg); n > 0 {
				return n, e
			}
		}
		if n, e := parseFootnoteRef(s, cfg); n > 0 {
			return n, e
		}
		if n, e := parseCookie(s); n > 0 {
			return n, e
		}
		if n, e := parseTimestamp(s); n > 0 {
			return n, e
		}
	case '<':
		if n, e := parseTimestamp(s); n > 0 {
			return n, e
		}
		if n, e := parseRadioOrTarget(s); n > 0 {
			return n, e
		}
	case '{':
		if n, e := parseMacro(s); n > 0 {
			return n, e
		}
	case '@':
		if n, e := parseSnippet(s); n > 0 {
			return n, e
		}
	case '\\':
		if n, e := parseLineBreak(s); n > 0 {
			return n, e
		}
		if n, e := parseLatexFragmentBackslash(s); n > 0 {
			return n, e
		}
		if n, e := parseEntity(s, cfg); n > 0 {
			return n, e
		}
	case '$':
		if n, e := parseLatexFragmentDollar(s); n > 0 {
			return n, e
		}
	case 's':
		if n, e := parseInlineSrc(s, cfg); n > 0 {
			return n, e
		}
	case 'c':
		if n, e := parseInlineCall(s); n > 0 {
			return n, e
		}
	}
	return 0, nil
}

// --- Emphasis -------------------------------------------------------------

var emphasisKind = map[byte]SyntaxKind{
	'*': KindBold,
	'/': KindItalic,
	'_': KindUnderline,
	'+': KindStrike,
	'~': KindCode,
	'=': KindVerbatim,
}

func isValidPreChar(r rune) bool {
	return r == utf8.RuneError || unicode.IsSpace(r) || strings.ContainsRune(`-({'"`, r)
}

func isValidPostChar(r rune) bool {
	return r == utf8.RuneError || unicode.IsSpace(r) || strings.ContainsRune("-.,:!?;'\")}[\\", r)
}

func isValidBorderChar(r rune) bool { return !unicode.IsSpace(r) }

// parseEmphasis recognizes *B*, /I/, _U_, +S+, ~C~, =V=. The marker must
// be word-boundary-like on both sides; ~ and = bodies are verbatim.
func parseEmphasis(s string, prev rune, cfg *ParseConfig) (int, GreenElement) {
	marker := s[0]
	kind, ok := emphasisKind[marker]
	if !ok {
		return 0, nil
	}
	verbatim := marker == '~' || marker == '='
	if len(s) < 3 {
		return 0, nil
	}
	if !isValidPreChar(prev) {
		return 0, nil
	}
	afterMarker, afterSize := utf8.DecodeRuneInString(s[1:])
	if !isValidBorderChar(afterMarker) {
		return 0, nil
	}
	maxNL := 1
	if cfg != nil {
		maxNL = cfg.MaxEmphasisNewLines
	}
	newlines := 0
	i := 1 + afterSize
	for i < len(s) {
		if s[i] == '\n' {
			newlines++
			if newlines > maxNL {
				return 0, nil
			}
		}
		if s[i] == marker {
			prevR, _ := utf8.DecodeLastRuneInString(s[:i])
			nextR, nextSz := utf8.DecodeRuneInString(s[i+1:])
			_ = nextSz
			if isValidBorderChar(prevR) && isValidPostChar(nextR) {
				body := s[1:i]
				b := newBuilder()
				b.punct(emphasisMarkerKind(marker), s[0:1])
				if verbatim {
					for _, e := range parseVerbatimRun(body) {
						b.push(e)
					}
				} else {
					for _, e := range parseInlineRun(body, cfg) {
						b.push(e)
					}
				}
				b.punct(emphasisMarkerKind(marker), s[i:i+1])
				return i + 1, b.build(kind)
			}
		}
		_, sz := utf8.DecodeRuneInString(s[i:])
		if sz == 0 {
			sz = 1
		}
		i += sz
	}
	return 0, nil
}

func emphasisMarkerKind(marker byte) SyntaxKind {
	switch marker {
	case '*':
		return KindStar
	case '/':
		return KindSlash
	case '_':
		return KindUnderscore
	case '+':
		return KindPlus
	case '~':
		return KindTilde
	case '=':
		return KindEqual
	}
	return KindText
}

// --- Links ----------------------------------------------------------------

// parseLink recognizes [[PATH]] or [[PATH][DESC]].
func parseLink(s string, cfg *ParseConfig) (int, GreenElement) {
	if len(s) < 4 || s[0] != '[' || s[1] != '[' {
		return 0, nil
	}
	end := strings.Index(s, "]]")
	if end == -1 {
		return 0, nil
	}
	inner := s[2:end]
	if strings.Contains(inner, "\n") {
		return 0, nil
	}
	path, desc := inner, ""
	hasDesc := false
	if idx := strings.Index(inner, "]["); idx != -1 {
		path = inner[:idx]
		desc = inner[idx+2:]
		hasDesc = true
	}
	if strings.ContainsAny(path, "<>") {
		return 0, nil
	}
	b := newBuilder()
	b.punct(KindLBracket2, "[[")
	b.text(path)
	if hasDesc {
		b.punct(KindRBracket, "]")
		b.punct(KindLBracket, "[")
		db := newBuilder()
		for _, e := range parseLinkDescriptionRun(desc, cfg) {
			db.push(e)
		}
		b.push(db.build(KindLinkDescription))
		b.punct(KindRBracket, "]")
	} else {
		b.punct(KindRBracket, "]")
	}
	b.punct(KindRBracket2, "]")
	return end + 2, b.build(KindLink)
}

// --- Radio target / target -------------------------------------------------

func parseRadioOrTarget(s string) (int, GreenElement) {
	if strings.HasPrefix(s, "<<<") {
		end := strings.Index(s, ">>>")
		if end < 3 {
			return 0, nil
		}
		text := s[3:end]
		if text == "" || strings.TrimSpace(text) != text || strings.ContainsAny(text, "<>\n") {
			return 0, nil
		}
		b := newBuilder()
		b.punct(KindLAngle3, "<<<")
		b.text(text)
		b.punct(KindRAngle3, ">>>")
		return end + 3, b.build(KindRadioTarget)
	}
	if strings.HasPrefix(s, "<<") && !strings.HasPrefix(s, "<<<") {
		end := strings.Index(s, ">>")
		if end < 2 {
			return 0, nil
		}
		text := s[2:end]
		if text == "" || strings.TrimSpace(text) != text || strings.ContainsAny(text, "<>\n") {
			return 0, nil
		}
		b := newBuilder()
		b.punct(KindLAngle2, "<<")
		b.text(text)
		b.punct(KindRAngle2, ">>")
		return end + 2, b.build(KindTarget)
	}
	return 0, nil
}

// --- Footnote reference -----------------------------------------------------

func parseFootnoteRef(s string, cfg *ParseConfig) (int, GreenElement) {
	if !strings.HasPrefix(s, "[fn:") {
		return 0, nil
	}
	end := balancedBrackets(s)
	if end == -1 {
		return 0, nil
	}
	inner := s[4:end]
	label, def := inner, ""
	hasDef := false
	if idx := strings.IndexByte(inner, ':'); idx != -1 {
		label, def, hasDef = inner[:idx], inner[idx+1:], true
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !(c == '-' || c == '_' || isAlnum(c)) {
			return 0, nil
		}
	}
	b := newBuilder()
	b.punct(KindLBracket, "[")
	b.text("fn:")
	b.text(label)
	if hasDef {
		b.punct(KindColon, ":")
		for _, e := range parseInlineRun(def, cfg) {
			b.push(e)
		}
	}
	b.punct(KindRBracket, "]")
	return end + 1, b.build(KindFnRef)
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// --- Cookie -----------------------------------------------------------------

func parseCookie(s string) (int, GreenElement) {
	end := strings.IndexByte(s, ']')
	if end == -1 || s[0] != '[' {
		return 0, nil
	}
	inner := s[1:end]
	if !isCookieBody(inner) {
		return 0, nil
	}
	b := newBuilder()
	b.punct(KindLBracket, "[")
	b.text(inner)
	b.punct(KindRBracket, "]")
	return end + 1, b.build(KindCookie)
}

func isCookieBody(s string) bool {
	if s == "" {
		return false
	}
	if s == "/" || s == "%" {
		return true
	}
	if strings.HasSuffix(s, "%") {
		return isDigits(s[:len(s)-1])
	}
	if idx := strings.IndexByte(s, '/'); idx != -1 {
		left, right := s[:idx], s[idx+1:]
		return (left == "" || isDigits(left)) && (right == "" || isDigits(right)) && (left != "" || right != "")
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// --- Macro ------------------------------------------------------------------

func parseMacro(s string) (int, GreenElement) {
	if !strings.HasPrefix(s, "{{{") {
		return 0, nil
	}
	end := strings.Index(s, "}}}")
	if end == -1 {
		return 0, nil
	}
	inner := s[3:end]
	if inner == "" || !isLetter(inner[0]) {
		return 0, nil
	}
	name, args := inner, ""
	hasArgs := false
	if idx := strings.IndexByte(inner, '('); idx != -1 && strings.HasSuffix(inner, ")") {
		name, args, hasArgs = inner[:idx], inner[idx+1:len(inner)-1], true
	}
	for i := 0; i < len(name); i++ {
		if !(isAlnum(name[i]) || name[i] == '-' || name[i] == '_') {
			return 0, nil
		}
	}
	b := newBuilder()
	b.punct(KindLCurly3, "{{{")
	b.text(name)
	if hasArgs {
		b.punct(KindLParens, "(")
		b.text(args)
		b.punct(KindRParens, ")")
	}
	b.punct(KindRCurly3, "}}}")
	return end + 3, b.build(KindMacros)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// --- Snippet ------------------------------------------------------------

func parseSnippet(s string) (int, GreenElement) {
	if len(s) < 2 || s[0] != '@' || s[1] != '@' {
		return 0, nil
	}
	rest := s[2:]
	colon := strings.IndexByte(rest, ':')
	if colon == -1 {
		return 0, nil
	}
	backend := rest[:colon]
	if backend == "" {
		return 0, nil
	}
	for i := 0; i < len(backend); i++ {
		if !(isAlnum(backend[i]) || backend[i] == '-') {
			return 0, nil
		}
	}
	end := strings.Index(rest[colon+1:], "@@")
	if end == -1 {
		return 0, nil
	}
	value := rest[colon+1 : colon+1+end]
	b := newBuilder()
	b.punct(KindAt2, "@@")
	b.text(backend)
	b.punct(KindColon, ":")
	b.text(value)
	b.punct(KindAt2, "@@")
	return 2 + colon + 1 + end + 2, b.build(KindSnippet)
}

// --- Entity -------------------------------------------------------------

func parseEntity(s string, cfg *ParseConfig) (int, GreenElement) {
	if len(s) < 2 || s[0] != '\\' {
		return 0, nil
	}
	if s[1] == '_' {
		// "\_ " form: backslash-underscore-spaces.
		i := 2
		for i < len(s) && s[i] == ' ' {
			i++
		}
		if i == 2 {
			return 0, nil
		}
		b := newBuilder()
		b.punct(KindBackslash, "\\")
		b.text(s[1:i])
		return i, b.build(KindEntity)
	}
	if !isLetter(s[1]) {
		return 0, nil
	}
	i := 1
	for i < len(s) && isAlnum(s[i]) {
		i++
	}
	name := s[1:i]
	if _, ok := lookupEntity(name); !ok {
		if cfg != nil && cfg.Log != nil {
			cfg.Log.Printf("unknown entity \\%s, treating as plain text", name)
		}
		return 0, nil
	}
	hasBraces := i+1 < len(s) && s[i] == '{' && s[i+1] == '}'
	// NAME-form requires a non-letter immediately after, unless an
	// explicit "{}" follows.
	if !hasBraces && i < len(s) && isLetter(s[i]) {
		return 0, nil
	}
	b := newBuilder()
	b.punct(KindBackslash, "\\")
	b.text(name)
	consumed := i
	if hasBraces {
		b.punct(KindLCurly, "{")
		b.punct(KindRCurly, "}")
		consumed += 2
	}
	return consumed, b.build(KindEntity)
}

// --- Inline source / inline call -----------------------------------------

func parseInlineSrc(s string, cfg *ParseConfig) (int, GreenElement) {
	if !strings.HasPrefix(s, "src_") {
		return 0, nil
	}
	rest := s[4:]
	i := 0
	for i < len(rest) && rest[i] != '[' && rest[i] != '{' && !isSpaceByte(rest[i]) {
		i++
	}
	lang := rest[:i]
	if lang == "" {
		return 0, nil
	}
	pos := i
	var opts string
	hasOpts := false
	if pos < len(rest) && rest[pos] == '[' {
		end := strings.IndexByte(rest[pos:], ']')
		if end == -1 || strings.Contains(rest[pos:pos+end], "\n") {
			return 0, nil
		}
		opts = rest[pos+1 : pos+end]
		hasOpts = true
		pos += end + 1
	}
	if pos >= len(rest) || rest[pos] != '{' {
		return 0, nil
	}
	end := strings.IndexByte(rest[pos:], '}')
	if end == -1 || strings.Contains(rest[pos:pos+end], "\n") {
		return 0, nil
	}
	body := rest[pos+1 : pos+end]
	b := newBuilder()
	b.text("src_")
	b.text(lang)
	if hasOpts {
		b.punct(KindLBracket, "[")
		b.text(opts)
		b.punct(KindRBracket, "]")
	}
	b.punct(KindLCurly, "{")
	for _, e := range parseVerbatimRun(body) {
		b.push(e)
	}
	b.punct(KindRCurly, "}")
	return 4 + pos + end + 1, b.build(KindInlineSrc)
}

func isSpaceByte(c byte) bool { return c == ' ' || c == '\t' }

func parseInlineCall(s string) (int, GreenElement) {
	if !strings.HasPrefix(s, "call_") {
		return 0, nil
	}
	rest := s[5:]
	i := 0
	for i < len(rest) && rest[i] != '[' && rest[i] != '(' && !isSpaceByte(rest[i]) && rest[i] != '\n' {
		i++
	}
	name := rest[:i]
	if name == "" {
		return 0, nil
	}
	pos := i
	b := newBuilder()
	b.text("call_")
	b.text(name)
	if pos < len(rest) && rest[pos] == '[' {
		end := strings.IndexByte(rest[pos:], ']')
		if end == -1 {
			return 0, nil
		}
		b.punct(KindLBracket, "[")
		b.text(rest[pos+1 : pos+end])
		b.punct(KindRBracket, "]")
		pos += end + 1
	}
	if pos >= len(rest) || rest[pos] != '(' {
		return 0, nil
	}
	end := strings.IndexByte(rest[pos:], ')')
	if end == -1 {
		return 0, nil
	}
	b.punct(KindLParens, "(")
	b.text(rest[pos+1 : pos+end])
	b.punct(KindRParens, ")")
	pos += end + 1
	if pos < len(rest) && rest[pos] == '[' {
		end2 := strings.IndexByte(rest[pos:], ']')
		if end2 != -1 {
			b.punct(KindLBracket, "[")
			b.text(rest[pos+1 : pos+end2])
			b.punct(KindRBracket, "]")
			pos += end2 + 1
		}
	}
	return 5 + pos, b.build(KindInlineCall)
}

// --- Line break -----------------------------------------------------------

// parseLineBreak recognizes "\\" followed only by whitespace before eol
// (an open design question). If the rest of the line is not all whitespace,
// this rejects and the bytes fall back to plain text / entity / latex.
func parseLineBreak(s string) (int, GreenElement) {
	if len(s) < 2 || s[0] != '\\' || s[1] != '\\' {
		return 0, nil
	}
	i := 2
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if !eolOrEOF(s[i:]) {
		return 0, nil
	}
	b := newBuilder()
	b.text("\\\\")
	if i > 2 {
		b.ws(s[2:i])
	}
	return i, b.build(KindLineBreak)
}

// --- LaTeX fragments --------------------------------------------------------

func parseLatexFragmentBackslash(s string) (int, GreenElement) {
	var open, closeSeq string
	switch {
	case strings.HasPrefix(s, `\(`):
		open, closeSeq = `\(`, `\)`
	case strings.HasPrefix(s, `\[`):
		open, closeSeq = `\[`, `\]`
	default:
		return 0, nil
	}
	idx := strings.Index(s[len(open):], closeSeq)
	if idx == -1 {
		return 0, nil
	}
	body := s[len(open) : len(open)+idx]
	b := newBuilder()
	b.text(open)
	for _, e := range parseVerbatimRun(body) {
		b.push(e)
	}
	b.text(closeSeq)
	return len(open) + idx + len(closeSeq), b.build(KindLatexFragment)
}

func parseLatexFragmentDollar(s string) (int, GreenElement) {
	if strings.HasPrefix(s, "$$") {
		idx := strings.Index(s[2:], "$$")
		if idx == -1 {
			return 0, nil
		}
		body := s[2 : 2+idx]
		b := newBuilder()
		b.text("$$")
		for _, e := range parseVerbatimRun(body) {
			b.push(e)
		}
		b.text("$$")
		return 2 + idx + 2, b.build(KindLatexFragment)
	}
	if len(s) < 3 || s[1] == ' ' || s[1] == '$' {
		return 0, nil
	}
	idx := strings.IndexByte(s[1:], '$')
	if idx <= 0 {
		return 0, nil
	}
	body := s[1 : 1+idx]
	if strings.Contains(body, "\n") || strings.HasPrefix(body, " ") || strings.HasSuffix(body, " ") {
		return 0, nil
	}
	b := newBuilder()
	b.text("$")
	for _, e := range parseVerbatimRun(body) {
		b.push(e)
	}
	b.text("$")
	return 1 + idx + 1, b.build(KindLatexFragment)
}

// --- Sub/superscript --------------------------------------------------------

func parseSubSuperScript(s string) (int, GreenElement) {
	marker := s[0] // '_' or '^'
	kind := KindSubscript
	if marker == '^' {
		kind = KindSuperscript
	}
	if len(s) < 2 {
		return 0, nil
	}
	if s[1] == '{' {
		end := strings.IndexByte(s[2:], '}')
		if end == -1 || strings.ContainsAny(s[2:2+end], "{}") {
			return 0, nil
		}
		body := s[2 : 2+end]
		b := newBuilder()
		b.punct(KindUnderscore, s[0:1])
		b.punct(KindLCurly, "{")
		b.text(body)
		b.punct(KindRCurly, "}")
		return 2 + end + 1, b.build(kind)
	}
	// plain-word form: letters/digits/'*' only, capped at first
	// non-identifier byte (a deliberate design decision).
	i := 1
	for i < len(s) && (isAlnum(s[i]) || s[i] == '*') {
		i++
	}
	if i == 1 {
		return 0, nil
	}
	b := newBuilder()
	b.punct(KindUnderscore, s[0:1])
	b.text(s[1:i])
	return i, b.build(kind)
}
