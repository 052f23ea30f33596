package org

import (
	"log"
	"os"
	"strings"
)

// ParseConfig bundles the string sets consumed by parsers ("Parse
// configuration"). It generalizes the old Configuration/BufferSettings
// split from the buffer-local-variables model: TODOKeywords/DualKeywords/etc.
// are the closed-over parser inputs, while Log is an ambient
// collaborator kept alongside them.
type ParseConfig struct {
	// TODOKeywordsOpen/Closed split the TODO keyword set by state.
	// A headline's keyword must appear in one of these sets
	// (case-sensitive) to be recognized as a TODO keyword at all;
	// otherwise it is part of the title text.
	TODOKeywordsOpen   []string
	TODOKeywordsClosed []string

	// DualKeywords lists the keys that accept an optional "[OPT]"
	// argument: "#+KEY[OPT]: VALUE". The keyword parser does not consult
	// it: an "[OPT]" part is split out on any keyword line, whatever the key.
	DualKeywords []string

	// ParsedKeywords lists the keys whose values hold inline objects.
	// The keyword parser does not consult it: every keyword value is kept
	// as one raw TEXT token.
	ParsedKeywords []string

	// AffiliatedKeywords is the whitelist of keys recognized as affiliated
	// (attaching to the following element) rather than standing alone as
	// a plain KEYWORD node.
	AffiliatedKeywords []string

	// MaxEmphasisNewLines bounds how many newlines an emphasis marker's
	// body may span (mirrors org-emphasis-regexp-components' newline limit).
	MaxEmphasisNewLines int

	// Log receives the parser's warnings for recoverable conditions: an
	// unterminated block or dynamic block, and an unknown entity name.
	Log *log.Logger
}

// DefaultConfig returns the library's built-in configuration defaults.
func DefaultConfig() *ParseConfig {
	return &ParseConfig{
		TODOKeywordsOpen:   []string{"TODO"},
		TODOKeywordsClosed: []string{"DONE"},
		DualKeywords:       []string{"CAPTION", "RESULTS"},
		ParsedKeywords:     []string{"CAPTION"},
		AffiliatedKeywords: []string{
			"CAPTION", "DATA", "HEADER", "HEADERS", "LABEL", "NAME",
			"PLOT", "RESNAME", "RESULT", "RESULTS", "SOURCE", "SRCNAME", "TBLNAME",
		},
		MaxEmphasisNewLines: 1,
		Log:                 log.New(os.Stderr, "org: ", 0),
	}
}

func (c *ParseConfig) isTODOKeyword(s string) (kind string, ok bool) {
	for _, k := range c.TODOKeywordsOpen {
		if k == s {
			return "open", true
		}
	}
	for _, k := range c.TODOKeywordsClosed {
		if k == s {
			return "closed", true
		}
	}
	return "", false
}

func (c *ParseConfig) isDualKeyword(key string) bool {
	return containsFold(c.DualKeywords, key)
}

func (c *ParseConfig) isParsedKeyword(key string) bool {
	return containsFold(c.ParsedKeywords, key)
}

func (c *ParseConfig) isAffiliatedKeyword(key string) bool {
	return containsFold(c.AffiliatedKeywords, key)
}

func containsFold(set []string, key string) bool {
	for _, s := range set {
		if strings.EqualFold(s, key) {
			return true
		}
	}
	return false
}

// cursor wraps the remaining input with a *ParseConfig. It is cheap to
// clone (a string header copy plus a pointer) and carries no mutable
// state of its own.
type cursor struct {
	text string
	cfg  *ParseConfig
}

func newCursor(text string, cfg *ParseConfig) cursor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return cursor{text: text, cfg: cfg}
}

// advance returns a cursor over c.text[n:], keeping the same config.
func (c cursor) advance(n int) cursor {
	return cursor{text: c.text[n:], cfg: c.cfg}
}

func (c cursor) eof() bool  { return len(c.text) == 0 }
func (c cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.text[0]
}
