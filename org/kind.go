package org

// SyntaxKind labels every green leaf (token) and internal node produced by
// the parser. The set is closed: downstream code may switch over it
// exhaustively.
type SyntaxKind uint16

const (
	// KindBad is never produced by a well-formed tree; it exists so the
	// zero value of SyntaxKind is distinguishable from a real kind.
	KindBad SyntaxKind = iota

	// Container kinds (internal green nodes).
	KindDocument
	KindSection
	KindHeadline
	KindParagraph
	KindList
	KindListItem
	KindOrgTable
	KindOrgTableStandardRow
	KindOrgTableRuleRow
	KindOrgTableCell
	KindTableEl
	KindDrawer
	KindPropertyDrawer
	KindNodeProperty
	KindDynBlock
	KindDynBlockBegin
	KindDynBlockEnd
	KindFnDef
	KindBlockBegin
	KindBlockContent // built as a single token, not a node
	KindBlockEnd
	KindSourceBlock
	KindQuoteBlock
	KindCenterBlock
	KindVerseBlock
	KindCommentBlock
	KindExampleBlock
	KindExportBlock
	KindSpecialBlock
	KindClock
	KindPlanning
	KindPlanningDeadline
	KindPlanningScheduled
	KindPlanningClosed
	KindTimestampActive
	KindTimestampInactive
	KindTimestampDiary
	KindLink
	KindLinkDescription
	KindRadioTarget
	KindTarget
	KindFnRef
	KindBold
	KindItalic
	KindUnderline
	KindStrike
	KindVerbatim
	KindCode
	KindSubscript
	KindSuperscript
	KindMacros
	KindCookie
	KindSnippet
	KindEntity
	KindInlineSrc
	KindInlineCall
	KindLineBreak
	KindLatexFragment
	KindRule
	KindComment
	KindFixedWidth
	KindKeyword
	KindAffiliatedKeyword
	KindHeadlineStars
	KindHeadlineKeyword
	KindHeadlinePriority
	KindHeadlineTitle
	KindHeadlineTags
	KindListItemIndent
	KindListItemBullet
	KindListItemCheckBox
	KindListItemCounter
	KindListItemTag
	KindSrcBlockParameters

	// Terminal token kinds (green leaves).
	KindText
	KindWhitespace
	KindNewLine
	KindBlankLine
	KindLBracket
	KindRBracket
	KindLBracket2
	KindRBracket2
	KindLCurly
	KindRCurly
	KindLCurly3
	KindRCurly3
	KindLParens
	KindRParens
	KindLAngle
	KindRAngle
	KindLAngle2
	KindRAngle2
	KindLAngle3
	KindRAngle3
	KindColon
	KindColon2
	KindStar
	KindSlash
	KindUnderscore
	KindTilde
	KindEqual
	KindPlus
	KindMinus
	KindMinus2
	KindPercent
	KindDoubleArrow
	KindHashPlus
	KindBackslash
	KindAt2
	KindPipe
)

var kindNames = map[SyntaxKind]string{
	KindBad:                 "BAD",
	KindDocument:             "DOCUMENT",
	KindSection:              "SECTION",
	KindHeadline:             "HEADLINE",
	KindParagraph:            "PARAGRAPH",
	KindList:                 "LIST",
	KindListItem:             "LIST_ITEM",
	KindOrgTable:             "ORG_TABLE",
	KindOrgTableStandardRow:  "ORG_TABLE_STANDARD_ROW",
	KindOrgTableRuleRow:      "ORG_TABLE_RULE_ROW",
	KindOrgTableCell:         "ORG_TABLE_CELL",
	KindTableEl:              "TABLE_EL",
	KindDrawer:               "DRAWER",
	KindPropertyDrawer:       "PROPERTY_DRAWER",
	KindNodeProperty:         "NODE_PROPERTY",
	KindDynBlock:             "DYN_BLOCK",
	KindDynBlockBegin:        "DYN_BLOCK_BEGIN",
	KindDynBlockEnd:          "DYN_BLOCK_END",
	KindFnDef:                "FN_DEF",
	KindBlockBegin:           "BLOCK_BEGIN",
	KindBlockContent:         "BLOCK_CONTENT",
	KindBlockEnd:             "BLOCK_END",
	KindSourceBlock:          "SOURCE_BLOCK",
	KindQuoteBlock:           "QUOTE_BLOCK",
	KindCenterBlock:          "CENTER_BLOCK",
	KindVerseBlock:           "VERSE_BLOCK",
	KindCommentBlock:         "COMMENT_BLOCK",
	KindExampleBlock:         "EXAMPLE_BLOCK",
	KindExportBlock:          "EXPORT_BLOCK",
	KindSpecialBlock:         "SPECIAL_BLOCK",
	KindClock:                "CLOCK",
	KindPlanning:             "PLANNING",
	KindPlanningDeadline:     "PLANNING_DEADLINE",
	KindPlanningScheduled:    "PLANNING_SCHEDULED",
	KindPlanningClosed:       "PLANNING_CLOSED",
	KindTimestampActive:      "TIMESTAMP_ACTIVE",
	KindTimestampInactive:    "TIMESTAMP_INACTIVE",
	KindTimestampDiary:       "TIMESTAMP_DIARY",
	KindLink:                 "LINK",
	KindLinkDescription:      "LINK_DESCRIPTION",
	KindRadioTarget:          "RADIO_TARGET",
	KindTarget:               "TARGET",
	KindFnRef:                "FN_REF",
	KindBold:                 "BOLD",
	KindItalic:               "ITALIC",
	KindUnderline:            "UNDERLINE",
	KindStrike:               "STRIKE",
	KindVerbatim:             "VERBATIM",
	KindCode:                 "CODE",
	KindSubscript:            "SUBSCRIPT",
	KindSuperscript:          "SUPERSCRIPT",
	KindMacros:               "MACROS",
	KindCookie:               "COOKIE",
	KindSnippet:              "SNIPPET",
	KindEntity:               "ENTITY",
	KindInlineSrc:            "INLINE_SRC",
	KindInlineCall:           "INLINE_CALL",
	KindLineBreak:            "LINE_BREAK",
	KindLatexFragment:        "LATEX_FRAGMENT",
	KindRule:                 "RULE",
	KindComment:              "COMMENT",
	KindFixedWidth:           "FIXED_WIDTH",
	KindKeyword:              "KEYWORD",
	KindAffiliatedKeyword:    "AFFILIATED_KEYWORD",
	KindHeadlineStars:        "HEADLINE_STARS",
	KindHeadlineKeyword:      "HEADLINE_KEYWORD",
	KindHeadlinePriority:     "HEADLINE_PRIORITY",
	KindHeadlineTitle:        "HEADLINE_TITLE",
	KindHeadlineTags:         "HEADLINE_TAGS",
	KindListItemIndent:       "LIST_ITEM_INDENT",
	KindListItemBullet:       "LIST_ITEM_BULLET",
	KindListItemCheckBox:     "LIST_ITEM_CHECK_BOX",
	KindListItemCounter:      "LIST_ITEM_COUNTER",
	KindListItemTag:          "LIST_ITEM_TAG",
	KindSrcBlockParameters:   "SRC_BLOCK_PARAMETERS",
	KindText:                 "TEXT",
	KindWhitespace:           "WHITESPACE",
	KindNewLine:              "NEW_LINE",
	KindBlankLine:            "BLANK_LINE",
	KindLBracket:             "L_BRACKET",
	KindRBracket:             "R_BRACKET",
	KindLBracket2:            "L_BRACKET2",
	KindRBracket2:            "R_BRACKET2",
	KindLCurly:               "L_CURLY",
	KindRCurly:               "R_CURLY",
	KindLCurly3:              "L_CURLY3",
	KindRCurly3:              "R_CURLY3",
	KindLParens:              "L_PARENS",
	KindRParens:              "R_PARENS",
	KindLAngle:               "L_ANGLE",
	KindRAngle:               "R_ANGLE",
	KindLAngle2:              "L_ANGLE2",
	KindRAngle2:              "R_ANGLE2",
	KindLAngle3:              "L_ANGLE3",
	KindRAngle3:              "R_ANGLE3",
	KindColon:                "COLON",
	KindColon2:               "COLON2",
	KindStar:                 "STAR",
	KindSlash:                "SLASH",
	KindUnderscore:           "UNDERSCORE",
	KindTilde:                "TILDE",
	KindEqual:                "EQUAL",
	KindPlus:                 "PLUS",
	KindMinus:                "MINUS",
	KindMinus2:               "MINUS2",
	KindPercent:              "PERCENT",
	KindDoubleArrow:          "DOUBLE_ARROW",
	KindHashPlus:             "HASH_PLUS",
	KindBackslash:            "BACKSLASH",
	KindAt2:                  "AT2",
	KindPipe:                 "PIPE",
}

// String implements fmt.Stringer for debugging and test failure output.
func (k SyntaxKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsToken reports whether k is a terminal (leaf) kind rather than a
// container kind.
func (k SyntaxKind) IsToken() bool {
	return k >= KindText || k == KindBlockContent
}

// IsLeafEvent reports whether the traversal engine (C9) should emit a
// single event for a node of this kind rather than Enter/Leave.
func (k SyntaxKind) IsLeafEvent() bool {
	switch k {
	case KindText, KindMacros, KindCookie, KindInlineCall, KindInlineSrc,
		KindClock, KindLineBreak, KindSnippet, KindRule, KindTimestampActive,
		KindTimestampInactive, KindTimestampDiary, KindLatexFragment, KindEntity,
		KindFnRef, KindTarget, KindRadioTarget:
		return true
	}
	return false
}
