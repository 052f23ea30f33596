package org

import "fmt"

// Parsing never fails: malformed input degrades to plain text rather
// than producing a user-facing error. The only failure mode left is a
// programmer error — a parser that built a tree violating its own
// losslessness guard — and that is reported by panicking rather than
// by a returned error, as NodeBuilder.build in builder.go does.
// assertf is the shared helper for that style of internal check.
//
// Recoverable parse conditions (an unterminated block, an unknown
// entity) are not reported through this type at all: they go straight
// to ParseConfig.Log (cursor.go) at the point they're detected. A document only ever has one
// consumer, the parse tree it produces, so there is no caller left to
// hand a collected error list to once parsing returns.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("org: internal invariant violated: "+format, args...))
	}
}
