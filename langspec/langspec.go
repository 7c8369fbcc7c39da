// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package langspec

import "github.com/mdhender/syntaxdb/cst"

// Token is the constraint an external lexer's token type must satisfy to
// drive a generic ParserContext. Kind is the core's opaque cst.Kind; Text
// is the token's exact source slice (empty for a zero-width synthesized
// token).
type Token interface {
	Kind() cst.Kind
	Text() string
}

// LanguageSpec is the per-language dictionary the parser context
// framework consults. It is immutable once constructed: every method is a
// pure function of its arguments (or, for the privileged-kind and
// eof-token accessors, a constant of the LanguageSpec value itself).
type LanguageSpec[Tok Token] interface {
	// KindToRaw maps a core Kind back to the language's own raw integer
	// enum, for languages that want to recover their original constant
	// from an opaque Kind (debug printing, switch statements written
	// against the language's generated constants, etc).
	KindToRaw(cst.Kind) cst.RawKind

	// TokenIsEOF reports whether tok is the synthetic end-of-file token.
	TokenIsEOF(tok Tok) bool
	// TokenIsTrivia reports whether tok should be buffered as trivia
	// (whitespace/comments) rather than consulted by grammar lookahead.
	TokenIsTrivia(tok Tok) bool
	// TokensEqual compares two tokens for the leading/trailing context
	// checks the reuse cursor performs; kind and text must both match.
	TokensEqual(a, b Tok) bool
	// PrintToken renders tok for diagnostic messages.
	PrintToken(tok Tok) string

	// WhitespaceKind is the node/token kind trivia is emitted under.
	WhitespaceKind() cst.Kind
	// ErrorKind is the token kind bump_error and emit_error_placeholder
	// use, and the node kind has_errors checks for structural error nodes.
	ErrorKind() cst.Kind
	// RootKind is the kind BuildTree wraps the whole parse under.
	RootKind() cst.Kind
	// EOFToken is the synthetic token representing end of input.
	EOFToken() Tok
}
