// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package lambda

import (
	"fmt"

	"github.com/mdhender/syntaxdb/cst"
)

// langSpec is this language's langspec.LanguageSpec dictionary.
type langSpec struct{}

func (langSpec) KindToRaw(k cst.Kind) cst.RawKind { return cst.RawKind(k) }

func (langSpec) TokenIsEOF(t Token) bool    { return t.kind == KindEOF }
func (langSpec) TokenIsTrivia(t Token) bool { return t.kind == KindWhitespace }
func (langSpec) TokensEqual(a, b Token) bool {
	return a.kind == b.kind && a.text == b.text
}
func (langSpec) PrintToken(t Token) string {
	if t.kind == KindEOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.text)
}

func (langSpec) WhitespaceKind() cst.Kind { return KindWhitespace }
func (langSpec) ErrorKind() cst.Kind      { return KindError }
func (langSpec) RootKind() cst.Kind       { return KindRoot }
func (langSpec) EOFToken() Token          { return Token{kind: KindEOF} }
