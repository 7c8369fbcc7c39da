// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package langspec

import (
	"fmt"

	"github.com/mdhender/syntaxdb/cst"
)

// Diagnostic is a single parse diagnostic: a message and the source byte
// range it applies to. Any offending-token detail a grammar wants to
// surface is already folded into Message (via LanguageSpec.PrintToken) by
// the time a Diagnostic is recorded, so Diagnostic itself stays a plain
// comparable value — the normalized form the memo-equality boundary in
// package incremental requires.
type Diagnostic struct {
	Message string
	Start   int
	End     int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Start, d.End, d.Message)
}

// CstStage bundles a parsed CST with its diagnostics and a lex-error flag.
// When IsLexError is true, Diagnostics is non-empty and Cst is a minimal
// valid tree of the language's root kind.
type CstStage struct {
	Cst         *cst.CstNode
	Diagnostics []Diagnostic
	IsLexError  bool
}

// Equal implements the structural equality CstStage needs to gate the
// incremental pipeline's backdating: CST hash-and-structure equality,
// plus an exact diagnostics slice match and a matching lex-error flag.
func (s CstStage) Equal(o CstStage) bool {
	if s.IsLexError != o.IsLexError {
		return false
	}
	if (s.Cst == nil) != (o.Cst == nil) {
		return false
	}
	if s.Cst != nil && !s.Cst.Equal(o.Cst) {
		return false
	}
	if len(s.Diagnostics) != len(o.Diagnostics) {
		return false
	}
	for i := range s.Diagnostics {
		if s.Diagnostics[i] != o.Diagnostics[i] {
			return false
		}
	}
	return true
}
