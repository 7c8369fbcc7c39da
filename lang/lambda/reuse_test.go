// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package lambda_test

import (
	"testing"

	"github.com/mdhender/syntaxdb/lang/lambda"
)

// A localized edit leaves subtrees on either side of the damage
// reusable. A lambda body extends as far right as it can here, so the
// enclosing lambdas all straddle the edit; the subtrees that survive are
// the first lambda's body identifier (before the damage) and the final
// lambda (after it).
func TestReuseUnaffectedSubtreesAcrossInnerEdit(t *testing.T) {
	l := lambda.New()
	before := l.ParseSource("λx.x + λy.y + λz.z")
	if before.IsLexError || len(before.Diagnostics) != 0 {
		t.Fatalf("unexpected error parsing the initial source: %+v", before)
	}

	// Insert one character inside the second lambda's body ("y" -> "yy").
	after := l.ParseSource("λx.x + λy.yy + λz.z")
	if after.IsLexError || len(after.Diagnostics) != 0 {
		t.Fatalf("unexpected error reparsing the edited source: %+v", after)
	}

	if got := l.LastReuseHits(); got != 2 {
		t.Errorf("LastReuseHits() = %d, want 2 (the leading body identifier and the trailing lambda)", got)
	}

	fresh := lambda.New().ParseSource("λx.x + λy.yy + λz.z")
	if !after.Cst.Equal(fresh.Cst) {
		t.Error("the CST built with reuse must equal a from-scratch parse of the edited source")
	}
}

// Appending new content at the very end of the document changes what
// follows the last atom from "nothing" to real tokens, so the
// trailing-context check must reject reusing it even though the atom's
// own text is untouched.
func TestReuseRejectsLastAtomWhenTrailingContextChanges(t *testing.T) {
	l := lambda.New()
	before := l.ParseSource("a + b")
	if before.IsLexError || len(before.Diagnostics) != 0 {
		t.Fatalf("unexpected error parsing the initial source: %+v", before)
	}

	after := l.ParseSource("a + b + c")
	if after.IsLexError || len(after.Diagnostics) != 0 {
		t.Fatalf("unexpected error reparsing the edited source: %+v", after)
	}

	if got := l.LastReuseHits(); got != 1 {
		t.Errorf("LastReuseHits() = %d, want 1 (only the untouched leading atom \"a\")", got)
	}

	fresh := lambda.New().ParseSource("a + b + c")
	if !after.Cst.Equal(fresh.Cst) {
		t.Error("the CST built with reuse must equal a from-scratch parse of the edited source")
	}
}

// A no-op reparse of identical source matches at the very first node()
// call — the root itself, spanning the whole document — so the entire
// tree is adopted as a single subtree instead of ever descending into
// the grammar at all.
func TestReuseAdoptsWholeTreeOnIdenticalReparse(t *testing.T) {
	l := lambda.New()
	l.ParseSource("a + b + c")
	stage := l.ParseSource("a + b + c")
	if stage.IsLexError || len(stage.Diagnostics) != 0 {
		t.Fatalf("unexpected error on identical reparse: %+v", stage)
	}
	if got := l.LastReuseHits(); got != 1 {
		t.Errorf("LastReuseHits() = %d, want 1 (the whole root reused verbatim)", got)
	}
}
