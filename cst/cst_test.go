// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package cst_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/mdhender/syntaxdb/cst"
)

const (
	kindIdent cst.Kind = 1
	kindPlus  cst.Kind = 2
	kindAdd   cst.Kind = 3
	kindWS    cst.Kind = 4
)

func TestTokenHashFormula(t *testing.T) {
	tok := cst.NewToken(kindIdent, "abc")
	want := cst.Mix(uint32(kindIdent), cst.FNV("abc"))
	if tok.Hash() != want {
		t.Errorf("hash = %d, want %d", tok.Hash(), want)
	}
}

func TestTokenEquality(t *testing.T) {
	a := cst.NewToken(kindIdent, "x")
	b := cst.NewToken(kindIdent, "x")
	c := cst.NewToken(kindIdent, "y")
	if !a.Equal(b) {
		t.Error("identical (kind, text) tokens should be equal")
	}
	if a.Equal(c) {
		t.Error("tokens with different text should not be equal")
	}
}

func TestNodeWidthLaw(t *testing.T) {
	x := cst.NewToken(kindIdent, "x")
	plus := cst.NewToken(kindPlus, "+")
	y := cst.NewToken(kindIdent, "y")
	n := cst.NewNode(kindAdd, []cst.Element{x, plus, y}, cst.NoTrivia)

	wantLen := x.TextLen() + plus.TextLen() + y.TextLen()
	if n.TextLen() != wantLen {
		t.Errorf("TextLen = %d, want %d", n.TextLen(), wantLen)
	}
}

func TestNodeTokenCountExcludesTrivia(t *testing.T) {
	x := cst.NewToken(kindIdent, "x")
	ws := cst.NewToken(kindWS, " ")
	y := cst.NewToken(kindIdent, "y")
	n := cst.NewNode(kindAdd, []cst.Element{x, ws, y}, kindWS)
	if n.TokenCount() != 2 {
		t.Errorf("TokenCount = %d, want 2 (trivia excluded)", n.TokenCount())
	}

	nIncl := cst.NewNode(kindAdd, []cst.Element{x, ws, y}, cst.NoTrivia)
	if nIncl.TokenCount() != 3 {
		t.Errorf("TokenCount with NoTrivia = %d, want 3", nIncl.TokenCount())
	}
}

// Two nodes built from structurally identical (but distinctly allocated)
// children must hash and compare equal.
func TestNodeStructuralEquality(t *testing.T) {
	build := func() *cst.CstNode {
		return cst.NewNode(kindAdd, []cst.Element{
			cst.NewToken(kindIdent, "x"),
			cst.NewToken(kindPlus, "+"),
			cst.NewToken(kindIdent, "y"),
		}, cst.NoTrivia)
	}
	a, b := build(), build()
	if a == b {
		t.Fatal("test setup: expected distinct allocations")
	}
	if !a.Equal(b) {
		t.Error("structurally identical nodes should be Equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("Equal nodes must hash identically (hash-equality consistency)")
	}

	c := cst.NewNode(kindAdd, []cst.Element{
		cst.NewToken(kindIdent, "x"),
		cst.NewToken(kindPlus, "+"),
		cst.NewToken(kindIdent, "z"),
	}, cst.NoTrivia)
	if a.Equal(c) {
		t.Error("nodes with different leaf text should not be Equal")
	}
}

func TestElementDiscriminantSeparatesVariants(t *testing.T) {
	// A token and a node that reduce to the same scalar shape can hash
	// identically on their own (the discriminant is folded only into a
	// parent's hash), but they must still never compare equal.
	leaf := cst.NewToken(kindIdent, "")
	empty := cst.NewNode(kindIdent, nil, cst.NoTrivia)
	if leaf.Hash() == empty.Hash() && cst.ElementEqual(leaf, empty) {
		t.Error("a token and a node must never compare equal regardless of hash collision")
	}
}

func TestHasErrors(t *testing.T) {
	const errNode cst.Kind = 100
	const errTok cst.Kind = 101

	clean := cst.NewNode(kindAdd, []cst.Element{cst.NewToken(kindIdent, "x")}, cst.NoTrivia)
	if clean.HasErrors(errNode, errTok) {
		t.Error("clean subtree should report no errors")
	}

	withErrTok := cst.NewNode(kindAdd, []cst.Element{cst.NewToken(errTok, "")}, cst.NoTrivia)
	if !withErrTok.HasErrors(errNode, errTok) {
		t.Error("subtree containing an error token should report HasErrors")
	}

	nested := cst.NewNode(kindAdd, []cst.Element{
		cst.NewNode(errNode, []cst.Element{cst.NewToken(kindIdent, "x")}, cst.NoTrivia),
	}, cst.NoTrivia)
	if !nested.HasErrors(errNode, errTok) {
		t.Error("nested error node should be found by HasErrors")
	}
}

func TestInternerDeduplicates(t *testing.T) {
	in := cst.NewInterner()
	a := in.Intern(kindIdent, "x")
	b := in.Intern(kindIdent, "x")
	if a != b {
		t.Error("repeated Intern calls with the same (kind, text) must return the same reference")
	}
	if in.Size() != 1 {
		t.Errorf("Size = %d, want 1", in.Size())
	}
	c := in.Intern(kindIdent, "y")
	if a == c {
		t.Error("different text must not share a token")
	}
	if in.Size() != 2 {
		t.Errorf("Size = %d, want 2", in.Size())
	}
	in.Clear()
	if in.Size() != 0 {
		t.Error("Clear should reset Size to 0")
	}
}

// Two structurally identical trees, walked independently, must yield the
// same flattened token sequence — checked with deep.Equal instead of a
// hand-rolled field-by-field comparison.
func TestWalkProducesEqualTokenSequencesForEqualTrees(t *testing.T) {
	build := func() []string {
		n := cst.NewNode(kindAdd, []cst.Element{
			cst.NewToken(kindIdent, "x"),
			cst.NewToken(kindPlus, "+"),
			cst.NewToken(kindIdent, "y"),
		}, cst.NoTrivia)
		var texts []string
		for _, tok := range cst.Tokens(n) {
			texts = append(texts, tok.Text())
		}
		return texts
	}
	if diff := deep.Equal(build(), build()); diff != nil {
		t.Errorf("token sequences from structurally identical trees differ: %v", diff)
	}
	other := []string{"x", "+", "z"}
	if diff := deep.Equal(build(), other); diff == nil {
		t.Error("expected a diff between the built sequence and a differing one")
	}
}

func TestWalkAndTokens(t *testing.T) {
	x := cst.NewToken(kindIdent, "x")
	plus := cst.NewToken(kindPlus, "+")
	y := cst.NewToken(kindIdent, "y")
	n := cst.NewNode(kindAdd, []cst.Element{x, plus, y}, cst.NoTrivia)

	toks := cst.Tokens(n)
	if len(toks) != 3 {
		t.Fatalf("Tokens len = %d, want 3", len(toks))
	}
	if toks[0].Text() != "x" || toks[1].Text() != "+" || toks[2].Text() != "y" {
		t.Errorf("Tokens order/content wrong: %q %q %q", toks[0].Text(), toks[1].Text(), toks[2].Text())
	}

	var visited int
	cst.Walk(n, func(cst.Element) bool {
		visited++
		return true
	})
	if visited != 4 { // node + 3 tokens
		t.Errorf("Walk visited %d elements, want 4", visited)
	}
}
