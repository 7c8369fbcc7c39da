// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package syntax_test

import (
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/mdhender/syntaxdb/cst"
	"github.com/mdhender/syntaxdb/syntax"
)

const (
	kindIdent cst.Kind = 1
	kindPlus  cst.Kind = 2
	kindAdd   cst.Kind = 3
	kindWS    cst.Kind = 4
	kindRoot  cst.Kind = 5
)

// buildTree builds "x + y" (with surrounding trivia) as a small CST, for
// the position-law and tight-span tests below.
func buildTree() *cst.CstNode {
	x := cst.NewToken(kindIdent, "x")
	ws1 := cst.NewToken(kindWS, " ")
	plus := cst.NewToken(kindPlus, "+")
	ws2 := cst.NewToken(kindWS, " ")
	y := cst.NewToken(kindIdent, "y")
	return cst.NewNode(kindRoot, []cst.Element{ws1, x, ws1, plus, ws2, y, ws1}, kindWS)
}

func TestPositionLaw(t *testing.T) {
	root := syntax.NewRoot(buildTree())
	children := root.AllChildren()
	if len(children) == 0 {
		t.Fatal("expected children")
	}
	if children[0].Start() != root.Start() {
		t.Errorf("first child start = %d, want %d", children[0].Start(), root.Start())
	}
	for i := 1; i < len(children); i++ {
		want := children[i-1].Start() + (children[i-1].End() - children[i-1].Start())
		if children[i].Start() != want {
			t.Errorf("child %d start = %d, want %d", i, children[i].Start(), want)
		}
	}
	last := children[len(children)-1]
	if last.End() != root.End() {
		t.Errorf("last child end = %d, want root end %d", last.End(), root.End())
	}
}

func TestLosslessness(t *testing.T) {
	n := buildTree()
	var sb strings.Builder
	for _, tok := range cst.Tokens(n) {
		sb.WriteString(tok.Text())
	}
	want := " x + y "
	if sb.String() != want {
		t.Errorf("concatenated leaves = %q, want %q", sb.String(), want)
	}
}

func TestFindAtTotality(t *testing.T) {
	root := syntax.NewRoot(buildTree())
	// Every offset in range, and a few out of range, must return something.
	for o := -2; o <= root.End()+2; o++ {
		if e := root.FindAt(o); e == nil {
			t.Errorf("FindAt(%d) returned nil, violating totality", o)
		}
	}
}

func TestFindAtChecked(t *testing.T) {
	root := syntax.NewRoot(buildTree())
	if _, ok := root.FindAtChecked(-1); ok {
		t.Error("FindAtChecked(-1) should report false")
	}
	if _, ok := root.FindAtChecked(root.End() + 1); ok {
		t.Error("FindAtChecked past end should report false")
	}
	if _, ok := root.FindAtChecked(0); !ok {
		t.Error("FindAtChecked(0) should report true")
	}
}

func TestTightSpanStripsTrivia(t *testing.T) {
	root := syntax.NewRoot(buildTree())
	start, end := root.TightSpan(kindWS)
	if start != 1 { // after leading single-space trivia
		t.Errorf("tight span start = %d, want 1", start)
	}
	if end != root.End()-1 { // before trailing single-space trivia
		t.Errorf("tight span end = %d, want %d", end, root.End()-1)
	}
}

func TestFindToken(t *testing.T) {
	root := syntax.NewRoot(buildTree())
	tok := root.FindToken(kindPlus)
	if tok == nil {
		t.Fatal("expected to find a plus token")
	}
	if tok.Text() != "+" {
		t.Errorf("found token text = %q, want %q", tok.Text(), "+")
	}
	if root.FindToken(999) != nil {
		t.Error("FindToken for absent kind should return nil")
	}
}

// Two independently built positioned views over structurally identical
// CSTs must report the same (kind, start, end) triples for every leaf.
func TestAllChildrenStableAcrossRebuilds(t *testing.T) {
	type span struct {
		Kind  cst.Kind
		Start int
		End   int
	}
	describe := func() []span {
		root := syntax.NewRoot(buildTree())
		var out []span
		for _, tok := range root.Tokens() {
			out = append(out, span{tok.Kind(), tok.Start(), tok.End()})
		}
		return out
	}
	if diff := deep.Equal(describe(), describe()); diff != nil {
		t.Errorf("positioned leaf spans differ across rebuilds: %v", diff)
	}
}

func TestWalkVisitsEveryElementWithOffsets(t *testing.T) {
	root := syntax.NewRoot(buildTree())
	var visited int
	lastEnd := 0
	syntax.Walk(root, func(e syntax.Element) bool {
		visited++
		if tok, ok := e.(*syntax.Token); ok {
			if tok.Start() != lastEnd {
				t.Errorf("token %q starts at %d, want %d (leaves must tile the span)", tok.Text(), tok.Start(), lastEnd)
			}
			lastEnd = tok.End()
		}
		return true
	})
	if visited != 1+len(root.AllChildren()) {
		t.Errorf("visited %d elements, want root plus its %d children", visited, len(root.AllChildren()))
	}
	if lastEnd != root.End() {
		t.Errorf("last leaf ends at %d, want %d", lastEnd, root.End())
	}
}

func TestWalkSkipsChildrenWhenVisitReturnsFalse(t *testing.T) {
	root := syntax.NewRoot(buildTree())
	var visited int
	syntax.Walk(root, func(e syntax.Element) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("visited %d elements, want only the root when visit declines", visited)
	}
}

func TestParentBackReference(t *testing.T) {
	root := syntax.NewRoot(buildTree())
	children := root.AllChildren()
	for _, c := range children {
		if tok, ok := c.(*syntax.Token); ok {
			if tok.Parent() != root {
				t.Error("child token's Parent() should point back to root")
			}
		}
	}
}
