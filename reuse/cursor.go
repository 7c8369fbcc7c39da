// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package reuse

import (
	"github.com/mdhender/syntaxdb/cst"
	"github.com/mdhender/syntaxdb/edit"
	"github.com/mdhender/syntaxdb/langspec"
	"github.com/mdhender/syntaxdb/syntax"

	lru "github.com/hashicorp/golang-lru/v2"
)

// rejectCacheSize bounds the per-parse memory of spans already known not
// to reuse, so a file with many small unreuseable edits near the damage
// boundary doesn't re-walk the prior tree for every failed attempt at the
// same position and kind.
const rejectCacheSize = 256

type rejectKey struct {
	pos  int
	kind cst.Kind
}

// tokenSpan is a positioned (kind, text) pair, independent of whether it
// came from the prior CST or the fresh token sequence — exactly what the
// leading/trailing context checks need to compare.
type tokenSpan struct {
	kind  cst.Kind
	text  string
	start int
	end   int
}

// Cursor answers, for a parser context mid-reparse, whether a node it is
// about to build can be adopted verbatim from the prior parse instead of
// reparsed. It is constructed once per incremental reparse and consulted
// by every node() call parsectx makes.
type Cursor[Tok langspec.Token] struct {
	priorRoot  *syntax.Node
	priorDiags []langspec.Diagnostic
	oldTokens  []tokenSpan
	newTokens  []tokenSpan
	ed         edit.Edit
	rejected   *lru.Cache[rejectKey, struct{}]
	hits       int
}

// NewCursor builds a reuse cursor from the prior parse's CST and
// diagnostics, the edit that invalidated part of it, and the freshly
// re-lexed token sequence (including trivia) for the new document. spec
// is consulted only to recognize the synthetic EOF token, which the CST
// never records (a grammar's root never bumps it) — so it is excluded
// from the fresh span list, keeping "nothing follows" representable as
// nil on both the old and new side instead of nil-vs-EOF looking like a
// mismatch at every untouched document tail.
func NewCursor[Tok langspec.Token](spec langspec.LanguageSpec[Tok], priorCst *cst.CstNode, priorDiags []langspec.Diagnostic, ed edit.Edit, newTokens []Tok) *Cursor[Tok] {
	cache, _ := lru.New[rejectKey, struct{}](rejectCacheSize)
	root := syntax.NewRoot(priorCst)
	old := make([]tokenSpan, 0, len(root.Tokens()))
	for _, t := range root.Tokens() {
		old = append(old, tokenSpan{kind: t.Kind(), text: t.Text(), start: t.Start(), end: t.End()})
	}
	fresh := make([]tokenSpan, 0, len(newTokens))
	running := 0
	for _, tok := range newTokens {
		n := len(tok.Text())
		if !spec.TokenIsEOF(tok) {
			fresh = append(fresh, tokenSpan{kind: tok.Kind(), text: tok.Text(), start: running, end: running + n})
		}
		running += n
	}
	return &Cursor[Tok]{
		priorRoot:  root,
		priorDiags: priorDiags,
		oldTokens:  old,
		newTokens:  fresh,
		ed:         ed,
		rejected:   cache,
	}
}

// Hits reports how many subtrees this cursor has successfully handed back
// to the parser context so far.
func (c *Cursor[Tok]) Hits() int { return c.hits }

// TryReuse attempts to adopt a prior subtree of kind expectedKind whose
// new-document span begins exactly at newCursorPos. It reports the
// adopted subtree, the diagnostics (re-offset into new coordinates) that
// fell within its old span, and whether reuse succeeded.
func (c *Cursor[Tok]) TryReuse(expectedKind cst.Kind, newCursorPos int) (*cst.CstNode, []langspec.Diagnostic, bool) {
	key := rejectKey{pos: newCursorPos, kind: expectedKind}
	if c.rejected != nil {
		if _, known := c.rejected.Get(key); known {
			return nil, nil, false
		}
	}
	node, diags, ok := c.tryReuse(expectedKind, newCursorPos)
	if !ok && c.rejected != nil {
		c.rejected.Add(key, struct{}{})
	}
	return node, diags, ok
}

func (c *Cursor[Tok]) tryReuse(expectedKind cst.Kind, newCursorPos int) (*cst.CstNode, []langspec.Diagnostic, bool) {
	var oldStart int
	after := false
	switch {
	case newCursorPos < c.ed.Start:
		oldStart = newCursorPos
	case newCursorPos >= c.ed.NewEnd():
		oldStart = newCursorPos - c.ed.Displacement()
		after = true
	default:
		// Position falls inside the edit's own replacement text: nothing
		// old can possibly begin there.
		return nil, nil, false
	}

	node, ok := locateOldSubtree(c.priorRoot, oldStart, expectedKind)
	if !ok {
		return nil, nil, false
	}
	oldEnd := node.End()
	if !after && oldEnd > c.ed.Start {
		// Candidate straddles the damage range.
		return nil, nil, false
	}

	if !c.contextMatches(precedingOld(c.oldTokens, oldStart), precedingNew(c.newTokens, newCursorPos)) {
		return nil, nil, false
	}
	newEnd := newCursorPos + node.Underlying().TextLen()
	if !c.contextMatches(followingOld(c.oldTokens, oldEnd), followingNew(c.newTokens, newEnd)) {
		return nil, nil, false
	}

	shift := newCursorPos - oldStart
	diags := diagnosticsWithin(c.priorDiags, oldStart, oldEnd, shift)
	c.hits++
	return node.Underlying(), diags, true
}

// contextMatches compares two optional token spans for kind-and-text
// equality. Both absent (start-of-file or end-of-file, on either side) is
// itself a match: the canonical sentinel.
func (c *Cursor[Tok]) contextMatches(a, b *tokenSpan) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.kind == b.kind && a.text == b.text
}

// locateOldSubtree finds, in the prior tree, a node of kind expectedKind
// whose span begins exactly at oldStart. It narrows to the deepest
// element containing oldStart, then walks parent links while each
// ancestor's own start still equals oldStart (true exactly when the
// element is first, transitively, among its parent's children).
func locateOldSubtree(root *syntax.Node, oldStart int, expectedKind cst.Kind) (*syntax.Node, bool) {
	if oldStart < root.Start() || oldStart > root.End() {
		return nil, false
	}
	e := root.FindAt(oldStart)
	var node *syntax.Node
	switch v := e.(type) {
	case *syntax.Token:
		if v.Start() != oldStart {
			return nil, false
		}
		node = v.Parent()
	case *syntax.Node:
		if v.Start() != oldStart {
			return nil, false
		}
		node = v
	default:
		return nil, false
	}
	for node != nil && node.Start() == oldStart {
		if node.Kind() == expectedKind {
			return node, true
		}
		node = node.Parent()
	}
	return nil, false
}

func precedingOld(tokens []tokenSpan, pos int) *tokenSpan {
	for i := range tokens {
		if tokens[i].end == pos {
			return &tokens[i]
		}
	}
	return nil
}

func followingOld(tokens []tokenSpan, pos int) *tokenSpan {
	for i := range tokens {
		if tokens[i].start == pos {
			return &tokens[i]
		}
	}
	return nil
}

func precedingNew(tokens []tokenSpan, pos int) *tokenSpan {
	return precedingOld(tokens, pos)
}

func followingNew(tokens []tokenSpan, pos int) *tokenSpan {
	return followingOld(tokens, pos)
}

// diagnosticsWithin returns the diagnostics wholly contained in [start,
// end), re-expressed in new-document coordinates by adding shift.
func diagnosticsWithin(diags []langspec.Diagnostic, start, end, shift int) []langspec.Diagnostic {
	var out []langspec.Diagnostic
	for _, d := range diags {
		if d.Start >= start && d.End <= end {
			out = append(out, langspec.Diagnostic{
				Message: d.Message,
				Start:   d.Start + shift,
				End:     d.End + shift,
			})
		}
	}
	return out
}
