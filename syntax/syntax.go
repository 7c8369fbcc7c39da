// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package syntax

import "github.com/mdhender/syntaxdb/cst"

// Element is anything a positioned view can yield as a child: either a
// *Node or a *Token, mirroring cst.Element one layer up with absolute
// offsets attached.
type Element interface {
	Start() int
	End() int
	Kind() cst.Kind
}

// Node is a positioned view over a cst.CstNode: the underlying node plus
// an optional parent back-reference and the absolute byte offset its span
// starts at.
type Node struct {
	underlying *cst.CstNode
	parent     *Node
	offset     int
}

// NewRoot returns a positioned view over n with offset 0 and no parent —
// the usual starting point for querying a freshly parsed or reused CST.
func NewRoot(n *cst.CstNode) *Node {
	return &Node{underlying: n, offset: 0}
}

func (p *Node) Start() int               { return p.offset }
func (p *Node) End() int                 { return p.offset + p.underlying.TextLen() }
func (p *Node) Kind() cst.Kind           { return p.underlying.Kind() }
func (p *Node) Parent() *Node            { return p.parent }
func (p *Node) Underlying() *cst.CstNode { return p.underlying }
func (p *Node) HasErrors(errorNodeKind, errorTokenKind cst.Kind) bool {
	return p.underlying.HasErrors(errorNodeKind, errorTokenKind)
}

// Token is a positioned view over a cst.CstToken.
type Token struct {
	underlying *cst.CstToken
	parent     *Node
	offset     int
}

func (t *Token) Start() int                { return t.offset }
func (t *Token) End() int                  { return t.offset + t.underlying.TextLen() }
func (t *Token) Kind() cst.Kind            { return t.underlying.Kind() }
func (t *Token) Text() string              { return t.underlying.Text() }
func (t *Token) Parent() *Node             { return t.parent }
func (t *Token) Underlying() *cst.CstToken { return t.underlying }

// AllChildren enumerates every direct child (token or node) left to right,
// each positioned by accumulating earlier siblings' text lengths starting
// from p's own offset.
func (p *Node) AllChildren() []Element {
	children := p.underlying.Children()
	out := make([]Element, 0, len(children))
	running := p.offset
	for _, c := range children {
		switch v := c.(type) {
		case *cst.CstToken:
			out = append(out, &Token{underlying: v, parent: p, offset: running})
		case *cst.CstNode:
			out = append(out, &Node{underlying: v, parent: p, offset: running})
		}
		running += c.TextLen()
	}
	return out
}

// Children enumerates only the direct node children, skipping tokens.
func (p *Node) Children() []*Node {
	var out []*Node
	for _, c := range p.AllChildren() {
		if n, ok := c.(*Node); ok {
			out = append(out, n)
		}
	}
	return out
}

// FindAt is total (Layer 1): it always returns an element. It recurses
// into whichever child's span contains offset; if no child's span
// contains it (offset lies outside p's own span, or p has no children),
// it returns p itself.
func (p *Node) FindAt(offset int) Element {
	for _, c := range p.AllChildren() {
		if offset >= c.Start() && offset < c.End() {
			if n, ok := c.(*Node); ok {
				return n.FindAt(offset)
			}
			return c
		}
	}
	return p
}

// FindAtChecked is the Layer 2 counterpart to FindAt: it reports false
// when offset falls outside p's own span instead of falling back to p.
func (p *Node) FindAtChecked(offset int) (Element, bool) {
	if offset < p.Start() || offset > p.End() {
		return nil, false
	}
	return p.FindAt(offset), true
}

// Tokens enumerates every leaf token under p, left to right, including
// trivia.
func (p *Node) Tokens() []*Token {
	var out []*Token
	Walk(p, func(e Element) bool {
		if t, ok := e.(*Token); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// TokensOfKind filters Tokens by kind.
func (p *Node) TokensOfKind(kind cst.Kind) []*Token {
	var out []*Token
	for _, t := range p.Tokens() {
		if t.Kind() == kind {
			out = append(out, t)
		}
	}
	return out
}

// FindToken returns the first leaf token of the given kind, or nil if
// none exists in the subtree.
func (p *Node) FindToken(kind cst.Kind) *Token {
	for _, t := range p.Tokens() {
		if t.Kind() == kind {
			return t
		}
	}
	return nil
}

// TightSpan returns the subtree's span after stripping leading and
// trailing leaf tokens of triviaKind. A subtree that is entirely trivia
// collapses to a zero-width span at its own start.
func (p *Node) TightSpan(triviaKind cst.Kind) (start, end int) {
	toks := p.Tokens()
	i := 0
	for i < len(toks) {
		if toks[i].Kind() == triviaKind {
			i++
			continue
		}
		break
	}
	j := len(toks) - 1
	for j >= 0 {
		if toks[j].Kind() == triviaKind {
			j--
			continue
		}
		break
	}
	if i > j {
		return p.Start(), p.Start()
	}
	return toks[i].Start(), toks[j].End()
}
