// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package cst

// CstNode is an interior element of the CST: a kind plus an ordered,
// frozen sequence of children (each either a token or another node). Text
// length, structural hash, and token count are computed once at
// construction and cached; none of the three is ever recomputed.
type CstNode struct {
	kind       Kind
	children   []Element
	textLen    int
	hash       uint32
	tokenCount int
}

// NewNode builds a node from kind and children, folding text length, hash,
// and token count in one pass. triviaKind, if not NoTrivia, is excluded
// from the cached token count (a node's TokenCount then answers "how
// many non-trivia leaves does this subtree cover").
func NewNode(kind Kind, children []Element, triviaKind Kind) *CstNode {
	n := &CstNode{
		kind:     kind,
		children: children,
		hash:     Mix(Seed, kind.hash()),
	}
	for _, c := range children {
		n.textLen += c.TextLen()
		n.hash = Mix(n.hash, c.discriminant())
		n.hash = Mix(n.hash, c.Hash())
		if tok, ok := c.(*CstToken); ok {
			if triviaKind == NoTrivia || tok.kind != triviaKind {
				n.tokenCount++
			}
		} else {
			n.tokenCount += c.TokenCount()
		}
	}
	return n
}

func (n *CstNode) Kind() Kind          { return n.kind }
func (n *CstNode) Children() []Element { return n.children }
func (n *CstNode) TextLen() int        { return n.textLen }
func (n *CstNode) Hash() uint32        { return n.hash }
func (n *CstNode) TokenCount() int     { return n.tokenCount }

// HasErrors reports whether the subtree contains at least one element of
// errorNodeKind or errorTokenKind, recursing through every node child.
func (n *CstNode) HasErrors(errorNodeKind, errorTokenKind Kind) bool {
	if n.kind == errorNodeKind {
		return true
	}
	for _, c := range n.children {
		switch v := c.(type) {
		case *CstToken:
			if v.kind == errorTokenKind {
				return true
			}
		case *CstNode:
			if v.HasErrors(errorNodeKind, errorTokenKind) {
				return true
			}
		}
	}
	return false
}

// Equal reports structural equality: hash short-circuit, then kind and a
// pairwise comparison of children. Hashing is non-cryptographic, so the
// short-circuit is a fast reject only, never a substitute for this check.
func (n *CstNode) Equal(o *CstNode) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.hash != o.hash || n.kind != o.kind || len(n.children) != len(o.children) {
		return false
	}
	for i := range n.children {
		if !ElementEqual(n.children[i], o.children[i]) {
			return false
		}
	}
	return true
}

func (n *CstNode) String() string {
	s := ""
	for _, c := range n.children {
		switch v := c.(type) {
		case *CstToken:
			s += v.String()
		case *CstNode:
			s += v.String()
		}
	}
	return s
}
