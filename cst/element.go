// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package cst

// discriminant values are folded into a node's hash ahead of each child's
// own hash, so a token and a node that happen to hash identically on their
// own terms cannot collide once mixed into a parent.
const (
	tokenDiscriminant uint32 = 0x544f4b4e // "TOKN"
	nodeDiscriminant  uint32 = 0x4e4f4445 // "NODE"
)

// Element is the tagged union of {Token, Node}: anything that can appear as
// a CstNode child. The only implementations are *CstToken and *CstNode;
// the interface is sealed via the unexported discriminant method.
type Element interface {
	Kind() Kind
	Hash() uint32
	TextLen() int
	TokenCount() int

	discriminant() uint32
}

func (t *CstToken) discriminant() uint32 { return tokenDiscriminant }
func (n *CstNode) discriminant() uint32  { return nodeDiscriminant }

// ElementEqual reports whether a and b are structurally equal, dispatching
// on their concrete variant. Two elements of different variants are never
// equal even if their hashes collide.
func ElementEqual(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *CstToken:
		bv, ok := b.(*CstToken)
		return ok && av.Equal(bv)
	case *CstNode:
		bv, ok := b.(*CstNode)
		return ok && av.Equal(bv)
	default:
		return false
	}
}
