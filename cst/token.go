// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package cst

// CstToken is a leaf of the CST: a kind plus its exact source text. The
// hash is computed once at construction and frozen; CstToken is immutable
// and safe to share across many parents (the interner relies on this).
type CstToken struct {
	kind Kind
	text string
	hash uint32
}

// NewToken constructs a token whose hash is mix(hash(kind), fnv(text)).
func NewToken(kind Kind, text string) *CstToken {
	return &CstToken{
		kind: kind,
		text: text,
		hash: Mix(kind.hash(), FNV(text)),
	}
}

func (t *CstToken) Kind() Kind      { return t.kind }
func (t *CstToken) Text() string    { return t.text }
func (t *CstToken) Hash() uint32    { return t.hash }
func (t *CstToken) TextLen() int    { return len(t.text) }
func (t *CstToken) TokenCount() int { return 1 }

// Equal reports structural equality: hash short-circuit, then kind and text.
func (t *CstToken) Equal(o *CstToken) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	return t.hash == o.hash && t.kind == o.kind && t.text == o.text
}

func (t *CstToken) String() string {
	return t.text
}
