// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package reuse implements the damage-aware subtree reuse cursor: given a
// prior CST, the edit that invalidated part of it, and the freshly
// re-lexed token sequence, it answers whether a parser context building a
// node of a given kind at the current position can adopt a prior subtree
// verbatim instead of re-parsing it.
//
// A design convention this package depends on: trivia between two sibling
// nodes is emitted by the parser context into their enclosing node,
// between the two siblings, never as leading children of the node that
// follows (package parsectx flushes pending trivia before each StartNode
// it emits). That keeps every node's start
// offset aligned with its first real token, which is what makes "begins
// exactly at the current position" a simple offset comparison instead of
// a tight-span computation on every candidate.
package reuse
