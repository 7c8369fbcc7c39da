// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package event

import (
	"github.com/mdhender/syntaxdb/cerrs"
	"github.com/mdhender/syntaxdb/cst"
)

type frame struct {
	kind     cst.Kind
	children []cst.Element
}

// BuildTree replays a balanced event stream into a single cst.CstNode.
// rootKind names the kind to synthesize a wrapping root under if the
// stream does not already reduce to a single outer node; triviaKind (or
// cst.NoTrivia) is forwarded to every cst.NewNode call so token counts
// exclude trivia consistently throughout the tree. interner, if non-nil,
// is used to deduplicate every Token event's leaf instead of allocating a
// fresh *cst.CstToken each time.
//
// BuildTree panics (a language/grammar bug, not an input error) if the
// stream is unbalanced, or if it already wraps itself in one outer frame
// whose kind does not match rootKind.
func BuildTree(events []Event, rootKind, triviaKind cst.Kind, interner *cst.Interner) *cst.CstNode {
	stack := []frame{{}} // index 0 is a synthetic accumulator, its kind is unused
	for _, ev := range events {
		switch ev.Tag {
		case Tombstone:
			// never filled; skip silently
		case StartNode:
			stack = append(stack, frame{kind: ev.NodeKind})
		case Token:
			var tok *cst.CstToken
			if interner != nil {
				tok = interner.Intern(ev.TokenKind, ev.Text)
			} else {
				tok = cst.NewToken(ev.TokenKind, ev.Text)
			}
			top := len(stack) - 1
			stack[top].children = append(stack[top].children, tok)
		case FinishNode:
			if len(stack) <= 1 {
				panic(cerrs.ErrUnbalancedEventStream)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node := cst.NewNode(top.kind, top.children, triviaKind)
			parent := len(stack) - 1
			stack[parent].children = append(stack[parent].children, node)
		default:
			panic(cerrs.ErrUnknownEvent)
		}
	}
	if len(stack) != 1 {
		panic(cerrs.ErrUnbalancedEventStream)
	}

	top := stack[0]
	if len(top.children) == 1 {
		// The stream already wraps everything in one outer StartNode/
		// FinishNode pair; use it instead of double-wrapping. A kind
		// disagreement between that frame and rootKind means the grammar
		// and its caller are out of sync, which is fatal by policy.
		if n, ok := top.children[0].(*cst.CstNode); ok {
			if n.Kind() != rootKind {
				panic(cerrs.ErrRootKindMismatch)
			}
			return n
		}
	}
	return cst.NewNode(rootKind, top.children, triviaKind)
}
