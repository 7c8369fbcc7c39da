// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package event

import "github.com/mdhender/syntaxdb/cst"

// AppendSubtree flattens a finished cst.Element back into buf as the
// events that would have produced it: the inverse of BuildTree, restricted
// to a single already-built subtree. It is how the reuse cursor hands a
// prior subtree back to a parser context mid-reparse without re-running
// the grammar over it.
func AppendSubtree(buf *Buffer, e cst.Element) {
	switch v := e.(type) {
	case *cst.CstToken:
		buf.PushToken(v.Kind(), v.Text())
	case *cst.CstNode:
		buf.PushStartNode(v.Kind())
		for _, c := range v.Children() {
			AppendSubtree(buf, c)
		}
		buf.PushFinishNode()
	}
}
