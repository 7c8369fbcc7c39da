// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package syntax

// Walk visits e and, for nodes, every descendant in left-to-right order,
// each carrying its absolute offsets. visit is called once per element;
// returning false from visit on a node skips that node's children
// (tokens have no children, so the return value is ignored for them).
func Walk(e Element, visit func(Element) bool) {
	if e == nil {
		return
	}
	if !visit(e) {
		return
	}
	if n, ok := e.(*Node); ok {
		for _, c := range n.AllChildren() {
			Walk(c, visit)
		}
	}
}
