// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a debug tree rendering of p to w, one element per line,
// indented by depth and annotated with each element's absolute span. It
// is meant for test failure output and editor-extension debugging, not
// for any contracted serialization format.
func Dump(w io.Writer, p *Node) {
	dump(w, p, 0)
}

func dump(w io.Writer, e Element, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := e.(type) {
	case *Node:
		fmt.Fprintf(w, "%s%d@[%d,%d)\n", indent, v.Kind(), v.Start(), v.End())
		for _, c := range v.AllChildren() {
			dump(w, c, depth+1)
		}
	case *Token:
		fmt.Fprintf(w, "%s%d@[%d,%d) %q\n", indent, v.Kind(), v.Start(), v.End(), v.Text())
	}
}
