// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package syntax implements the positioned view layer: an ephemeral,
// on-demand wrapper that adds absolute byte offsets to a cst.CstNode
// subtree. Offsets are never stored in the CST itself; a syntax.Node is
// cheap to create and is never cached or reused across calls.
package syntax
