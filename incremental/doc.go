// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package incremental wires a language's parse_source/to_ast pair onto
// package reactive's Signal/Memo primitives: ParserDb owns one source
// signal, a cst_memo derived from it, and a term_memo derived from that.
// Backdating at each stage means setting the source to its current value
// skips the reparse entirely, and a reparse that doesn't change the
// resulting AST (structurally) leaves every downstream consumer believing
// nothing happened.
package incremental
