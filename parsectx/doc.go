// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package parsectx is the recursive-descent parser framework every
// language's grammar drives: a token cursor over a positioned lexer
// output, an event buffer, error-budgeted recovery, and the node/wrap_at
// combinators that let a grammar describe tree shape without touching
// cst.CstNode directly. It is parameterized over langspec.LanguageSpec,
// so one framework drives any language's grammar, and it is where a
// reuse.Cursor gets consulted when a reparse is incremental rather than
// from scratch.
package parsectx
