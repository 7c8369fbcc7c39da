// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package lambda is a small untyped-lambda-calculus language used to
// exercise every layer of the core end to end: a hand-written lexer, a
// langspec.LanguageSpec, a recursive-descent grammar built on parsectx
// (including the mark/wrap_at left-associative + and error recovery), and
// an incremental.Language implementation that threads its own previous
// source and CstStage through package reuse on every reparse.
//
// Grammar:
//
//	expr  = atom ("+" atom)*
//	atom  = IDENT | "(" expr ")" | ("λ" | "\\") IDENT "." expr
//
// A lambda's body extends as far right as syntax allows (so
// "λx.x + y" parses as "λx.(x + y)"); parentheses are the only way to
// bound it.
package lambda
