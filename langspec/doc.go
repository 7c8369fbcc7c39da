// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package langspec defines the dictionary every language implements to
// drive the generic parser context (package parsectx): trivia and EOF
// classification, token equality and printing, and the three privileged
// kinds (whitespace, error, root). It also defines the shared Diagnostic
// and CstStage shapes every language's parse_source returns, so that no
// language has to define its own diagnostic plumbing.
package langspec
