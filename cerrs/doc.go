// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package cerrs defines constant error types using a custom Error string type.
// It centralizes the fatal, programmer-facing errors used throughout the
// module — malformed event streams, tombstone misuse, reactive-graph
// misuse — as opposed to recoverable diagnostics, which are ordinary
// values, not errors. The Error type supports comparison via errors.Is().
package cerrs
