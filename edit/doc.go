// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

// Package edit implements the single-contiguous-replacement primitive that
// drives incremental re-lexing, subtree reuse, and damage-range derivation.
package edit
