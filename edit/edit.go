// Copyright (c) 2026 The syntaxdb Authors. All rights reserved.

package edit

// Edit describes one contiguous replacement of source bytes: OldLen bytes
// starting at Start are replaced by NewLen bytes. Edits compose; a peer
// rebasing an edit against one it has already applied only needs to
// transform Start.
type Edit struct {
	Start  int
	OldLen int
	NewLen int
}

// OldEnd is the exclusive end of the replaced range in old-document
// coordinates.
func (e Edit) OldEnd() int { return e.Start + e.OldLen }

// NewEnd is the exclusive end of the replacement in new-document
// coordinates.
func (e Edit) NewEnd() int { return e.Start + e.NewLen }

// Displacement is how much a byte offset strictly after the damage range
// shifts between old and new coordinates.
func (e Edit) Displacement() int { return e.NewLen - e.OldLen }

// DamageRange is the byte interval of the old document this edit
// invalidates: [Start, OldEnd). Subtree reuse may only consider subtrees
// disjoint from it.
func (e Edit) DamageRange() (start, end int) { return e.Start, e.OldEnd() }

// Rebase transforms e as if it had been recorded against a document that
// already has prior applied to it: only e.Start shifts, by prior's
// displacement, when e starts at or after prior's damage range. Edits
// that touch the same region are not composable this way; callers owning
// concurrent edit streams (peers, in the reuse-cursor sense) must not
// rebase across overlapping damage.
func (e Edit) Rebase(prior Edit) Edit {
	if e.Start >= prior.OldEnd() {
		e.Start += prior.Displacement()
	}
	return e
}

// ExpandedDamage returns the damage range widened by contextExpand bytes
// on each side (clamped to documentLen), the minimum re-lex window an
// external lexer with bounded lookback needs to retokenize correctly.
func (e Edit) ExpandedDamage(contextExpand, documentLen int) (start, end int) {
	start = e.Start - contextExpand
	if start < 0 {
		start = 0
	}
	end = e.NewEnd() + contextExpand
	if end > documentLen {
		end = documentLen
	}
	return start, end
}
