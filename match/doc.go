// Package match finds embeddings of a fragment (substructure pattern) in a
// target molecule by backtracking subgraph isomorphism with wildcard
// support.
//
// # Model
//
// A Fragment wraps its own pattern molecule plus free-site marks: a free
// atom matches any element, a free bond matches any order. Fragments have
// independent lifetime and can be run against many targets.
//
// Search validates the fragment and returns a Cursor, a pull-style iterator
// over matches. The Cursor is an explicit backtracking machine - an
// assignment stack, not a goroutine - so abandoning it is free: drop the
// reference or call Close. Context cancellation (WithContext) is honored
// between candidate assignments. Abandonment is not an error.
//
// # Semantics
//
// Fragment atoms are visited most-constrained-first (highest degree, ties
// by ascending ID), preferring atoms adjacent to the already-ordered
// prefix. Candidates are tried in ascending target-atom order, which makes
// enumeration order deterministic. A candidate must match the element
// (unless the fragment atom is free), satisfy the degree rule, and every
// pattern bond into the ordered prefix must exist in the target with equal
// order (unless the bond is free). Assignments are injective. Detached
// bonds connect nothing on either side.
//
// The degree rule depends on WithImplicitFreeSites. Enabled (the default),
// every fragment atom tolerates extra target neighbors: substructure mode.
// Disabled, degrees must be equal: the fragment describes a complete
// structure and only exact matches (up to the free-site attribute
// wildcards) are found.
//
// A yielded Match is valid only until the target mutates. The Cursor
// checks the target's structural version on every Next and refuses to
// continue after a mutation; Err reports ErrTargetMutated in that case.
package match
