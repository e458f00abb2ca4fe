// Package parts manages the connected components of a molecule: partition
// queries, materialized per-component subgraph copies, and a scoped-detach
// combinator for "what if these bonds were cut" analyses.
//
// Components returns the partition over live connectivity (a detached bond
// joins nothing), each component sorted ascending and the components
// ordered by their smallest member.
// Subgraphs materializes one independent Molecule per component; the copies
// share nothing with the source.
//
// WithDetached detaches a set of bonds, runs a callback, and restores
// exactly those bonds on every exit path, including panics. Detach plus
// restore is a no-op on observable state, which makes the combinator safe
// to nest and to compose with pre-existing detachments.
//
// Splitter memoizes the partition keyed on the molecule's structural
// version, mirroring the ring perceiver's caching model.
package parts
