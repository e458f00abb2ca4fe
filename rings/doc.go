// Package rings perceives the cycle structure of a molecule: the smallest
// set of smallest rings (SSSR), the underlying fundamental cycle basis, and
// aromaticity marking.
//
// # Algorithm
//
// Per connected component a BFS spanning tree is built from the lowest atom
// ID; every non-tree bond closes one fundamental cycle, and the cycles of
// all components form a basis of the cycle space. The basis is then reduced:
// a basis cycle is replaced whenever the symmetric difference of it with up
// to WithMaxCombine-1 other basis cycles yields a strictly better simple
// cycle (smaller size, then smaller atom-ID sum). Each replacement keeps the
// basis linearly independent, so the reduced basis is an SSSR candidate of
// exactly BondCount - AtomCount + Components rings.
//
// The reduction is bounded: after WithMaxAttempts candidate evaluations the
// search stops and the current basis is returned with Result.Truncated set.
// A truncated result is a valid cycle basis whose rings may not all be
// minimal; it is never an error.
//
// Perception runs over live connectivity: detached bonds do not close rings.
//
// # Determinism
//
// Spanning trees grow in ascending atom-ID order, fundamental cycles are
// generated in ascending bond-ID order, reduction scans candidates in a
// fixed order, and the output set is ordered by (size, atom-ID sum,
// lexicographic atom sequence). Identical molecule state always yields an
// identical Result.
//
// Perceiver wraps Perceive with version-keyed memoization: results are
// recomputed only after the molecule's structural version changes.
package rings
