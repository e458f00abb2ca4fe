// Package core defines the central Molecule, Atom, and Bond types and the
// primitives for building, querying, and cloning molecular graphs.
//
// A Molecule is a mutable, attributed, undirected simple graph: atoms carry
// element symbol, formal charge, spin multiplicity, and optional coordinates;
// bonds carry order and stereo. Self-loops are rejected, at most one bond may
// join an unordered atom pair, and disconnected molecules are valid.
//
// # Identity
//
// Atom and bond IDs are issued by per-Molecule counters, increase
// monotonically, and are never reused within a Molecule's lifetime, so a
// removed atom's ID stays dangling-safe forever. Every accessor that returns
// a collection sorts it by ascending ID, which makes the algorithms derived
// from this package deterministic.
//
// # Mutation and caching
//
// Molecule is single-threaded by contract and performs no locking; callers
// serialize access. Structural mutation (add/remove/detach/restore) bumps an
// internal version counter, exposed via Version, which downstream packages
// use to memoize derived results. Field edits on retrieved atoms or bonds
// (coordinates, charge, props) do not bump the version; call Touch after
// such edits when cached derivations must refresh.
//
// # Detachment
//
// DetachBond temporarily removes a bond from adjacency without deleting it,
// with stack discipline: RestoreDetached reinstates all detached bonds in
// reverse order, RestoreLast pops only the most recent ones so nested
// scopes compose. Connectivity queries (Neighbors, Degree, IsConnected)
// reflect detachment; Bonds, BondCount, and valence queries do not, because
// detachment is a connectivity device, not a chemical edit.
//
// # Chemistry
//
// FreeValency reports the remaining bonding capacity of an atom under the
// smallest standard valence (charge-corrected via ptable) that covers its
// occupied valence. Overbonding is reported as a negative number, never as
// an error; CheckChemistry aggregates such findings for callers that want
// to warn.
package core
