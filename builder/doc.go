// Package builder assembles molecules from declarative tables and named
// topologies.
//
// Build is the single entry point: it creates a fresh core.Molecule,
// resolves the builder options, and applies the given constructors in
// order. Constructors compose - each appends its own atoms and bonds, so
// Build(nil, nil, builder.Ring(6), builder.Chain(3)) yields a six-ring
// plus a separate three-chain. With WithPlacement(true) the finished
// molecule is run through layout.Place, so every atom carries drawing
// coordinates.
//
// FromTables is the bulk entry used by file codecs: parallel atom and
// bond tables with positional indices, mapped onto issued atom IDs in
// table order. The named constructors (Chain, Ring, AlternatingRing,
// Benzene, Naphthalene, Biphenyl, Star) cover common fixtures. Chain,
// Ring and AlternatingRing build from the configured element and bond
// order; the aromatic fixtures are carbon by definition and emit their
// Kekulé alternation explicitly, leaving delocalization to ring
// perception.
//
// All constructors are deterministic: equal inputs and call order yield
// identical molecules, atom by atom and bond by bond. They validate
// early, return sentinel errors, and never panic.
package builder
