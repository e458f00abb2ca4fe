// Package molvath is your in-memory workbench for building, analyzing,
// laying out, and drawing molecules — from atoms and bonds to ring
// perception, substructure search and 2D depiction.
//
// 🚀 What is molvath?
//
//	A deterministic, single-threaded-by-contract molecular-graph engine:
//		• Core primitives: atoms, bonds, charges, stereo marks, detachable bonds
//		• Chemistry queries: valence bookkeeping, free sites, Hill formulas
//		• Ring perception: SSSR-style minimal cycle basis + aromaticity flags
//		• Fragments & search: subgraph matching with free-site wildcards
//		• Layout: ring-template + chain-walk 2D coordinate generation
//		• Depiction: backend-agnostic draw ops → SVG (svgo) or PNG (gg)
//		• Construction: chains, rings, Kekulé aromatics, stars, bulk tables
//		• Catalog: badger-backed isomorphism-deduplicated molecule library
//
// ✨ Why choose molvath?
//
//   - Predictable – every operation is deterministic, byte for byte
//   - Explicit – no implicit hydrogens, no hidden normalization passes
//   - Honest errors – sentinel errors for branching, wrapped with context
//   - Composable – each stage feeds the next through plain values
//
// Under the hood, everything is organized under focused subpackages:
//
//	ptable/  — element data: valences, charge corrections
//	core/    — Molecule, Atom, Bond; mutation, queries, cloning
//	geo/     — small 2D vector helpers shared by layout and render
//	rings/   — minimal cycle basis and aromaticity perception
//	parts/   — connected components and fragment extraction
//	match/   — substructure search cursors over fragments
//	layout/  — 2D coordinate generation
//	render/  — draw-op emission; svg/ and raster/ transcribe it
//	builder/ — declarative molecule construction
//	catalog/ — persistent deduplicated molecule store
//
// Quick ASCII example:
//
//	      C───C
//	     /     \
//	    C       C       a benzene ring: six carbons, with the
//	     \     /        builder supplying the alternating
//	      C───C         single/double Kekulé pattern
//
// Dive into the package docs for the full pipeline: build → perceive →
// lay out → render → catalog.
//
//	go get github.com/molvath/molvath
package molvath
