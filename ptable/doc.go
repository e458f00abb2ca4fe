// Package ptable provides the periodic-table data the molecule core needs:
// element symbols, atomic numbers, and the standard valence model used to
// compute free valency.
//
// The data is intentionally small and immutable. Default() returns the
// built-in table; New(opts...) derives a customized copy (for example an
// unusual valence list for a polymer pseudo-atom) without touching the
// shared default.
//
// Charge correction follows the usual organic-chemistry bookkeeping:
//
//   - a positive charge on a lone-pair bearer (N, O, P, S, halogens, …)
//     raises the usable valence by the charge (N⁺ binds four),
//     while on other elements it lowers it (C⁺ binds three);
//   - a negative charge lowers the usable valence (O⁻ binds one),
//     except on hydride acceptors (B, Al) where it raises it (B⁻ binds four).
//
// Unknown symbols resolve to an empty valence list; free-valency queries on
// them report the occupied valence as negative rather than failing, which is
// the advisory-signal behavior the core wants for exotic or placeholder
// atoms.
package ptable
