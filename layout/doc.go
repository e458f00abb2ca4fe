// Package layout assigns deterministic 2D coordinates to molecule atoms.
//
// Place walks each connected component breadth-first from a stable root
// (the lowest-ID terminal atom, else the lowest atom ID) and positions
// every atom that is not already Positioned:
//
//   - ring members go onto their ring's circumcircle, so isolated rings
//     come out as regular polygons and fused rings continue each other's
//     geometry along the shared edge (perception via rings);
//   - at branched atoms the new bond bisects the widest free angular gap
//     around the anchor;
//   - plain chains continue with an alternating ±30° deflection from the
//     incoming direction, the usual skeletal zig-zag.
//
// Atoms that already carry coordinates are fixed anchors and are never
// moved; components without anchors are laid out left to right so they do
// not overlap each other. Heavily bridged or spiro systems may still
// produce crossing bonds; that is accepted output, not an error.
//
// Place writes coordinates through the live atoms and flags the edit via
// Touch, so memoized derivations and open cursors observe the change.
// Placement is deterministic: identical molecules yield identical
// coordinates.
package layout
