// Package geo holds the small 2D computational-geometry kit shared by the
// layout and render packages: parallel offsets, side-of-line tests, segment
// clipping, and angle helpers over gonum's r2 vectors.
//
// Conventions: the coordinate system is the molecule's drawing plane,
// angles are radians measured counterclockwise from +X, and Side uses the
// sign of the 2D cross product with an exact-zero collinear case (callers
// rely on exact ties, so no epsilon is applied).
//
// Degenerate inputs (zero-length segments, empty polygons) return their
// inputs unchanged instead of producing NaN.
package geo
