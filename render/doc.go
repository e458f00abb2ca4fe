// Package render turns a positioned molecule into renderer-agnostic
// drawing operations.
//
// Render is a pure function: it never mutates the molecule and emits a
// flat OpList of value-type primitives (LineOp, PolyOp, CircleOp, RectOp,
// TextOp) in a fixed order - bonds ascending by bond ID, then atom labels
// ascending by atom ID. Identical molecule state yields a byte-identical
// op list, so callers may diff or cache output. Backends (render/svg,
// render/raster, or any external canvas) replay the list in order with no
// hidden state.
//
// Bond forms follow standard skeletal conventions: plain single lines,
// filled wedge triangles and interpolated hatch stripes for stereo bonds,
// a sine-approximated wavy line for undefined stereo, parallel offset
// lines for double and triple bonds. The side of a double bond's second
// line is decided by ring content first, then neighbor positions; exact
// ties fall back to the symmetric two-line form, and reversing a bond's
// stored endpoint order never changes the drawn geometry. Aromatic-order
// bonds inside a perceived ring draw as doubles on the ring side;
// outside any ring they draw as plain lines. Coordination bonds draw as
// plain lines. Detached bonds still exist and are drawn.
//
// Non-carbon atoms - and carbons that are charged, radical, or isolated -
// get a text label over a background rectangle, with charge superscripts
// and radical dots; bond ends touching a labeled atom are clipped back so
// lines do not run through the text.
//
// All style values (line width, bond spacing, font size) are in molecule
// coordinate units and default to proportions of the unit bond length
// produced by layout.
package render
