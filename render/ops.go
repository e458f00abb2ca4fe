// Package render: the drawing-op vocabulary.

package render

import "math"

// Op is one backend-agnostic drawing primitive. All coordinates are in
// molecule units, already transformed; backends only scale and replay.
type Op interface{ op() }

// OpList is an ordered sequence of primitives. Emission order is fixed:
// bonds ascending by bond ID, then atom labels ascending by atom ID.
type OpList []Op

// LineOp is a stroked segment.
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

// PolyOp is a filled closed polygon; vertex i is (Xs[i], Ys[i]).
type PolyOp struct {
	Xs, Ys []float64
}

// CircleOp is a filled disc.
type CircleOp struct {
	X, Y, R float64
}

// RectOp is a filled background rectangle anchored at its lower-left
// corner (min X, min Y).
type RectOp struct {
	X, Y, W, H float64
}

// TextOp is a text run centered at (X, Y). Size is the font height.
type TextOp struct {
	X, Y float64
	Text string
	Size float64
}

func (LineOp) op()   {}
func (PolyOp) op()   {}
func (CircleOp) op() {}
func (RectOp) op()   {}
func (TextOp) op()   {}

// Bounds is the tight box over every primitive in ops, in molecule units.
// Text extent is estimated from the font size. ok is false for a list
// with no geometry, and the box values are meaningless then. Backends use
// it to fit a canvas; nothing in this package depends on it.
func Bounds(ops OpList) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(x, y float64) {
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
		ok = true
	}
	for _, op := range ops {
		switch t := op.(type) {
		case LineOp:
			grow(t.X1, t.Y1)
			grow(t.X2, t.Y2)
		case PolyOp:
			for i := range t.Xs {
				grow(t.Xs[i], t.Ys[i])
			}
		case CircleOp:
			grow(t.X-t.R, t.Y-t.R)
			grow(t.X+t.R, t.Y+t.R)
		case RectOp:
			grow(t.X, t.Y)
			grow(t.X+t.W, t.Y+t.H)
		case TextOp:
			grow(t.X-t.Size, t.Y-t.Size/2)
			grow(t.X+t.Size, t.Y+t.Size/2)
		}
	}
	return minX, minY, maxX, maxY, ok
}
