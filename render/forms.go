// Package render: stereo bond forms.

package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/molvath/molvath/geo"
)

// wavySegsPerWave is the polyline resolution of one full wave.
const wavySegsPerWave = 8

// wedge renders a filled triangle: narrow at the bond's first stored
// endpoint (the stereocenter), wide at the second.
func (r *renderer) wedge(a1, a2 r2.Vec) OpList {
	half := r.cfg.wedgeWidth / 2
	_, wl := geo.FindParallel(a1, a2, half)
	_, wr := geo.FindParallel(a1, a2, -half)

	return OpList{PolyOp{
		Xs: []float64{a1.X, wl.X, wr.X},
		Ys: []float64{a1.Y, wl.Y, wr.Y},
	}}
}

// hatch renders perpendicular stripes growing from the narrow end to the
// wide end. Stripe count follows bond length, so density stays even
// across bond lengths.
func (r *renderer) hatch(a1, a2 r2.Vec, w float64) OpList {
	n := int(math.Round(geo.Dist(a1, a2) / r.cfg.hatchSpacing))
	if n < 2 {
		n = 2
	}
	perp := geo.Unit(geo.Perp(r2.Sub(a2, a1)))

	ops := make(OpList, 0, n)
	for i := 0; i < n; i++ {
		t := (float64(i) + 0.5) / float64(n)
		half := t * r.cfg.wedgeWidth / 2
		c := geo.Lerp(a1, a2, t)
		ops = append(ops, line(
			r2.Add(c, r2.Scale(half, perp)),
			r2.Sub(c, r2.Scale(half, perp)),
			w,
		))
	}

	return ops
}

// wavy renders an undefined-stereo bond as a sine polyline alternating
// sides of the bond axis, approximated with short segments.
func (r *renderer) wavy(a1, a2 r2.Vec, w float64) OpList {
	waves := int(math.Round(geo.Dist(a1, a2) / (2 * r.cfg.hatchSpacing)))
	if waves < 2 {
		waves = 2
	}
	segs := waves * wavySegsPerWave
	amp := r.cfg.wedgeWidth / 2
	perp := geo.Unit(geo.Perp(r2.Sub(a2, a1)))

	ops := make(OpList, 0, segs)
	prev := a1
	for i := 1; i <= segs; i++ {
		p := a2
		if i < segs {
			t := float64(i) / float64(segs)
			off := amp * math.Sin(2*math.Pi*float64(waves)*t)
			p = r2.Add(geo.Lerp(a1, a2, t), r2.Scale(off, perp))
		}
		ops = append(ops, line(prev, p, w))
		prev = p
	}

	return ops
}
