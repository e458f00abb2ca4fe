// Package render: atom labels.

package render

import (
	"strconv"

	"github.com/molvath/molvath/core"
)

// label renders the backing rectangle, the symbol text, the charge
// superscript, and radical dots for one atom.
func (r *renderer) label(a *core.Atom) OpList {
	fs := r.cfg.fontSize
	w := labelWidth(a.Symbol, fs)
	h := fs * 1.1

	ops := OpList{
		RectOp{X: a.X - w/2, Y: a.Y - h/2, W: w, H: h},
		TextOp{X: a.X, Y: a.Y, Text: a.Symbol, Size: fs},
	}

	if a.Charge != 0 {
		ops = append(ops, TextOp{
			X:    a.X + w/2 + fs*0.2,
			Y:    a.Y + h/2,
			Text: chargeText(a.Charge),
			Size: fs * 0.6,
		})
	}

	// One dot per unpaired electron, centered above the label.
	if dots := a.Multiplicity - 1; dots > 0 {
		dotR := r.cfg.lineWidth
		y := a.Y + h/2 + 2*dotR
		for i := 0; i < dots; i++ {
			x := a.X + dotR*(4*float64(i)-2*float64(dots-1))
			ops = append(ops, CircleOp{X: x, Y: y, R: dotR})
		}
	}

	return ops
}

// labelWidth approximates the rendered width of a symbol; backends with
// real font metrics stay close to this box.
func labelWidth(symbol string, fontSize float64) float64 {
	return fontSize * (0.62*float64(len(symbol)) + 0.25)
}

// chargeText formats a formal charge as superscript text: "+", "-",
// "2+", "3-".
func chargeText(c int) string {
	sign := "+"
	if c < 0 {
		sign = "-"
		c = -c
	}
	if c == 1 {
		return sign
	}

	return strconv.Itoa(c) + sign
}
