// Package render: options and sentinel errors.

package render

import (
	"errors"

	"github.com/molvath/molvath/rings"
)

// Sentinel errors for rendering.
var (
	// ErrNilMolecule indicates Render was called without a molecule.
	ErrNilMolecule = errors.New("render: nil molecule")

	// ErrUnpositioned indicates an atom without coordinates; run layout
	// (or set coordinates explicitly) before rendering.
	ErrUnpositioned = errors.New("render: atom not positioned")
)

// Style defaults, in molecule coordinate units (layout's unit bond
// length).
const (
	DefaultBondSpacing  = 0.18
	DefaultLineWidth    = 0.05
	DefaultFontSize     = 0.5
	DefaultWedgeWidth   = 0.24
	DefaultHatchSpacing = 0.12
	DefaultInnerTrim    = 0.15
)

// Option configures a Render call.
type Option func(*config)

type config struct {
	bondSpacing  float64
	lineWidth    float64
	fontSize     float64
	wedgeWidth   float64
	hatchSpacing float64
	innerTrim    float64
	rings        *rings.Result
}

func defaultConfig() config {
	return config{
		bondSpacing:  DefaultBondSpacing,
		lineWidth:    DefaultLineWidth,
		fontSize:     DefaultFontSize,
		wedgeWidth:   DefaultWedgeWidth,
		hatchSpacing: DefaultHatchSpacing,
		innerTrim:    DefaultInnerTrim,
	}
}

// WithBondSpacing sets the offset between the lines of a double or triple
// bond. Non-positive values keep the default.
func WithBondSpacing(d float64) Option {
	return func(c *config) {
		if d > 0 {
			c.bondSpacing = d
		}
	}
}

// WithLineWidth sets the stroke width of bond lines. Non-positive values
// keep the default.
func WithLineWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.lineWidth = w
		}
	}
}

// WithFontSize sets the label font height. Non-positive values keep the
// default.
func WithFontSize(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.fontSize = s
		}
	}
}

// WithWedgeWidth sets the wide-end width of wedge and hatch bonds.
// Non-positive values keep the default.
func WithWedgeWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.wedgeWidth = w
		}
	}
}

// WithHatchSpacing sets the stripe pitch of hatch bonds and the wave
// pitch of wavy bonds. Non-positive values keep the default.
func WithHatchSpacing(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.hatchSpacing = s
		}
	}
}

// WithInnerTrim sets the fraction by which a double bond's offset line is
// shortened at ends shared with other bonds. Negative values keep the
// default; zero disables trimming.
func WithInnerTrim(f float64) Option {
	return func(c *config) {
		if f >= 0 {
			c.innerTrim = f
		}
	}
}

// WithRings supplies a precomputed ring perception, saving Render its own
// pass. The result must describe the molecule being rendered.
func WithRings(res *rings.Result) Option {
	return func(c *config) { c.rings = res }
}
