// Package layout: options and sentinel errors.

package layout

import "errors"

// ErrNilMolecule indicates Place was called without a molecule.
var ErrNilMolecule = errors.New("layout: nil molecule")

// DefaultBondLength is the target distance between bonded atoms.
const DefaultBondLength = 1.0

// Option configures a Place run.
type Option func(*config)

type config struct {
	bondLength float64
	ringAware  bool
}

func defaultConfig() config {
	return config{bondLength: DefaultBondLength, ringAware: true}
}

// WithBondLength sets the distance between bonded atoms. Non-positive
// values keep the default.
func WithBondLength(l float64) Option {
	return func(c *config) {
		if l > 0 {
			c.bondLength = l
		}
	}
}

// WithRingAware toggles circumcircle placement for ring members (default
// true). Disabled, ring atoms are chained like acyclic ones and rings do
// not close geometrically.
func WithRingAware(on bool) Option {
	return func(c *config) { c.ringAware = on }
}
