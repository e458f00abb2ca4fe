// Package builder: options and configuration.

package builder

import "github.com/molvath/molvath/core"

// DefaultElement is the symbol the generic constructors build from.
const DefaultElement = "C"

// Option configures a Build run.
type Option func(*config)

type config struct {
	element string
	order   core.BondOrder
	place   bool
}

func defaultConfig() config {
	return config{element: DefaultElement, order: core.Single}
}

// WithElement sets the element symbol used by Chain, Ring and
// AlternatingRing (default "C"). Empty values keep the default.
func WithElement(symbol string) Option {
	return func(c *config) {
		if symbol != "" {
			c.element = symbol
		}
	}
}

// WithBondOrder sets the bond order used by Chain, Ring and Star
// (default Single). Unknown orders keep the default.
func WithBondOrder(o core.BondOrder) Option {
	return func(c *config) {
		switch o {
		case core.Single, core.Double, core.Triple, core.OrderAromatic, core.OrderCoordination:
			c.order = o
		}
	}
}

// WithPlacement toggles an automatic layout.Place run over the finished
// molecule, so Build returns drawing-ready coordinates.
func WithPlacement(on bool) Option {
	return func(c *config) { c.place = on }
}
