// Package builder: the Build orchestrator.

package builder

import (
	"fmt"

	"github.com/molvath/molvath/core"
	"github.com/molvath/molvath/layout"
)

// Constructor appends one deterministic piece of topology to the molecule
// under construction. Implementations validate their parameters before
// touching the molecule, return sentinel errors, and never panic.
type Constructor func(m *core.Molecule, cfg config) error

// Build creates a molecule with the given core options, resolves the
// builder configuration from bopts, and applies the constructors in call
// order. The first constructor error aborts the build and nothing is
// returned. With WithPlacement(true) the finished molecule is laid out
// before returning.
//
// Determinism: equal options and constructor order produce identical
// molecules, atom by atom and bond by bond.
// Complexity: sum of the constructor costs plus the optional layout run.
func Build(mopts []core.Option, bopts []Option, cons ...Constructor) (*core.Molecule, error) {
	// 1) Fresh molecule plus resolved configuration.
	m := core.NewMolecule(mopts...)
	cfg := defaultConfig()
	for _, opt := range bopts {
		opt(&cfg)
	}

	// 2) Apply constructors in call order; fail fast, no partial result.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	// 3) Optional placement pass.
	if cfg.place {
		if err := layout.Place(m); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return m, nil
}
