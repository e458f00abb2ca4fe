// Package builder: sentinel errors.

package builder

import "errors"

// ErrTooFewAtoms indicates a constructor parameter below its minimum:
// Chain needs one atom, Ring three, AlternatingRing four, Star one leaf,
// FromTables a non-empty atom table.
var ErrTooFewAtoms = errors.New("builder: too few atoms")

// ErrBadSpec indicates an invalid declarative parameter: a bond endpoint
// index outside the atom table, or an alternating ring of odd length.
var ErrBadSpec = errors.New("builder: bad spec")

// ErrConstructFailed indicates Build was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
