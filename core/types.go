// Package core: type declarations for the molecular graph.
//
// This file declares Atom, Bond, the option types, and the sentinel errors
// of the package. Molecule itself and its methods live in molecule.go,
// methods_atoms.go, methods_bonds.go, methods_detach.go, chem.go, and
// clone.go.
//
// Errors:
//
//	ErrEmptySymbol   - atom symbol is the empty string.
//	ErrAtomNotFound  - requested atom does not exist.
//	ErrBondNotFound  - requested bond does not exist.
//	ErrLoopBond      - both bond endpoints are the same atom.
//	ErrDuplicateBond - the unordered atom pair is already bonded.
//	ErrBadOrder      - unknown BondOrder value.
//	ErrBondDetached  - bond is already on the detached stack.
package core

import "errors"

// Sentinel errors for molecule operations.
var (
	// ErrEmptySymbol indicates an atom was added with an empty element symbol.
	ErrEmptySymbol = errors.New("core: empty atom symbol")

	// ErrAtomNotFound indicates an operation referenced a non-existent atom.
	ErrAtomNotFound = errors.New("core: atom not found")

	// ErrBondNotFound indicates an operation referenced a non-existent bond.
	ErrBondNotFound = errors.New("core: bond not found")

	// ErrLoopBond indicates a bond was attempted from an atom to itself.
	ErrLoopBond = errors.New("core: self-loop bond not allowed")

	// ErrDuplicateBond indicates the atom pair is already bonded.
	// Recoverable: callers typically escalate the existing bond's order
	// instead of treating this as fatal.
	ErrDuplicateBond = errors.New("core: duplicate bond")

	// ErrBadOrder indicates an unknown BondOrder value.
	ErrBadOrder = errors.New("core: unknown bond order")

	// ErrBondDetached indicates a detach of a bond that is already detached.
	ErrBondDetached = errors.New("core: bond already detached")
)

// AtomID identifies an Atom within one Molecule. IDs are issued by a
// monotonic per-Molecule counter and are never reused.
type AtomID int

// BondID identifies a Bond within one Molecule. Same issuing rules as AtomID.
type BondID int

// BondOrder enumerates bond multiplicities.
//
// Single/Double/Triple carry their numeric order. OrderAromatic marks a bond
// inside a delocalized ring (valence contribution 1.5). OrderCoordination is
// a dative bond that contributes nothing to occupied valence.
type BondOrder int

const (
	Single BondOrder = 1
	Double BondOrder = 2
	Triple BondOrder = 3
	// OrderAromatic is a delocalized ring bond.
	OrderAromatic BondOrder = 4
	// OrderCoordination is a dative bond; it does not occupy valence.
	OrderCoordination BondOrder = 5
)

// Valence returns the order's contribution to an atom's occupied valence.
func (o BondOrder) Valence() float64 {
	switch o {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case OrderAromatic:
		return 1.5
	case OrderCoordination:
		return 0
	default:
		return 0
	}
}

// String implements fmt.Stringer.
func (o BondOrder) String() string {
	switch o {
	case Single:
		return "single"
	case Double:
		return "double"
	case Triple:
		return "triple"
	case OrderAromatic:
		return "aromatic"
	case OrderCoordination:
		return "coordination"
	default:
		return "unknown"
	}
}

// valid reports whether o is one of the enumerated orders.
func (o BondOrder) valid() bool {
	switch o {
	case Single, Double, Triple, OrderAromatic, OrderCoordination:
		return true
	default:
		return false
	}
}

// Stereo enumerates the 2D stereo rendering of a bond.
// The stored endpoint order of the bond is meaningful for wedge and hatch:
// the narrow end sits at A1, the wide end at A2.
type Stereo int

const (
	StereoNone Stereo = iota
	StereoWedge
	StereoHatch
	StereoWavy
)

// String implements fmt.Stringer.
func (s Stereo) String() string {
	switch s {
	case StereoNone:
		return "none"
	case StereoWedge:
		return "wedge"
	case StereoHatch:
		return "hatch"
	case StereoWavy:
		return "wavy"
	default:
		return "unknown"
	}
}

// PropKey enumerates the extension properties an Atom or Bond may carry.
// Props maps are keyed by these tags only; open-ended string bags are
// deliberately not supported.
type PropKey int

const (
	// PropLineWidth multiplies the rendered line width of a bond.
	PropLineWidth PropKey = iota + 1
	// PropOffsetSide overrides the side of a double bond's second line:
	// negative forces one side, positive the other, zero means automatic.
	PropOffsetSide
)

// Atom is a node of the molecular graph.
//
// Fields are exported for direct read access and edit; structural identity
// (ID) and membership are managed by the owning Molecule. Edits to fields do
// not bump the Molecule version - see Molecule.Touch.
type Atom struct {
	// ID is the unique identifier within the owning Molecule.
	ID AtomID

	// Symbol is the element symbol, e.g. "C", "Cl". Never empty.
	Symbol string

	// Charge is the formal charge.
	Charge int

	// Multiplicity is the spin multiplicity: 1 closed shell,
	// 2 doublet radical (one unpaired electron), 3 triplet (two).
	Multiplicity int

	// X, Y, Z are coordinates; meaningful only when Positioned is true.
	X, Y, Z float64

	// Positioned reports whether coordinates have been assigned
	// (by a loader or by layout).
	Positioned bool

	// Props stores enumerated-tag extension values. Nil until first use.
	Props map[PropKey]float64
}

// Bond is an edge of the molecular graph.
type Bond struct {
	// ID is the unique identifier within the owning Molecule.
	ID BondID

	// A1, A2 are the endpoints. Lookup and identity treat the pair as
	// unordered; the stored order carries wedge/hatch direction
	// (narrow at A1, wide at A2).
	A1, A2 AtomID

	// Order is the bond multiplicity.
	Order BondOrder

	// Stereo is the 2D stereo decoration.
	Stereo Stereo

	// Aromatic is set by ring perception when the bond belongs to an
	// aromatic ring. Independent of Order == OrderAromatic.
	Aromatic bool

	// Props stores enumerated-tag extension values. Nil until first use.
	Props map[PropKey]float64
}

// Other returns the endpoint opposite to id, and false when id is not an
// endpoint of the bond.
func (b *Bond) Other(id AtomID) (AtomID, bool) {
	switch id {
	case b.A1:
		return b.A2, true
	case b.A2:
		return b.A1, true
	default:
		return 0, false
	}
}

// Incidence pairs a neighbor atom with the bond reaching it.
type Incidence struct {
	Atom *Atom
	Bond *Bond
}

// Option configures a Molecule at construction.
type Option func(*Molecule)

// AtomOption configures an atom as it is added.
type AtomOption func(*Atom)

// WithCharge sets the formal charge of the new atom.
func WithCharge(charge int) AtomOption {
	return func(a *Atom) { a.Charge = charge }
}

// WithMultiplicity sets the spin multiplicity of the new atom.
func WithMultiplicity(m int) AtomOption {
	return func(a *Atom) { a.Multiplicity = m }
}

// WithCoords places the new atom at (x, y) in the drawing plane.
func WithCoords(x, y float64) AtomOption {
	return func(a *Atom) {
		a.X, a.Y = x, y
		a.Positioned = true
	}
}

// WithCoords3 places the new atom at (x, y, z).
func WithCoords3(x, y, z float64) AtomOption {
	return func(a *Atom) {
		a.X, a.Y, a.Z = x, y, z
		a.Positioned = true
	}
}

// WithProps copies the given extension values onto the new atom.
func WithProps(props map[PropKey]float64) AtomOption {
	return func(a *Atom) {
		if len(props) == 0 {
			return
		}
		if a.Props == nil {
			a.Props = make(map[PropKey]float64, len(props))
		}
		for k, v := range props {
			a.Props[k] = v
		}
	}
}

// BondOption configures a bond as it is added.
type BondOption func(*Bond)

// WithStereo sets the stereo decoration of the new bond.
func WithStereo(s Stereo) BondOption {
	return func(b *Bond) { b.Stereo = s }
}

// WithBondProps copies the given extension values onto the new bond.
func WithBondProps(props map[PropKey]float64) BondOption {
	return func(b *Bond) {
		if len(props) == 0 {
			return
		}
		if b.Props == nil {
			b.Props = make(map[PropKey]float64, len(props))
		}
		for k, v := range props {
			b.Props[k] = v
		}
	}
}
