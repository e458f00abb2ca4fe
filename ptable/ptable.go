package ptable

import "sort"

// Element describes one entry of the table.
//
// Valences is the ascending list of standard valences (C → [4],
// S → [2 4 6]). Elements outside the supported set get an empty list.
type Element struct {
	// Symbol is the canonical symbol, e.g. "C", "Cl".
	Symbol string
	// Number is the atomic number.
	Number int
	// Valences lists standard valences in ascending order.
	Valences []int
	// LonePair marks elements whose lone pair absorbs a positive
	// charge, raising the usable valence instead of lowering it.
	LonePair bool
	// HydrideAcceptor marks electron-deficient elements (B, Al)
	// whose usable valence grows under a negative charge.
	HydrideAcceptor bool
}

// Table is an immutable symbol → Element map.
// The zero Table is empty; use Default or New.
type Table struct {
	elements map[string]Element
}

// Option customizes a Table derived by New.
type Option func(map[string]Element)

// WithValences overrides the valence list of symbol.
// Unknown symbols gain a fresh entry with atomic number 0.
func WithValences(symbol string, valences ...int) Option {
	return func(m map[string]Element) {
		el := m[symbol]
		el.Symbol = symbol
		el.Valences = append([]int(nil), valences...)
		sort.Ints(el.Valences)
		m[symbol] = el
	}
}

// WithElement inserts or replaces a full element record.
func WithElement(el Element) Option {
	return func(m map[string]Element) {
		el.Valences = append([]int(nil), el.Valences...)
		sort.Ints(el.Valences)
		m[el.Symbol] = el
	}
}

// lone-pair bearers: a positive charge consumes the pair and adds a bond.
var lonePairSymbols = map[string]bool{
	"N": true, "O": true, "P": true, "S": true,
	"As": true, "Se": true, "Te": true,
	"F": true, "Cl": true, "Br": true, "I": true,
}

var hydrideAcceptorSymbols = map[string]bool{
	"B": true, "Al": true,
}

var standardValences = map[string][]int{
	"H":  {1},
	"Li": {1},
	"Be": {2},
	"B":  {3},
	"C":  {4},
	"N":  {3, 5},
	"O":  {2},
	"F":  {1},
	"Na": {1},
	"Mg": {2},
	"Al": {3},
	"Si": {4},
	"P":  {3, 5},
	"S":  {2, 4, 6},
	"Cl": {1, 3, 5, 7},
	"K":  {1},
	"Ca": {2},
	"Fe": {2, 3},
	"Co": {2, 3},
	"Ni": {2, 3},
	"Cu": {1, 2},
	"Zn": {2},
	"As": {3, 5},
	"Se": {2, 4, 6},
	"Br": {1, 3, 5, 7},
	"Sn": {2, 4},
	"Te": {2, 4, 6},
	"I":  {1, 3, 5, 7},
	"Pb": {2, 4},
}

var atomicNumbers = map[string]int{
	"H": 1, "He": 2,
	"Li": 3, "Be": 4, "B": 5, "C": 6, "N": 7, "O": 8, "F": 9, "Ne": 10,
	"Na": 11, "Mg": 12, "Al": 13, "Si": 14, "P": 15, "S": 16, "Cl": 17, "Ar": 18,
	"K": 19, "Ca": 20, "Fe": 26, "Co": 27, "Ni": 28, "Cu": 29, "Zn": 30,
	"As": 33, "Se": 34, "Br": 35,
	"Sn": 50, "Te": 52, "I": 53,
	"Pb": 82,
}

var defaultTable = buildDefault()

func buildDefault() *Table {
	m := make(map[string]Element, len(atomicNumbers))
	for sym, num := range atomicNumbers {
		m[sym] = Element{
			Symbol:          sym,
			Number:          num,
			Valences:        append([]int(nil), standardValences[sym]...),
			LonePair:        lonePairSymbols[sym],
			HydrideAcceptor: hydrideAcceptorSymbols[sym],
		}
	}
	return &Table{elements: m}
}

// Default returns the shared built-in table. Callers must not mutate
// the returned element slices; use New for customization.
func Default() *Table { return defaultTable }

// New derives a fresh table from the default and applies opts.
func New(opts ...Option) *Table {
	m := make(map[string]Element, len(defaultTable.elements))
	for sym, el := range defaultTable.elements {
		el.Valences = append([]int(nil), el.Valences...)
		m[sym] = el
	}
	for _, opt := range opts {
		opt(m)
	}
	return &Table{elements: m}
}

// Lookup resolves symbol to its element record.
// The second return is false for unknown symbols.
func (t *Table) Lookup(symbol string) (Element, bool) {
	el, ok := t.elements[symbol]
	return el, ok
}

// Symbols returns all known symbols in ascending lexical order.
func (t *Table) Symbols() []string {
	out := make([]string, 0, len(t.elements))
	for sym := range t.elements {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// EffectiveValences returns the charge-corrected valence list for symbol,
// ascending. Corrections below zero clamp to zero. Unknown symbols yield nil.
//
// Rules:
//  1. charge == 0 → the standard list unchanged;
//  2. charge > 0 on a lone-pair bearer → each valence + charge,
//     otherwise each valence − charge;
//  3. charge < 0 on a hydride acceptor → each valence + |charge|,
//     otherwise each valence − |charge|.
func (t *Table) EffectiveValences(symbol string, charge int) []int {
	el, ok := t.elements[symbol]
	if !ok || len(el.Valences) == 0 {
		return nil
	}
	out := make([]int, len(el.Valences))
	delta := valenceDelta(el, charge)
	for i, v := range el.Valences {
		v += delta
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}

func valenceDelta(el Element, charge int) int {
	switch {
	case charge == 0:
		return 0
	case charge > 0 && el.LonePair:
		return charge
	case charge > 0:
		return -charge
	case el.HydrideAcceptor:
		return -charge // charge < 0 → positive delta
	default:
		return charge // charge < 0 → negative delta
	}
}
