// Package catalog: the record encoding and key construction.

package catalog

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/molvath/molvath/core"
)

const (
	// encVersion tags the head of every record.
	encVersion = 1

	// coordScale is the fixed-point factor for persisted coordinates:
	// four decimal places survive the round trip.
	coordScale = 1e4

	// reservedTag prefixes non-record keys. Formula strings are ASCII,
	// so no record key can start with it.
	reservedTag = 0xFF
)

// stateKey holds the catalog state record.
var stateKey = []byte{reservedTag, 's', 't', 'a', 't', 'e'}

// recordKey builds [formula][0x00][encoding].
func recordKey(formula string, enc []byte) []byte {
	key := make([]byte, 0, len(formula)+1+len(enc))
	key = append(key, formula...)
	key = append(key, 0)

	return append(key, enc...)
}

// bucketPrefix builds [formula][0x00], the common prefix of one formula
// bucket. The NUL keeps "C6" from matching "C6H6" keys.
func bucketPrefix(formula string) []byte {
	prefix := make([]byte, 0, len(formula)+1)
	prefix = append(prefix, formula...)

	return append(prefix, 0)
}

// Encode renders m as a self-contained varint-framed record: a version
// byte, the atom table (symbol, charge, multiplicity, placement flag and
// fixed-point coordinates), then the bond table with endpoints as atom
// table positions in stored orientation, order, and stereo.
//
// Atoms are written in ascending ID order and bonds in ascending bond ID
// order, so equal molecules encode to equal bytes. Detached bonds are
// written as live; extension props and perceived aromaticity flags are
// not persisted.
// Complexity: O(A + B).
func Encode(m *core.Molecule) []byte {
	atoms := m.Atoms()
	bonds := m.Bonds()

	buf := make([]byte, 0, 16+12*len(atoms)+8*len(bonds))
	buf = append(buf, encVersion)

	index := make(map[core.AtomID]int, len(atoms))
	buf = binary.AppendUvarint(buf, uint64(len(atoms)))
	for i, a := range atoms {
		index[a.ID] = i
		buf = binary.AppendUvarint(buf, uint64(len(a.Symbol)))
		buf = append(buf, a.Symbol...)
		buf = binary.AppendVarint(buf, int64(a.Charge))
		buf = binary.AppendUvarint(buf, uint64(a.Multiplicity))
		if a.Positioned {
			buf = append(buf, 1)
			buf = binary.AppendVarint(buf, fixedPoint(a.X))
			buf = binary.AppendVarint(buf, fixedPoint(a.Y))
			buf = binary.AppendVarint(buf, fixedPoint(a.Z))
		} else {
			buf = append(buf, 0)
		}
	}

	buf = binary.AppendUvarint(buf, uint64(len(bonds)))
	for _, b := range bonds {
		buf = binary.AppendUvarint(buf, uint64(index[b.A1]))
		buf = binary.AppendUvarint(buf, uint64(index[b.A2]))
		buf = binary.AppendUvarint(buf, uint64(b.Order))
		buf = binary.AppendUvarint(buf, uint64(b.Stereo))
	}

	return buf
}

func fixedPoint(v float64) int64 { return int64(math.Round(v * coordScale)) }

func fromFixedPoint(v int64) float64 { return float64(v) / coordScale }

// decoder walks an encoded record and latches the first framing error.
type decoder struct {
	buf []byte
	off int
	err error
}

func (d *decoder) fail() {
	if d.err == nil {
		d.err = ErrBadEncoding
	}
}

func (d *decoder) byte() byte {
	if d.err != nil {
		return 0
	}
	if d.off >= len(d.buf) {
		d.fail()
		return 0
	}
	b := d.buf[d.off]
	d.off++

	return b
}

func (d *decoder) bytes(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || d.off+n > len(d.buf) {
		d.fail()
		return nil
	}
	out := d.buf[d.off : d.off+n]
	d.off += n

	return out
}

func (d *decoder) uvarint() uint64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Uvarint(d.buf[d.off:])
	if n <= 0 {
		d.fail()
		return 0
	}
	d.off += n

	return v
}

func (d *decoder) varint() int64 {
	if d.err != nil {
		return 0
	}
	v, n := binary.Varint(d.buf[d.off:])
	if n <= 0 {
		d.fail()
		return 0
	}
	d.off += n

	return v
}

// Decode rebuilds a molecule from an Encode record. Atom IDs are issued
// fresh and dense; bonds keep their stored endpoint orientation, so
// stereo direction survives the round trip.
//
// Any framing violation - truncation, unknown version, a count past the
// data, an out-of-range table index, an unknown order or stereo code,
// trailing bytes - returns ErrBadEncoding.
// Complexity: O(A + B).
func Decode(data []byte) (*core.Molecule, error) {
	d := &decoder{buf: data}
	if v := d.byte(); d.err != nil || v != encVersion {
		return nil, fmt.Errorf("catalog: record version: %w", ErrBadEncoding)
	}

	m := core.NewMolecule()

	atomCount := d.uvarint()
	if atomCount > uint64(len(data)) {
		return nil, fmt.Errorf("catalog: atom count %d: %w", atomCount, ErrBadEncoding)
	}
	ids := make([]core.AtomID, 0, atomCount)
	for i := 0; i < int(atomCount); i++ {
		symbol := string(d.bytes(int(d.uvarint())))
		charge := d.varint()
		mult := d.uvarint()
		placed := d.byte()
		var opts []core.AtomOption
		if charge != 0 {
			opts = append(opts, core.WithCharge(int(charge)))
		}
		if mult > 0 {
			opts = append(opts, core.WithMultiplicity(int(mult)))
		}
		switch placed {
		case 0:
		case 1:
			x, y, z := fromFixedPoint(d.varint()), fromFixedPoint(d.varint()), fromFixedPoint(d.varint())
			opts = append(opts, core.WithCoords3(x, y, z))
		default:
			d.fail()
		}
		if d.err != nil {
			return nil, fmt.Errorf("catalog: atom %d at offset %d: %w", i, d.off, d.err)
		}
		id, err := m.AddAtom(symbol, opts...)
		if err != nil {
			return nil, fmt.Errorf("catalog: atom %d: %s: %w", i, err, ErrBadEncoding)
		}
		ids = append(ids, id)
	}

	bondCount := d.uvarint()
	if bondCount > uint64(len(data)) {
		return nil, fmt.Errorf("catalog: bond count %d: %w", bondCount, ErrBadEncoding)
	}
	for i := 0; i < int(bondCount); i++ {
		i1, i2 := d.uvarint(), d.uvarint()
		order := d.uvarint()
		stereo := d.uvarint()
		if d.err != nil {
			return nil, fmt.Errorf("catalog: bond %d at offset %d: %w", i, d.off, d.err)
		}
		if i1 >= uint64(len(ids)) || i2 >= uint64(len(ids)) {
			return nil, fmt.Errorf("catalog: bond %d: endpoint index %d-%d: %w", i, i1, i2, ErrBadEncoding)
		}
		if stereo > uint64(core.StereoWavy) {
			return nil, fmt.Errorf("catalog: bond %d: stereo %d: %w", i, stereo, ErrBadEncoding)
		}
		var opts []core.BondOption
		if s := core.Stereo(stereo); s != core.StereoNone {
			opts = append(opts, core.WithStereo(s))
		}
		if _, err := m.AddBond(ids[i1], ids[i2], core.BondOrder(order), opts...); err != nil {
			return nil, fmt.Errorf("catalog: bond %d: %s: %w", i, err, ErrBadEncoding)
		}
	}

	if d.off != len(data) {
		return nil, fmt.Errorf("catalog: %d trailing bytes: %w", len(data)-d.off, ErrBadEncoding)
	}

	return m, nil
}
