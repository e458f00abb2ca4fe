// Package rings: dense bond-index bitsets for cycle arithmetic.

package rings

import "math/bits"

// edgeSet is a fixed-width bitset over the perception's dense bond index.
// Cycle arithmetic in GF(2) is word-wise XOR.
type edgeSet []uint64

func newEdgeSet(nbits int) edgeSet {
	return make(edgeSet, (nbits+63)/64)
}

func (s edgeSet) set(i int)      { s[i/64] |= 1 << uint(i%64) }
func (s edgeSet) has(i int) bool { return s[i/64]&(1<<uint(i%64)) != 0 }

// count returns the number of set bits.
func (s edgeSet) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}

	return n
}

// xor returns the symmetric difference as a fresh set.
func (s edgeSet) xor(o edgeSet) edgeSet {
	out := make(edgeSet, len(s))
	for i := range s {
		out[i] = s[i] ^ o[i]
	}

	return out
}

// clone returns a copy.
func (s edgeSet) clone() edgeSet {
	out := make(edgeSet, len(s))
	copy(out, s)

	return out
}

// indices returns the set indices in ascending order.
func (s edgeSet) indices() []int {
	var out []int
	for w, word := range s {
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b)
			word &^= 1 << uint(b)
		}
	}

	return out
}
