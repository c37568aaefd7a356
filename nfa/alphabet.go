package nfa

import "math/bits"

// Alphabet records exactly the literal byte values that appear in a
// compiled NFA (epsilon excluded), as a 256-bit set. It drives subset
// construction's transition enumeration and totalization, and fixes the
// column layout the minimized DFA inherits;
// its ascending iteration order (see Symbols) is what keeps DFA state
// numbering reproducible across compiles of the same pattern.
//
// This is the same boundary-bitset idiom the Thompson builder uses to track
// where byte-class equivalence boundaries fall, simplified here: this
// system has no equivalence classes, only the flat set of bytes actually
// used, since totalization and minimization both need the literal alphabet
// rather than a class reduction of it.
type Alphabet struct {
	bits [4]uint64
}

// Add records b as present in the alphabet.
func (a *Alphabet) Add(b byte) {
	a.bits[b/64] |= 1 << (b % 64)
}

// Has reports whether b was recorded.
func (a *Alphabet) Has(b byte) bool {
	return a.bits[b/64]&(1<<(b%64)) != 0
}

// Symbols returns every recorded byte in ascending order.
func (a *Alphabet) Symbols() []byte {
	out := make([]byte, 0, a.Len())
	for b := 0; b < 256; b++ {
		if a.Has(byte(b)) {
			out = append(out, byte(b))
		}
	}
	return out
}

// Len returns the number of distinct bytes recorded.
func (a *Alphabet) Len() int {
	n := 0
	for _, w := range a.bits {
		n += bits.OnesCount64(w)
	}
	return n
}
