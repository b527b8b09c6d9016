// Package bitset provides fixed-size bit sets with population counting.
//
// The constant register maps of a shader are stored as blocks of these
// sets, so index compaction reduces to prefix population counts.
package bitset

import "math/bits"

// Set32 is a set of bit indices in [0, 32).
type Set32 uint32

// Has reports whether bit i is set. Out of range indices are never set.
func (s Set32) Has(i uint32) bool {
	return i < 32 && s&(1<<i) != 0
}

// With returns s with bit i set.
func (s Set32) With(i uint32) Set32 {
	if i >= 32 {
		return s
	}
	return s | 1<<i
}

// Count returns the number of set bits.
func (s Set32) Count() uint32 {
	return uint32(bits.OnesCount32(uint32(s)))
}

// CountBelow returns the number of set bits at indices lower than i.
func (s Set32) CountBelow(i uint32) uint32 {
	if i >= 32 {
		return s.Count()
	}
	return Set32(uint32(s) & (1<<i - 1)).Count()
}

// Set64 is a set of bit indices in [0, 64).
type Set64 uint64

// Full64 has every bit set.
const Full64 = Set64(^uint64(0))

// Has reports whether bit i is set. Out of range indices are never set.
func (s Set64) Has(i uint32) bool {
	return i < 64 && s&(1<<i) != 0
}

// With returns s with bit i set.
func (s Set64) With(i uint32) Set64 {
	if i >= 64 {
		return s
	}
	return s | 1<<i
}

// Count returns the number of set bits.
func (s Set64) Count() uint32 {
	return uint32(bits.OnesCount64(uint64(s)))
}

// CountBelow returns the number of set bits at indices lower than i.
func (s Set64) CountBelow(i uint32) uint32 {
	if i >= 64 {
		return s.Count()
	}
	return Set64(uint64(s) & (1<<i - 1)).Count()
}
