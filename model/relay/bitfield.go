package relay

import (
	"fmt"
)

// AvailabilityBitfield is a compact bit vector with one bit per availability
// core. Bits are packed least-significant-bit first within each byte, so bit
// i lives in byte i/8 at position i%8.
type AvailabilityBitfield struct {
	Bits   []byte `cbor:"1,keyasint"`
	BitLen int    `cbor:"2,keyasint"`
}

// NewBitfield returns a zeroed bitfield covering n cores.
func NewBitfield(n int) AvailabilityBitfield {
	return AvailabilityBitfield{
		Bits:   make([]byte, (n+7)/8),
		BitLen: n,
	}
}

// Len returns the number of bits in the bitfield.
func (a AvailabilityBitfield) Len() int {
	return a.BitLen
}

// Valid reports whether the backing storage is consistent with the declared
// bit length. Decoded bitfields carry both independently, so they must be
// validated before any bit is read.
func (a AvailabilityBitfield) Valid() bool {
	return a.BitLen >= 0 && len(a.Bits) == (a.BitLen+7)/8
}

// Bit returns the bit at index i. Out-of-range indices read as unset.
func (a AvailabilityBitfield) Bit(i int) bool {
	if i < 0 || i >= a.BitLen {
		return false
	}
	return a.Bits[i/8]&(1<<uint(i%8)) != 0
}

// SetBit sets the bit at index i to the given value.
func (a AvailabilityBitfield) SetBit(i int, value bool) error {
	if i < 0 || i >= a.BitLen {
		return fmt.Errorf("bit index out of range (index %d, length %d)", i, a.BitLen)
	}
	if value {
		a.Bits[i/8] |= 1 << uint(i%8)
	} else {
		a.Bits[i/8] &^= 1 << uint(i%8)
	}
	return nil
}

// CountSet returns the number of set bits.
func (a AvailabilityBitfield) CountSet() int {
	count := 0
	for i := 0; i < a.BitLen; i++ {
		if a.Bit(i) {
			count++
		}
	}
	return count
}

// UncheckedBitfield is one validator's per-core availability vote, carrying a
// signature that has not been verified yet.
type UncheckedBitfield struct {
	Payload        AvailabilityBitfield `cbor:"1,keyasint"`
	ValidatorIndex ValidatorIndex       `cbor:"2,keyasint"`
	Signature      []byte               `cbor:"3,keyasint"`
}

// DisputedBitfield marks cores whose occupant was just concluded invalid by a
// dispute. Such cores are excluded from availability accounting.
type DisputedBitfield struct {
	AvailabilityBitfield
}

// ZeroDisputed returns a disputed bitfield of length n with all bits unset.
func ZeroDisputed(n int) DisputedBitfield {
	return DisputedBitfield{AvailabilityBitfield: NewBitfield(n)}
}

// DisputedFromCores builds a disputed bitfield of length n with the bit for
// every given core set. Core indices beyond n are ignored.
func DisputedFromCores(cores []CoreIndex, n int) DisputedBitfield {
	disputed := ZeroDisputed(n)
	for _, core := range cores {
		if int(core) < n {
			_ = disputed.SetBit(int(core), true)
		}
	}
	return disputed
}
