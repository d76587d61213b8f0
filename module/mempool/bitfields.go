package mempool

import (
	"github.com/filament-chain/filament/model/relay"
)

// Bitfields is the memory pool of pending availability bitfields on the
// block-author side, at most one per validator.
type Bitfields interface {

	// Add adds the given bitfield to the pool. Returns ErrAlreadyExists if
	// the validator already has a pending bitfield.
	Add(bitfield *relay.UncheckedBitfield) error

	// ByValidator returns the pending bitfield of the given validator.
	ByValidator(index relay.ValidatorIndex) (*relay.UncheckedBitfield, error)

	// Remove removes the pending bitfield of the given validator, returning
	// whether one was present.
	Remove(index relay.ValidatorIndex) bool

	// All returns all pending bitfields, in ascending validator-index
	// order, the canonical bundle order.
	All() []*relay.UncheckedBitfield

	// Size returns the number of pending bitfields.
	Size() uint

	// Clear removes all pending bitfields.
	Clear()
}
