package module

import (
	"github.com/filament-chain/filament/model/relay"
)

// ValidatorSet is the active validator set of the current session.
type ValidatorSet interface {

	// Len returns the number of active validators. Validator indices in
	// bitfields must be strictly below this bound.
	Len() int
}

// BitfieldVerifier checks availability-bitfield signatures against the
// active validator set.
type BitfieldVerifier interface {

	// Verify checks the bitfield's signature under a signing context built
	// from the parent hash and the session index. The indexed validator's
	// key is taken from the active set.
	Verify(bitfield relay.UncheckedBitfield, parentHash relay.Hash, session relay.SessionIndex) error
}
