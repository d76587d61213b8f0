package storage

import (
	"github.com/filament-chain/filament/model/relay"
)

// OnChainVotes represents persistent storage for the block-scoped summary of
// inherent processing. Exactly one record exists per processed block; the
// latest record is the one downstream consumers read.
type OnChainVotes interface {

	// Store persists the votes record for the given block number,
	// overwriting any record stored under the same number.
	Store(number relay.BlockNumber, votes *relay.OnChainVotes) error

	// ByBlockNumber retrieves the votes record for the given block number.
	// Returns storage.ErrNotFound if no record exists.
	ByBlockNumber(number relay.BlockNumber) (*relay.OnChainVotes, error)

	// Latest retrieves the votes record with the highest block number.
	// Returns storage.ErrNotFound if no record was ever stored.
	Latest() (*relay.OnChainVotes, error)
}
