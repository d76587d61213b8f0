package mempool

import (
	"github.com/filament-chain/filament/model/relay"
)

// BackedCandidates is the memory pool of pending backed candidates on the
// block-author side.
type BackedCandidates interface {

	// Add adds the given backed candidate to the pool. Returns
	// ErrAlreadyExists if a candidate with the same hash is already
	// pending.
	Add(candidate *relay.BackedCandidate) error

	// ByHash returns the pending candidate with the given hash.
	ByHash(hash relay.CandidateHash) (*relay.BackedCandidate, error)

	// Remove removes the candidate with the given hash, returning whether
	// one was present.
	Remove(hash relay.CandidateHash) bool

	// All returns all pending candidates ordered by candidate hash, a
	// deterministic order independent of insertion.
	All() []*relay.BackedCandidate

	// Size returns the number of pending candidates.
	Size() uint

	// Clear removes all pending candidates.
	Clear()
}
