package mempool

import (
	"github.com/filament-chain/filament/model/relay"
)

// Disputes is the memory pool of pending dispute statement sets on the
// block-author side, at most one per (session, candidate) pair.
type Disputes interface {

	// Add adds the given statement set to the pool. Returns
	// ErrAlreadyExists if a set for the same session and candidate is
	// already pending.
	Add(set *relay.DisputeStatementSet) error

	// BySessionAndCandidate returns the pending statement set for the given
	// session and candidate.
	BySessionAndCandidate(session relay.SessionIndex, candidate relay.CandidateHash) (*relay.DisputeStatementSet, error)

	// Remove removes the statement set for the given session and candidate,
	// returning whether one was present.
	Remove(session relay.SessionIndex, candidate relay.CandidateHash) bool

	// All returns all pending statement sets ordered by session, then by
	// candidate hash.
	All() []*relay.DisputeStatementSet

	// Size returns the number of pending statement sets.
	Size() uint

	// Clear removes all pending statement sets.
	Clear()
}
