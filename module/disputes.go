package module

import (
	"github.com/filament-chain/filament/model/relay"
)

// DisputeLedger tracks dispute statements and their resolutions. It owns the
// dispute state; ingestion is transactional, so a failed ingest leaves the
// ledger untouched.
type DisputeLedger interface {

	// ProvideMultiDisputeData ingests a batch of dispute statement sets.
	// The ingest is all-or-nothing: on error no statement was recorded.
	ProvideMultiDisputeData(disputes []relay.DisputeStatementSet) error

	// FilterMultiDisputeData removes statements the ledger already knows
	// about, returning the remainder. Used by the block author to avoid
	// submitting duplicates.
	FilterMultiDisputeData(disputes []relay.DisputeStatementSet) []relay.DisputeStatementSet

	// ConcludedInvalid reports whether the dispute for the given candidate
	// has concluded against its validity in the given session.
	ConcludedInvalid(session relay.SessionIndex, candidate relay.CandidateHash) bool

	// IsFrozen reports whether the chain is frozen by an unresolved dispute
	// against one of its own ancestors. While frozen, no parachain
	// consensus work may proceed.
	IsFrozen() bool

	// NoteIncluded informs the ledger that a candidate became included at
	// the given block height.
	NoteIncluded(session relay.SessionIndex, candidate relay.CandidateHash, included relay.BlockNumber)
}
