package module

import (
	"github.com/filament-chain/filament/model/relay"
)

// FreedCandidate pairs a core freed by concluded availability with the hash
// of the candidate that occupied it.
type FreedCandidate struct {
	Core      relay.CoreIndex
	Candidate relay.CandidateHash
}

// ProcessedCandidates is the result of admitting backed candidates: the
// cores they now occupy and the backing votes per candidate.
type ProcessedCandidates struct {
	CoreIndices       []relay.CoreIndex
	BackingValidators map[relay.CandidateHash][]relay.ValidatorIndex
}

// InclusionTracker owns the availability bitmap state machine: it verifies
// bitfield signatures, counts availability quorums and commits candidate
// state on inclusion.
type InclusionTracker interface {

	// ProcessBitfields applies the given bitfields to the availability
	// bitmaps, skipping cores flagged in the disputed bitfield, and returns
	// the cores whose candidates just reached their availability quorum.
	// Bitfield signatures are verified here; any invalid input is an error
	// that invalidates the whole block.
	ProcessBitfields(
		expectedBits int,
		bitfields []relay.UncheckedBitfield,
		disputed relay.DisputedBitfield,
		lookup CoreParaLookup,
	) ([]FreedCandidate, error)

	// CollectDisputed frees the cores occupied by any of the given disputed
	// candidates and returns them in no particular order.
	CollectDisputed(disputed map[relay.CandidateHash]struct{}) []relay.CoreIndex

	// CollectPending frees the cores whose availability timed out according
	// to the predicate and returns them.
	CollectPending(timedOut func(core relay.CoreIndex, since relay.BlockNumber) bool) []relay.CoreIndex

	// ProcessCandidates verifies backing votes and commits the candidates'
	// state, returning the newly occupied cores and the backing votes per
	// candidate. Any invalid candidate is an error that invalidates the
	// whole block.
	ProcessCandidates(
		parentStorageRoot relay.Hash,
		candidates []relay.BackedCandidate,
		scheduled []relay.CoreAssignment,
		groups GroupLookup,
	) (ProcessedCandidates, error)
}
