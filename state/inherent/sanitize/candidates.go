package sanitize

import (
	"github.com/hashicorp/go-multierror"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module"
)

// SanitizeBackedCandidates filters backed candidates against disputes and
// the current scheduling.
//
// A candidate is dropped when:
//  1. its hash is in the disputed set, or the ledger reports its dispute
//     concluded invalid for this session
//  2. its declared relay parent differs from relayParent, or its parachain
//     has no core assigned this block
//
// Admitting an invalid candidate advances state and cannot be undone, while
// omission never can, so dropping is always the safe direction.
//
// In ModeStrict any drop aborts the call with a CandidateConcludedInvalidError.
// In ModeLenient the returned slice is always valid and the returned error is
// purely informational, aggregating the reasons of all drops.
func SanitizeBackedCandidates(
	relayParent relay.Hash,
	candidates []relay.BackedCandidate,
	disputed map[relay.CandidateHash]struct{},
	session relay.SessionIndex,
	ledger module.DisputeLedger,
	scheduled []relay.CoreAssignment,
	mode Mode,
) ([]relay.BackedCandidate, error) {

	scheduledParas := make(map[relay.ParaID]struct{}, len(scheduled))
	for _, assignment := range scheduled {
		scheduledParas[assignment.Para] = struct{}{}
	}

	filtered := make([]relay.BackedCandidate, 0, len(candidates))

	var dropped *multierror.Error
	for i := range candidates {
		candidate := candidates[i]
		candidateHash := candidate.Hash()

		_, isDisputed := disputed[candidateHash]
		if isDisputed || ledger.ConcludedInvalid(session, candidateHash) {
			err := NewCandidateConcludedInvalidErrorf(
				"candidate %v concluded invalid in session %d", candidateHash, session)
			if mode == ModeStrict {
				return nil, err
			}
			dropped = multierror.Append(dropped, err)
			continue
		}

		descriptor := candidate.Descriptor()
		if descriptor.RelayParent != relayParent {
			err := NewCandidateConcludedInvalidErrorf(
				"candidate %v built on relay parent %v, expected %v",
				candidateHash, descriptor.RelayParent, relayParent)
			if mode == ModeStrict {
				return nil, err
			}
			dropped = multierror.Append(dropped, err)
			continue
		}
		if _, ok := scheduledParas[descriptor.ParaID]; !ok {
			err := NewCandidateConcludedInvalidErrorf(
				"candidate %v of para %d has no scheduled core", candidateHash, descriptor.ParaID)
			if mode == ModeStrict {
				return nil, err
			}
			dropped = multierror.Append(dropped, err)
			continue
		}

		filtered = append(filtered, candidate)
	}

	return filtered, dropped.ErrorOrNil()
}
