package module

import (
	"github.com/filament-chain/filament/model/relay"
)

// InherentMetrics encapsulates the metrics collectors for parachain inherent
// processing.
type InherentMetrics interface {

	// InherentProcessed reports one processed inherent with the number of
	// accepted bitfields and candidates and the weight consumed.
	InherentProcessed(bitfields int, candidates int, weight relay.Weight)

	// BitfieldsDropped reports bitfields dropped during sanitization or
	// weight limiting.
	BitfieldsDropped(count int)

	// CandidatesDropped reports backed candidates dropped during
	// sanitization, weight limiting or the code-upgrade cap.
	CandidatesDropped(count int)

	// FrozenShortCircuit reports an inherent short-circuited because the
	// chain is frozen by a dispute.
	FrozenShortCircuit()

	// EmptyBundleFallback reports an author-side dry run failing and the
	// builder falling back to an empty bundle.
	EmptyBundleFallback()
}
