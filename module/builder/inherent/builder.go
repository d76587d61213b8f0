// Package inherent implements the block author's construction of the
// parachain inherent bundle. The builder mirrors the on-chain checks in
// lenient mode, weight-limits the result, and dry-runs the full on-chain
// transition before emitting; a bundle that fails its own dry run is
// replaced by an empty one, which is always admissible.
package inherent

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module"
	"github.com/filament-chain/filament/module/mempool"
	"github.com/filament-chain/filament/state/inherent/entropy"
	"github.com/filament-chain/filament/state/inherent/limit"
	"github.com/filament-chain/filament/state/inherent/sanitize"
)

// DryRunFunc executes the full on-chain transition for the given bundle
// against a scratch copy of the state, returning the error the chain would
// return. It must not mutate any live state.
type DryRunFunc func(bundle relay.InherentBundle) error

// Builder assembles the per-block inherent bundle from the author's pending
// pools.
//
// NOTE: Builder is NOT safe for use with multiple goroutines. Block
// authoring is single threaded, so this is OK.
type Builder struct {
	log        zerolog.Logger
	bitfields  mempool.Bitfields
	candidates mempool.BackedCandidates
	disputes   mempool.Disputes
	scheduler  module.Scheduler
	ledger     module.DisputeLedger
	beacon     module.RandomBeacon
	sessions   module.SessionProvider
	validators module.ValidatorSet
	metrics    module.InherentMetrics
	dryRun     DryRunFunc
	config     Config
}

func NewBuilder(
	log zerolog.Logger,
	bitfields mempool.Bitfields,
	candidates mempool.BackedCandidates,
	disputes mempool.Disputes,
	scheduler module.Scheduler,
	ledger module.DisputeLedger,
	beacon module.RandomBeacon,
	sessions module.SessionProvider,
	validators module.ValidatorSet,
	metrics module.InherentMetrics,
	dryRun DryRunFunc,
	opts ...Opt,
) *Builder {
	b := &Builder{
		log:        log.With().Str("component", "inherent_builder").Logger(),
		bitfields:  bitfields,
		candidates: candidates,
		disputes:   disputes,
		scheduler:  scheduler,
		ledger:     ledger,
		beacon:     beacon,
		sessions:   sessions,
		validators: validators,
		metrics:    metrics,
		dryRun:     dryRun,
		config:     DefaultConfig(),
	}
	for _, apply := range opts {
		apply(&b.config)
	}
	return b
}

// BuildBundle assembles the inherent bundle for a block built on the given
// parent header. The returned bundle always passes the on-chain transition:
// it was either dry-run successfully, or it is the empty fallback, which
// carries nothing that could be rejected.
func (b *Builder) BuildBundle(parentHeader relay.Header) (relay.InherentBundle, error) {

	parentHash := parentHeader.Hash()
	session := b.sessions.CurrentSession()
	expectedBits := b.scheduler.AvailabilityCores()

	log := b.log.With().
		Hex("parent_hash", parentHash[:]).
		Uint32("session", uint32(session)).
		Logger()

	// drain pending pools in canonical order and drop dispute statements
	// the chain already knows about
	pendingDisputes := make([]relay.DisputeStatementSet, 0, b.disputes.Size())
	for _, set := range b.disputes.All() {
		pendingDisputes = append(pendingDisputes, *set)
	}
	disputes := b.ledger.FilterMultiDisputeData(pendingDisputes)

	// candidates already concluded invalid must never be proposed again
	disputedCandidates := make(map[relay.CandidateHash]struct{})
	for _, set := range disputes {
		if set.Session != session {
			continue
		}
		if b.ledger.ConcludedInvalid(session, set.CandidateHash) {
			disputedCandidates[set.CandidateHash] = struct{}{}
		}
	}

	pendingBitfields := make([]relay.UncheckedBitfield, 0, b.bitfields.Size())
	for _, bitfield := range b.bitfields.All() {
		pendingBitfields = append(pendingBitfields, *bitfield)
	}
	bitfields, dropped := sanitize.SanitizeBitfields(
		pendingBitfields, relay.ZeroDisputed(expectedBits), expectedBits,
		parentHash, session, b.validators, nil, sanitize.ModeLenient)
	if dropped != nil {
		log.Debug().Err(dropped).Msg("dropped pending bitfields during lenient sanitization")
		b.metrics.BitfieldsDropped(len(pendingBitfields) - len(bitfields))
	}

	pendingCandidates := make([]relay.BackedCandidate, 0, b.candidates.Size())
	for _, candidate := range b.candidates.All() {
		pendingCandidates = append(pendingCandidates, *candidate)
	}
	scheduled := b.scheduler.Scheduled()
	candidates, dropped := sanitize.SanitizeBackedCandidates(
		parentHash, pendingCandidates, disputedCandidates, session, b.ledger, scheduled, sanitize.ModeLenient)
	if dropped != nil {
		log.Debug().Err(dropped).Msg("dropped pending candidates during lenient sanitization")
		b.metrics.CandidatesDropped(len(pendingCandidates) - len(candidates))
	}

	// bundle order for candidates is by scheduled core
	coreOf := make(map[relay.ParaID]relay.CoreIndex, len(scheduled))
	for _, assignment := range scheduled {
		coreOf[assignment.Para] = assignment.Core
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return coreOf[candidates[i].Descriptor().ParaID] < coreOf[candidates[j].Descriptor().ParaID]
	})

	// confine the optimistic data to the weight budget, deterministically
	seed := entropy.BlockEntropy(b.beacon, parentHash)
	weight, candidates, bitfields, err := limit.ApplyWeightLimit(candidates, bitfields, seed, b.config.MaxWeight)
	if err != nil {
		return relay.InherentBundle{}, err
	}

	bundle := relay.InherentBundle{
		Bitfields:        bitfields,
		BackedCandidates: candidates,
		Disputes:         disputes,
		ParentHeader:     parentHeader,
	}

	// Sanity check: session changes between construction and execution can
	// invalidate an otherwise well-formed bundle, and the chain rejects the
	// whole block when that happens. Dry-running here converts that risk
	// into a harmless empty bundle.
	err = b.dryRun(bundle)
	if err != nil {
		log.Error().Err(err).Msg("dropping inherent data because it produced an invalid inherent")
		b.metrics.EmptyBundleFallback()
		return relay.EmptyBundle(parentHeader), nil
	}

	log.Debug().
		Int("bitfields", len(bundle.Bitfields)).
		Int("backed_candidates", len(bundle.BackedCandidates)).
		Int("disputes", len(bundle.Disputes)).
		Uint64("weight", uint64(weight)).
		Msg("built inherent bundle")

	return bundle, nil
}
