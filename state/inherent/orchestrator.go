// Package inherent implements the relay chain's admission pipeline for
// parachain inherent data: per block it accepts at most one bundle of
// availability bitfields, backed candidates and dispute statements,
// sanitizes it, and applies the resulting state transition through the
// scheduling, availability and dispute collaborators.
//
// Execution is strictly sequential and deterministic. Every collaborator is
// reached through a narrow injected interface, so the orchestrator is a pure
// function of the state snapshot and the bundle, with no ambient state
// beyond the per-block context.
package inherent

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module"
	"github.com/filament-chain/filament/state/inherent/limit"
	"github.com/filament-chain/filament/state/inherent/sanitize"
	"github.com/filament-chain/filament/storage"
)

const (
	// InherentClaimedWeight is the weight claimed up front for processing a
	// full inherent.
	InherentClaimedWeight relay.Weight = 1_000_000_000

	// MinimalInherentWeight is the weight of an inherent that carries no
	// backed candidates. We assume candidate processing accounts for three
	// quarters of the claimed weight.
	MinimalInherentWeight = InherentClaimedWeight / 4

	// PerCandidateWeight is the refund-accounting weight per accepted
	// backed candidate.
	PerCandidateWeight relay.Weight = 100_000
)

// Config holds the protocol parameters of the orchestrator.
type Config struct {
	// MaxBlockWeight is the total weight budget of a block. When the block
	// has consumed more than this through unrelated work, all candidates
	// are skipped.
	MaxBlockWeight relay.Weight
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		MaxBlockWeight: 2 * InherentClaimedWeight,
	}
}

// Orchestrator ties disputes, bitfields, scheduling and candidate inclusion
// together into the per-block inherent state transition.
type Orchestrator struct {
	log       zerolog.Logger
	scheduler module.Scheduler
	disputes  module.DisputeLedger
	inclusion module.InclusionTracker
	relay     module.MessageRelay
	sessions  module.SessionProvider
	votes     storage.OnChainVotes
	metrics   module.InherentMetrics
	config    Config
}

func NewOrchestrator(
	log zerolog.Logger,
	scheduler module.Scheduler,
	disputes module.DisputeLedger,
	inclusion module.InclusionTracker,
	messageRelay module.MessageRelay,
	sessions module.SessionProvider,
	votes storage.OnChainVotes,
	metrics module.InherentMetrics,
	config Config,
) *Orchestrator {
	return &Orchestrator{
		log:       log.With().Str("component", "inherent_orchestrator").Logger(),
		scheduler: scheduler,
		disputes:  disputes,
		inclusion: inclusion,
		relay:     messageRelay,
		sessions:  sessions,
		votes:     votes,
		metrics:   metrics,
		config:    config,
	}
}

// Enter processes the inherent bundle for the block described by ctx and
// returns the weight consumed, for refund accounting.
//
// Enter must only be called by the block execution engine; there is no
// externally-signed origin for inherent data. The transition is atomic: any
// returned error invalidates the whole block. Two exceptions are handled
// inside: a frozen chain short-circuits successfully with minimal weight,
// and a strict candidate-sanitization failure degrades to processing zero
// candidates rather than aborting the block.
func (o *Orchestrator) Enter(ctx *BlockContext, bundle relay.InherentBundle) (relay.Weight, error) {

	if ctx.Admitted() {
		return 0, ErrAlreadyAdmitted
	}

	parentHash := bundle.ParentHeader.Hash()
	if parentHash != ctx.ParentHash {
		return 0, NewInvalidParentHeaderErrorf(
			"invalid parent header: got %v, expected %v", parentHash, ctx.ParentHash)
	}

	log := o.log.With().
		Uint64("block_number", uint64(ctx.Number)).
		Int("bitfields", len(bundle.Bitfields)).
		Int("backed_candidates", len(bundle.BackedCandidates)).
		Int("disputes", len(bundle.Disputes)).
		Logger()

	session := o.sessions.CurrentSession()
	expectedBits := o.scheduler.AvailabilityCores()

	// ingest dispute statements; a rejected ingest invalidates the block
	err := o.disputes.ProvideMultiDisputeData(bundle.Disputes)
	if err != nil {
		return 0, fmt.Errorf("could not ingest dispute statements: %w", err)
	}

	// a chain frozen by an unresolved dispute is itself suspect; no
	// parachain consensus work may proceed on top of it
	if o.disputes.IsFrozen() {
		ctx.markAdmitted()
		o.metrics.FrozenShortCircuit()
		log.Warn().Msg("chain frozen by dispute, short-circuiting inherent")
		return MinimalInherentWeight, nil
	}

	// compute the cores freed by disputes concluding against their
	// occupants this session, and the bit mask excluding those cores from
	// availability accounting
	concludedInvalid := make(map[relay.CandidateHash]struct{})
	var freedDisputedCores []relay.CoreIndex
	for _, set := range bundle.Disputes {
		if set.Session != session {
			continue
		}
		if o.disputes.ConcludedInvalid(session, set.CandidateHash) {
			concludedInvalid[set.CandidateHash] = struct{}{}
		}
	}
	if len(concludedInvalid) > 0 {
		freedDisputedCores = o.inclusion.CollectDisputed(concludedInvalid)
	}
	disputedBitfield := relay.DisputedFromCores(freedDisputedCores, expectedBits)

	if len(freedDisputedCores) > 0 {
		// core indices are unique, a candidate cannot occupy two cores
		sort.Slice(freedDisputedCores, func(i, j int) bool {
			return freedDisputedCores[i] < freedDisputedCores[j]
		})
		freed := make([]relay.FreedCore, 0, len(freedDisputedCores))
		for _, core := range freedDisputedCores {
			freed = append(freed, relay.FreedCore{Core: core, Reason: relay.FreedConcluded})
		}
		o.scheduler.FreeCores(freed)
	}

	// process availability bitfields, yielding cores whose candidates just
	// reached their availability quorum
	freedConcluded, err := o.inclusion.ProcessBitfields(expectedBits, bundle.Bitfields, disputedBitfield, o.scheduler.CorePara)
	if err != nil {
		return 0, fmt.Errorf("could not process bitfields: %w", err)
	}

	// inform the dispute ledger of every candidate that became included
	for _, freed := range freedConcluded {
		o.disputes.NoteIncluded(session, freed.Candidate, ctx.Number)
	}

	// collect cores whose availability timed out
	var freedTimeout []relay.CoreIndex
	if pred, ok := o.scheduler.AvailabilityTimeoutPredicate(); ok {
		freedTimeout = o.inclusion.CollectPending(pred)
	}

	// reschedule with the union of freed cores, in core order
	freed := make([]relay.FreedCore, 0, len(freedConcluded)+len(freedTimeout))
	for _, fc := range freedConcluded {
		freed = append(freed, relay.FreedCore{Core: fc.Core, Reason: relay.FreedConcluded})
	}
	for _, core := range freedTimeout {
		freed = append(freed, relay.FreedCore{Core: core, Reason: relay.FreedTimedOut})
	}
	sort.Slice(freed, func(i, j int) bool { return freed[i].Core < freed[j].Core })

	o.scheduler.Clear()
	o.scheduler.Schedule(freed, ctx.Number)

	// strict candidate sanitization against the fresh scheduling; a failure
	// here means the author was byzantine, but omission is always safe, so
	// we degrade to zero candidates instead of wasting the block
	scheduled := o.scheduler.Scheduled()
	candidates, err := sanitize.SanitizeBackedCandidates(
		ctx.ParentHash, bundle.BackedCandidates, concludedInvalid, session, o.disputes, scheduled, sanitize.ModeStrict)
	if err != nil {
		log.Error().Err(err).Msg("dropping all backed candidates due to sanitization error")
		o.metrics.CandidatesDropped(len(bundle.BackedCandidates))
		candidates = nil
	}

	capped := limit.LimitBackedCandidates(candidates, ctx.ConsumedWeight, o.config.MaxBlockWeight)
	if len(capped) < len(candidates) {
		o.metrics.CandidatesDropped(len(candidates) - len(capped))
	}

	// verify backing votes and commit candidate state
	processed, err := o.inclusion.ProcessCandidates(
		bundle.ParentHeader.StateRoot, capped, scheduled, o.scheduler.GroupValidators)
	if err != nil {
		return 0, fmt.Errorf("could not process backed candidates: %w", err)
	}

	// overwrite the block-scoped summary for downstream readers
	err = o.votes.Store(ctx.Number, &relay.OnChainVotes{
		Session:           session,
		BackingValidators: processed.BackingValidators,
		Disputes:          bundle.Disputes,
	})
	if err != nil {
		return 0, fmt.Errorf("could not store on-chain votes: %w", err)
	}

	o.scheduler.Occupied(processed.CoreIndices)

	// bounded slice of work for the cross-chain message relay
	o.relay.ProcessPendingUpwardMessages()

	ctx.markAdmitted()

	weight := MinimalInherentWeight + relay.Weight(len(capped))*PerCandidateWeight
	o.metrics.InherentProcessed(len(bundle.Bitfields), len(capped), weight)
	log.Debug().
		Int("accepted_candidates", len(capped)).
		Uint64("weight", uint64(weight)).
		Msg("inherent admitted")

	return weight, nil
}
