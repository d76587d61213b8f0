package module

import (
	"github.com/filament-chain/filament/model/relay"
)

// CoreParaLookup resolves which parachain currently occupies a core. The
// second return value is false if the core is not occupied.
type CoreParaLookup func(core relay.CoreIndex) (relay.ParaID, bool)

// GroupLookup resolves the validators of a backing group.
type GroupLookup func(group relay.GroupIndex) ([]relay.ValidatorIndex, bool)

// Scheduler assigns parachain workloads to availability cores. It owns all
// scheduling state; the inherent orchestrator only reaches it through this
// interface.
type Scheduler interface {

	// AvailabilityCores returns the number of active availability cores as
	// of the parent block. All bitfields must have exactly this length.
	AvailabilityCores() int

	// Scheduled returns the core assignments for the current block.
	Scheduled() []relay.CoreAssignment

	// FreeCores informs the scheduler that the given cores were vacated.
	// Cores must be given in ascending core-index order.
	FreeCores(freed []relay.FreedCore)

	// Clear drops the scheduling of the previous block.
	Clear()

	// Schedule recomputes assignments given the cores freed this block.
	Schedule(freed []relay.FreedCore, now relay.BlockNumber)

	// AvailabilityTimeoutPredicate returns a predicate deciding whether a
	// core's availability has timed out at the given block. The second
	// return value is false when no timeout check applies this block.
	AvailabilityTimeoutPredicate() (func(core relay.CoreIndex, since relay.BlockNumber) bool, bool)

	// Occupied marks the given scheduled cores as occupied by a backed
	// candidate.
	Occupied(cores []relay.CoreIndex)

	// CorePara resolves the parachain occupying the given core.
	CorePara(core relay.CoreIndex) (relay.ParaID, bool)

	// GroupValidators resolves the validators of a backing group.
	GroupValidators(group relay.GroupIndex) ([]relay.ValidatorIndex, bool)
}
