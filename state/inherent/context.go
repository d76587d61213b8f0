package inherent

import (
	"github.com/filament-chain/filament/model/relay"
)

// BlockContext is the execution context of one block. It carries the chain
// state the orchestrator checks the bundle against, and owns the one-shot
// admission marker: exactly one inherent bundle is admitted per block. The
// context is created at block start and discarded at block end; the marker
// never outlives the block.
type BlockContext struct {
	// Number is the height of the block under construction or execution.
	Number relay.BlockNumber
	// ParentHash is the chain's recorded hash of the parent block.
	ParentHash relay.Hash
	// ConsumedWeight is the weight already consumed by unrelated work in
	// this block.
	ConsumedWeight relay.Weight

	admitted bool
}

// NewBlockContext creates the execution context for one block.
func NewBlockContext(number relay.BlockNumber, parentHash relay.Hash, consumedWeight relay.Weight) *BlockContext {
	return &BlockContext{
		Number:         number,
		ParentHash:     parentHash,
		ConsumedWeight: consumedWeight,
	}
}

// Admitted reports whether an inherent bundle was already admitted within
// this block.
func (c *BlockContext) Admitted() bool {
	return c.admitted
}

func (c *BlockContext) markAdmitted() {
	c.admitted = true
}
