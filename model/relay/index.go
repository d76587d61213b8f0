package relay

// CoreIndex identifies an availability core. At most one parachain candidate
// can occupy a core per relay-chain block.
type CoreIndex uint32

// ParaID identifies a parachain.
type ParaID uint32

// ValidatorIndex is the position of a validator within the active validator
// set of the current session.
type ValidatorIndex uint32

// GroupIndex identifies a backing group of validators.
type GroupIndex uint32

// SessionIndex identifies an epoch-scoped validator-set assignment.
type SessionIndex uint32

// Weight expresses computational cost of processing inherent data.
type Weight uint64

// BlockNumber is a relay-chain block height.
type BlockNumber uint64
