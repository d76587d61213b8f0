package relay

// OnChainVotes is the block-scoped summary that survives inherent
// processing: the session, the backing validators per accepted candidate,
// and the raw dispute statements. It is overwritten every block and read by
// downstream consumers such as dispute scrapers.
type OnChainVotes struct {
	Session           SessionIndex                       `cbor:"1,keyasint"`
	BackingValidators map[CandidateHash][]ValidatorIndex `cbor:"2,keyasint"`
	Disputes          []DisputeStatementSet              `cbor:"3,keyasint"`
}
