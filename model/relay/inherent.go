package relay

// InherentBundle is the per-block unit of parachain inherent data exchanged
// between the block author and on-chain execution: availability bitfields,
// backed candidates and dispute statements, together with the parent header
// whose hash the chain verifies.
type InherentBundle struct {
	Bitfields        []UncheckedBitfield   `cbor:"1,keyasint"`
	BackedCandidates []BackedCandidate     `cbor:"2,keyasint"`
	Disputes         []DisputeStatementSet `cbor:"3,keyasint"`
	ParentHeader     Header                `cbor:"4,keyasint"`
}

// EmptyBundle returns a bundle carrying no optimistic data, only the parent
// header. It is always admissible since there is nothing to reject.
func EmptyBundle(parentHeader Header) InherentBundle {
	return InherentBundle{
		Bitfields:        nil,
		BackedCandidates: nil,
		Disputes:         nil,
		ParentHeader:     parentHeader,
	}
}
