package relay

// CandidateDescriptor is the unique descriptor of a candidate receipt.
type CandidateDescriptor struct {
	// ParaID is the parachain proposing this candidate.
	ParaID ParaID `cbor:"1,keyasint"`
	// RelayParent is the hash of the relay-chain block this candidate is
	// executed in the context of.
	RelayParent Hash `cbor:"2,keyasint"`
	// PersistedDataHash commits to the persisted validation data.
	PersistedDataHash Hash `cbor:"3,keyasint"`
	// PoVHash is the hash of the proof-of-validity block.
	PoVHash Hash `cbor:"4,keyasint"`
	// ErasureRoot is the root of the erasure-coded availability chunks.
	ErasureRoot Hash `cbor:"5,keyasint"`
}

// CandidateCommitments are the outputs a candidate commits to if included.
type CandidateCommitments struct {
	// HeadData is the new head of the parachain.
	HeadData []byte `cbor:"1,keyasint"`
	// NewCode is the new runtime code, if this candidate carries a code
	// upgrade. Nil means no upgrade.
	NewCode []byte `cbor:"2,keyasint,omitempty"`
	// UpwardMessages are messages dispatched to the relay chain.
	UpwardMessages [][]byte `cbor:"3,keyasint,omitempty"`
	// ProcessedDownwardMessages is the number of downward messages consumed.
	ProcessedDownwardMessages uint32 `cbor:"4,keyasint"`
	// HrmpWatermark is the relay block height up to which horizontal
	// messages have been processed.
	HrmpWatermark BlockNumber `cbor:"5,keyasint"`
}

// CommittedCandidateReceipt pairs a candidate descriptor with the full
// commitments of its execution.
type CommittedCandidateReceipt struct {
	Descriptor  CandidateDescriptor  `cbor:"1,keyasint"`
	Commitments CandidateCommitments `cbor:"2,keyasint"`
}

// Hash returns the candidate hash, the identity used for disputes and
// availability tracking.
func (c *CommittedCandidateReceipt) Hash() CandidateHash {
	return CandidateHash(MakeHash(c))
}

// ValidityAttestation is one backing validator's vote on a candidate.
type ValidityAttestation struct {
	ValidatorIndex ValidatorIndex `cbor:"1,keyasint"`
	Signature      []byte         `cbor:"2,keyasint"`
}

// BackedCandidate is a candidate receipt along with the quorum of backing
// votes that justify putting it on chain.
type BackedCandidate struct {
	Candidate     CommittedCandidateReceipt `cbor:"1,keyasint"`
	ValidityVotes []ValidityAttestation     `cbor:"2,keyasint"`
}

// Hash returns the hash of the backed candidate's receipt.
func (b *BackedCandidate) Hash() CandidateHash {
	return b.Candidate.Hash()
}

// HasCodeUpgrade returns true if the candidate commits to a runtime code
// upgrade.
func (b *BackedCandidate) HasCodeUpgrade() bool {
	return b.Candidate.Commitments.NewCode != nil
}

// Descriptor returns the candidate's descriptor.
func (b *BackedCandidate) Descriptor() CandidateDescriptor {
	return b.Candidate.Descriptor
}
