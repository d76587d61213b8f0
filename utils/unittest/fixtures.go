package unittest

import (
	crand "crypto/rand"

	"github.com/filament-chain/filament/model/relay"
)

// HashFixture returns a random hash.
func HashFixture() relay.Hash {
	var hash relay.Hash
	_, _ = crand.Read(hash[:])
	return hash
}

// CandidateHashFixture returns a random candidate hash.
func CandidateHashFixture() relay.CandidateHash {
	return relay.CandidateHash(HashFixture())
}

// SignatureFixture returns a random 64-byte signature.
func SignatureFixture() []byte {
	sig := make([]byte, 64)
	_, _ = crand.Read(sig)
	return sig
}

// EntropyFixture returns random 32-byte block entropy.
func EntropyFixture() [32]byte {
	var entropy [32]byte
	_, _ = crand.Read(entropy[:])
	return entropy
}

// HeaderFixture returns a header with random parent hash and roots.
func HeaderFixture(opts ...func(*relay.Header)) relay.Header {
	header := relay.Header{
		ParentHash:     HashFixture(),
		Number:         42,
		StateRoot:      HashFixture(),
		ExtrinsicsRoot: HashFixture(),
	}
	for _, apply := range opts {
		apply(&header)
	}
	return header
}

func HeaderWithParentHash(parent relay.Hash) func(*relay.Header) {
	return func(header *relay.Header) {
		header.ParentHash = parent
	}
}

// BitfieldFixture returns an unchecked bitfield for the given validator with
// the given number of bits, all unset, and a random signature.
func BitfieldFixture(index relay.ValidatorIndex, bits int, opts ...func(*relay.UncheckedBitfield)) relay.UncheckedBitfield {
	bitfield := relay.UncheckedBitfield{
		Payload:        relay.NewBitfield(bits),
		ValidatorIndex: index,
		Signature:      SignatureFixture(),
	}
	for _, apply := range opts {
		apply(&bitfield)
	}
	return bitfield
}

func BitfieldWithBitSet(i int) func(*relay.UncheckedBitfield) {
	return func(bitfield *relay.UncheckedBitfield) {
		_ = bitfield.Payload.SetBit(i, true)
	}
}

// OrderedBitfieldsFixture returns n bitfields with validator indices 0..n-1
// in ascending order, each covering the given number of bits.
func OrderedBitfieldsFixture(n int, bits int) []relay.UncheckedBitfield {
	bitfields := make([]relay.UncheckedBitfield, 0, n)
	for i := 0; i < n; i++ {
		bitfields = append(bitfields, BitfieldFixture(relay.ValidatorIndex(i), bits))
	}
	return bitfields
}

// BackedCandidateFixture returns a backed candidate with a random
// descriptor, one backing vote and no code upgrade.
func BackedCandidateFixture(opts ...func(*relay.BackedCandidate)) relay.BackedCandidate {
	candidate := relay.BackedCandidate{
		Candidate: relay.CommittedCandidateReceipt{
			Descriptor: relay.CandidateDescriptor{
				ParaID:            relay.ParaID(100),
				RelayParent:       HashFixture(),
				PersistedDataHash: HashFixture(),
				PoVHash:           HashFixture(),
				ErasureRoot:       HashFixture(),
			},
			Commitments: relay.CandidateCommitments{
				HeadData: []byte{1, 2, 3},
			},
		},
		ValidityVotes: []relay.ValidityAttestation{
			{ValidatorIndex: 0, Signature: SignatureFixture()},
		},
	}
	for _, apply := range opts {
		apply(&candidate)
	}
	return candidate
}

func CandidateWithParaID(para relay.ParaID) func(*relay.BackedCandidate) {
	return func(candidate *relay.BackedCandidate) {
		candidate.Candidate.Descriptor.ParaID = para
	}
}

func CandidateWithRelayParent(parent relay.Hash) func(*relay.BackedCandidate) {
	return func(candidate *relay.BackedCandidate) {
		candidate.Candidate.Descriptor.RelayParent = parent
	}
}

func CandidateWithCodeUpgrade() func(*relay.BackedCandidate) {
	return func(candidate *relay.BackedCandidate) {
		candidate.Candidate.Commitments.NewCode = []byte{0xca, 0xfe}
	}
}

func CandidateWithVotes(n int) func(*relay.BackedCandidate) {
	return func(candidate *relay.BackedCandidate) {
		votes := make([]relay.ValidityAttestation, 0, n)
		for i := 0; i < n; i++ {
			votes = append(votes, relay.ValidityAttestation{
				ValidatorIndex: relay.ValidatorIndex(i),
				Signature:      SignatureFixture(),
			})
		}
		candidate.ValidityVotes = votes
	}
}

// DisputeSetFixture returns a dispute statement set with two votes for the
// given session and candidate.
func DisputeSetFixture(session relay.SessionIndex, candidate relay.CandidateHash) relay.DisputeStatementSet {
	return relay.DisputeStatementSet{
		Session:       session,
		CandidateHash: candidate,
		Statements: []relay.DisputeStatement{
			{Kind: relay.DisputeStatementInvalid, ValidatorIndex: 0, Signature: SignatureFixture()},
			{Kind: relay.DisputeStatementValid, ValidatorIndex: 1, Signature: SignatureFixture()},
		},
	}
}

// AssignmentsFixture returns n core assignments, core i scheduled for para
// 100+i and backed by group i.
func AssignmentsFixture(n int) []relay.CoreAssignment {
	assignments := make([]relay.CoreAssignment, 0, n)
	for i := 0; i < n; i++ {
		assignments = append(assignments, relay.CoreAssignment{
			Core:  relay.CoreIndex(i),
			Para:  relay.ParaID(100 + i),
			Group: relay.GroupIndex(i),
		})
	}
	return assignments
}

// OnChainVotesFixture returns a votes record with one backed candidate and
// one dispute.
func OnChainVotesFixture() *relay.OnChainVotes {
	candidate := CandidateHashFixture()
	return &relay.OnChainVotes{
		Session: 7,
		BackingValidators: map[relay.CandidateHash][]relay.ValidatorIndex{
			candidate: {0, 2, 4},
		},
		Disputes: []relay.DisputeStatementSet{
			DisputeSetFixture(7, CandidateHashFixture()),
		},
	}
}
