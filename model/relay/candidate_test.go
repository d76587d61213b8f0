package relay_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filament-chain/filament/model/relay"
)

func receiptFixture() relay.CommittedCandidateReceipt {
	return relay.CommittedCandidateReceipt{
		Descriptor: relay.CandidateDescriptor{
			ParaID:      42,
			RelayParent: relay.MakeHash("parent"),
			PoVHash:     relay.MakeHash("pov"),
		},
		Commitments: relay.CandidateCommitments{
			HeadData: []byte{1, 2, 3},
		},
	}
}

func TestCandidateHashDeterministic(t *testing.T) {
	receipt := receiptFixture()
	require.Equal(t, receipt.Hash(), receipt.Hash())

	changed := receiptFixture()
	changed.Descriptor.ParaID = 43
	require.NotEqual(t, receipt.Hash(), changed.Hash())
}

func TestBackedCandidateCodeUpgrade(t *testing.T) {
	candidate := relay.BackedCandidate{Candidate: receiptFixture()}
	require.False(t, candidate.HasCodeUpgrade())

	candidate.Candidate.Commitments.NewCode = []byte{0xca, 0xfe}
	require.True(t, candidate.HasCodeUpgrade())
}

func TestHeaderHashCoversFields(t *testing.T) {
	header := relay.Header{
		ParentHash: relay.MakeHash("parent"),
		Number:     7,
	}
	same := header
	require.Equal(t, header.Hash(), same.Hash())

	same.Number = 8
	require.NotEqual(t, header.Hash(), same.Hash())
}
