package stdmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module/mempool"
	"github.com/filament-chain/filament/module/mempool/stdmap"
	"github.com/filament-chain/filament/utils/unittest"
)

func TestDisputesPool(t *testing.T) {
	pool := stdmap.NewDisputes()

	candidate := unittest.CandidateHashFixture()
	set := unittest.DisputeSetFixture(1, candidate)
	require.NoError(t, pool.Add(&set))
	require.ErrorIs(t, pool.Add(&set), mempool.ErrAlreadyExists)

	// the same candidate may be disputed again in a later session
	laterSet := unittest.DisputeSetFixture(2, candidate)
	require.NoError(t, pool.Add(&laterSet))
	require.Equal(t, uint(2), pool.Size())

	actual, err := pool.BySessionAndCandidate(1, candidate)
	require.NoError(t, err)
	require.Equal(t, &set, actual)

	_, err = pool.BySessionAndCandidate(3, candidate)
	require.ErrorIs(t, err, mempool.ErrNotFound)

	require.True(t, pool.Remove(1, candidate))
	require.False(t, pool.Remove(1, candidate))
	require.Equal(t, uint(1), pool.Size())
}

// All returns sets ordered by session, then candidate hash.
func TestDisputesAllCanonical(t *testing.T) {
	pool := stdmap.NewDisputes()

	for _, session := range []relay.SessionIndex{3, 1, 2, 1, 3, 2} {
		set := unittest.DisputeSetFixture(session, unittest.CandidateHashFixture())
		require.NoError(t, pool.Add(&set))
	}

	all := pool.All()
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		require.LessOrEqual(t, all[i-1].Session, all[i].Session)
	}
}
