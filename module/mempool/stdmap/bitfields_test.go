package stdmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module/mempool"
	"github.com/filament-chain/filament/module/mempool/stdmap"
	"github.com/filament-chain/filament/utils/unittest"
)

func TestBitfieldsPool(t *testing.T) {
	pool := stdmap.NewBitfields()

	bitfield := unittest.BitfieldFixture(3, 5)
	require.NoError(t, pool.Add(&bitfield))
	require.Equal(t, uint(1), pool.Size())

	// a validator gets one slot
	require.ErrorIs(t, pool.Add(&bitfield), mempool.ErrAlreadyExists)

	actual, err := pool.ByValidator(3)
	require.NoError(t, err)
	require.Equal(t, &bitfield, actual)

	_, err = pool.ByValidator(7)
	require.ErrorIs(t, err, mempool.ErrNotFound)

	require.True(t, pool.Remove(3))
	require.False(t, pool.Remove(3))
	require.Zero(t, pool.Size())
}

// All returns bitfields sorted by validator index regardless of insertion
// order, as required for direct inclusion in a bundle.
func TestBitfieldsAllOrdered(t *testing.T) {
	pool := stdmap.NewBitfields()

	for _, index := range []relay.ValidatorIndex{9, 1, 4, 0, 7} {
		bitfield := unittest.BitfieldFixture(index, 5)
		require.NoError(t, pool.Add(&bitfield))
	}

	all := pool.All()
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].ValidatorIndex, all[i-1].ValidatorIndex)
	}

	pool.Clear()
	require.Zero(t, pool.Size())
	require.Empty(t, pool.All())
}
