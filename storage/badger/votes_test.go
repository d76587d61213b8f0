package badger_test

import (
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/stretchr/testify/require"

	"github.com/filament-chain/filament/storage"
	bstorage "github.com/filament-chain/filament/storage/badger"
	"github.com/filament-chain/filament/utils/unittest"
)

func TestOnChainVotesStoreRetrieve(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewOnChainVotes(db)

		expected := unittest.OnChainVotesFixture()
		err := store.Store(42, expected)
		require.NoError(t, err)

		actual, err := store.ByBlockNumber(42)
		require.NoError(t, err)
		require.Equal(t, expected, actual)
	})
}

func TestOnChainVotesRetrieveUnknown(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewOnChainVotes(db)

		_, err := store.ByBlockNumber(42)
		require.ErrorIs(t, err, storage.ErrNotFound)
	})
}

// Storing twice for the same height overwrites, matching per-block summary
// semantics.
func TestOnChainVotesOverwrite(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewOnChainVotes(db)

		first := unittest.OnChainVotesFixture()
		require.NoError(t, store.Store(42, first))

		second := unittest.OnChainVotesFixture()
		require.NoError(t, store.Store(42, second))

		actual, err := store.ByBlockNumber(42)
		require.NoError(t, err)
		require.Equal(t, second, actual)
	})
}

func TestOnChainVotesLatest(t *testing.T) {
	unittest.RunWithBadgerDB(t, func(db *badger.DB) {
		store := bstorage.NewOnChainVotes(db)

		_, err := store.Latest()
		require.ErrorIs(t, err, storage.ErrNotFound)

		early := unittest.OnChainVotesFixture()
		late := unittest.OnChainVotesFixture()
		require.NoError(t, store.Store(41, early))
		// heights are big-endian encoded, so 256 must sort after 41
		require.NoError(t, store.Store(256, late))

		actual, err := store.Latest()
		require.NoError(t, err)
		require.Equal(t, late, actual)
	})
}
