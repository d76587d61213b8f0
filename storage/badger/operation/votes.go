package operation

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/filament-chain/filament/model/relay"
)

// UpsertOnChainVotes stores the inherent summary for the given block number,
// overwriting any existing record for that number.
func UpsertOnChainVotes(number relay.BlockNumber, votes *relay.OnChainVotes) func(*badger.Txn) error {
	return upsert(numberKey(codeOnChainVotes, number), votes)
}

// RetrieveOnChainVotes retrieves the inherent summary for the given block
// number.
func RetrieveOnChainVotes(number relay.BlockNumber, votes *relay.OnChainVotes) func(*badger.Txn) error {
	return retrieve(numberKey(codeOnChainVotes, number), votes)
}

// RetrieveLatestOnChainVotes retrieves the inherent summary with the highest
// block number.
func RetrieveLatestOnChainVotes(votes *relay.OnChainVotes) func(*badger.Txn) error {
	return retrieveLatest(makePrefix(codeOnChainVotes), votes)
}
