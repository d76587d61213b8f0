package badger

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/storage/badger/operation"
)

// OnChainVotes implements persistent storage for per-block inherent
// summaries on top of badger.
type OnChainVotes struct {
	db *badger.DB
}

func NewOnChainVotes(db *badger.DB) *OnChainVotes {
	return &OnChainVotes{db: db}
}

func (v *OnChainVotes) Store(number relay.BlockNumber, votes *relay.OnChainVotes) error {
	return v.db.Update(operation.UpsertOnChainVotes(number, votes))
}

func (v *OnChainVotes) ByBlockNumber(number relay.BlockNumber) (*relay.OnChainVotes, error) {
	var votes relay.OnChainVotes
	err := v.db.View(operation.RetrieveOnChainVotes(number, &votes))
	if err != nil {
		return nil, err
	}
	return &votes, nil
}

func (v *OnChainVotes) Latest() (*relay.OnChainVotes, error) {
	var votes relay.OnChainVotes
	err := v.db.View(operation.RetrieveLatestOnChainVotes(&votes))
	if err != nil {
		return nil, err
	}
	return &votes, nil
}
