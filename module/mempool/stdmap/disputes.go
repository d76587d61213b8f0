package stdmap

import (
	"bytes"
	"sort"
	"sync"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module/mempool"
)

type disputeKey struct {
	session   relay.SessionIndex
	candidate relay.CandidateHash
}

// Disputes implements the pending-disputes memory pool of the block author,
// backed by a Go map.
type Disputes struct {
	sync.RWMutex
	disputes map[disputeKey]*relay.DisputeStatementSet
}

// NewDisputes creates a new memory pool for pending dispute statement sets.
func NewDisputes() *Disputes {
	return &Disputes{
		disputes: make(map[disputeKey]*relay.DisputeStatementSet),
	}
}

func (d *Disputes) Add(set *relay.DisputeStatementSet) error {
	d.Lock()
	defer d.Unlock()
	key := disputeKey{session: set.Session, candidate: set.CandidateHash}
	_, ok := d.disputes[key]
	if ok {
		return mempool.ErrAlreadyExists
	}
	d.disputes[key] = set
	return nil
}

func (d *Disputes) BySessionAndCandidate(session relay.SessionIndex, candidate relay.CandidateHash) (*relay.DisputeStatementSet, error) {
	d.RLock()
	defer d.RUnlock()
	set, ok := d.disputes[disputeKey{session: session, candidate: candidate}]
	if !ok {
		return nil, mempool.ErrNotFound
	}
	return set, nil
}

func (d *Disputes) Remove(session relay.SessionIndex, candidate relay.CandidateHash) bool {
	d.Lock()
	defer d.Unlock()
	key := disputeKey{session: session, candidate: candidate}
	_, ok := d.disputes[key]
	if !ok {
		return false
	}
	delete(d.disputes, key)
	return true
}

func (d *Disputes) All() []*relay.DisputeStatementSet {
	d.RLock()
	defer d.RUnlock()
	keys := make([]disputeKey, 0, len(d.disputes))
	for key := range d.disputes {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].session != keys[j].session {
			return keys[i].session < keys[j].session
		}
		return bytes.Compare(keys[i].candidate[:], keys[j].candidate[:]) < 0
	})
	all := make([]*relay.DisputeStatementSet, 0, len(keys))
	for _, key := range keys {
		all = append(all, d.disputes[key])
	}
	return all
}

func (d *Disputes) Size() uint {
	d.RLock()
	defer d.RUnlock()
	return uint(len(d.disputes))
}

func (d *Disputes) Clear() {
	d.Lock()
	defer d.Unlock()
	d.disputes = make(map[disputeKey]*relay.DisputeStatementSet)
}
