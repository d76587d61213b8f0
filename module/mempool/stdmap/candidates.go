package stdmap

import (
	"bytes"
	"sort"
	"sync"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module/mempool"
)

// BackedCandidates implements the pending-candidates memory pool of the
// block author, backed by a Go map.
type BackedCandidates struct {
	sync.RWMutex
	candidates map[relay.CandidateHash]*relay.BackedCandidate
}

// NewBackedCandidates creates a new memory pool for pending backed
// candidates.
func NewBackedCandidates() *BackedCandidates {
	return &BackedCandidates{
		candidates: make(map[relay.CandidateHash]*relay.BackedCandidate),
	}
}

func (c *BackedCandidates) Add(candidate *relay.BackedCandidate) error {
	c.Lock()
	defer c.Unlock()
	hash := candidate.Hash()
	_, ok := c.candidates[hash]
	if ok {
		return mempool.ErrAlreadyExists
	}
	c.candidates[hash] = candidate
	return nil
}

func (c *BackedCandidates) ByHash(hash relay.CandidateHash) (*relay.BackedCandidate, error) {
	c.RLock()
	defer c.RUnlock()
	candidate, ok := c.candidates[hash]
	if !ok {
		return nil, mempool.ErrNotFound
	}
	return candidate, nil
}

func (c *BackedCandidates) Remove(hash relay.CandidateHash) bool {
	c.Lock()
	defer c.Unlock()
	_, ok := c.candidates[hash]
	if !ok {
		return false
	}
	delete(c.candidates, hash)
	return true
}

func (c *BackedCandidates) All() []*relay.BackedCandidate {
	c.RLock()
	defer c.RUnlock()
	hashes := make([]relay.CandidateHash, 0, len(c.candidates))
	for hash := range c.candidates {
		hashes = append(hashes, hash)
	}
	sort.Slice(hashes, func(i, j int) bool {
		return bytes.Compare(hashes[i][:], hashes[j][:]) < 0
	})
	all := make([]*relay.BackedCandidate, 0, len(hashes))
	for _, hash := range hashes {
		all = append(all, c.candidates[hash])
	}
	return all
}

func (c *BackedCandidates) Size() uint {
	c.RLock()
	defer c.RUnlock()
	return uint(len(c.candidates))
}

func (c *BackedCandidates) Clear() {
	c.Lock()
	defer c.Unlock()
	c.candidates = make(map[relay.CandidateHash]*relay.BackedCandidate)
}
