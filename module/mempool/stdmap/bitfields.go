package stdmap

import (
	"sort"
	"sync"

	"github.com/filament-chain/filament/model/relay"
	"github.com/filament-chain/filament/module/mempool"
)

// Bitfields implements the pending-bitfields memory pool of the block
// author, backed by a Go map.
type Bitfields struct {
	sync.RWMutex
	bitfields map[relay.ValidatorIndex]*relay.UncheckedBitfield
}

// NewBitfields creates a new memory pool for pending availability bitfields.
func NewBitfields() *Bitfields {
	return &Bitfields{
		bitfields: make(map[relay.ValidatorIndex]*relay.UncheckedBitfield),
	}
}

func (b *Bitfields) Add(bitfield *relay.UncheckedBitfield) error {
	b.Lock()
	defer b.Unlock()
	_, ok := b.bitfields[bitfield.ValidatorIndex]
	if ok {
		return mempool.ErrAlreadyExists
	}
	b.bitfields[bitfield.ValidatorIndex] = bitfield
	return nil
}

func (b *Bitfields) ByValidator(index relay.ValidatorIndex) (*relay.UncheckedBitfield, error) {
	b.RLock()
	defer b.RUnlock()
	bitfield, ok := b.bitfields[index]
	if !ok {
		return nil, mempool.ErrNotFound
	}
	return bitfield, nil
}

func (b *Bitfields) Remove(index relay.ValidatorIndex) bool {
	b.Lock()
	defer b.Unlock()
	_, ok := b.bitfields[index]
	if !ok {
		return false
	}
	delete(b.bitfields, index)
	return true
}

func (b *Bitfields) All() []*relay.UncheckedBitfield {
	b.RLock()
	defer b.RUnlock()
	all := make([]*relay.UncheckedBitfield, 0, len(b.bitfields))
	for _, bitfield := range b.bitfields {
		all = append(all, bitfield)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ValidatorIndex < all[j].ValidatorIndex
	})
	return all
}

func (b *Bitfields) Size() uint {
	b.RLock()
	defer b.RUnlock()
	return uint(len(b.bitfields))
}

func (b *Bitfields) Clear() {
	b.Lock()
	defer b.Unlock()
	b.bitfields = make(map[relay.ValidatorIndex]*relay.UncheckedBitfield)
}
