package operation

import (
	"encoding/binary"

	"github.com/filament-chain/filament/model/relay"
)

const (
	// codeOnChainVotes indexes the per-block inherent summary by height
	codeOnChainVotes = 10
)

// makePrefix returns the one-byte key prefix for a storage code.
func makePrefix(code byte) []byte {
	return []byte{code}
}

// numberKey builds a key of prefix plus big-endian block number, so that
// lexicographic key order equals height order.
func numberKey(code byte, number relay.BlockNumber) []byte {
	key := make([]byte, 9)
	key[0] = code
	binary.BigEndian.PutUint64(key[1:], uint64(number))
	return key
}
