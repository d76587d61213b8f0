package relay

import (
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// HashLen is the length of all hashes used on the relay chain.
const HashLen = 32

// Hash represents a 32-byte BLAKE2b hash of an entity or a block header.
type Hash [HashLen]byte

// ZeroHash is the zero-valued hash.
var ZeroHash = Hash{}

// canonical CBOR encoding mode, shared by all entity hashing
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("could not create canonical CBOR encoder: %s", err))
	}
}

// MakeHash hashes the canonical CBOR encoding of the given entity.
func MakeHash(entity interface{}) Hash {
	data, err := encMode.Marshal(entity)
	if err != nil {
		panic(fmt.Sprintf("could not encode entity for hashing: %s", err))
	}
	return blake2b.Sum256(data)
}

// HashFromBytes converts a byte slice to a Hash. The slice must contain
// exactly HashLen bytes.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLen {
		return ZeroHash, fmt.Errorf("invalid hash length (expected %d, got %d)", HashLen, len(b))
	}
	copy(h[:], b)
	return h, nil
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// CandidateHash is the hash of a committed candidate receipt. It is the
// identity under which candidates are disputed and tracked for availability.
type CandidateHash Hash

func (c CandidateHash) String() string {
	return Hash(c).String()
}
